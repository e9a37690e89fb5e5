// SurMesure — Configurateur de mobilier sur mesure
//
// A cross-platform desktop application for configuring custom furniture,
// panel cuts, and kitchens, with live pricing and a 3D preview.
//
// Build:
//   go build -o surmesure ./cmd/configurator
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o surmesure.exe ./cmd/configurator
//   GOOS=darwin  GOARCH=amd64 go build -o surmesure-darwin ./cmd/configurator
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/surmesure/configurator/internal/ui"
)

func main() {
	application := app.NewWithID("fr.surmesure.configurator")
	application.Settings().SetTheme(ui.NewSurMesureTheme())

	window := application.NewWindow("SurMesure — Configurateur")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(appUI.WindowSize())
	window.CenterOnScreen()
	window.Show()

	application.Run()
	appUI.SaveSession()
}
