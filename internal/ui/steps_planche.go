package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/surmesure/configurator/internal/config"
	"github.com/surmesure/configurator/internal/wizard"
)

func (a *App) buildPlancheStep(key string, cfg *config.PlancheConfig) fyne.CanvasObject {
	switch key {
	case "decoupe":
		return a.buildPlancheCutsStep(cfg)
	case "chants":
		return a.buildPlancheEdgesStep(cfg)
	case "finitions":
		return a.buildPlancheFinishStep(cfg)
	default:
		return widget.NewLabel("")
	}
}

func (a *App) buildPlancheCutsStep(cfg *config.PlancheConfig) fyne.CanvasObject {
	box := container.NewVBox()

	for i := range cfg.Boards {
		b := cfg.Boards[i]
		boardID := b.ID

		resize := func(field string) func(v float64) {
			return func(v float64) {
				act := wizard.ResizeBoard{BoardID: boardID}
				switch field {
				case "length":
					act.Length = v
				case "width":
					act.Width = v
				case "thickness":
					act.Thickness = v
				}
				a.dispatch("Modifier la découpe", act)
			}
		}

		removeBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Supprimer cette découpe", func() {
			a.dispatch("Supprimer la découpe", wizard.RemoveBoard{BoardID: boardID})
		})
		if len(cfg.Boards) <= 1 {
			removeBtn.Disable()
		}

		card := widget.NewCard(fmt.Sprintf("Découpe %d", i+1), "", container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel("Longueur (mm)"), dimensionEntry(b.Length, resize("length")),
				widget.NewLabel("Largeur (mm)"), dimensionEntry(b.Width, resize("width")),
				widget.NewLabel("Épaisseur (mm)"), dimensionEntry(b.Thickness, resize("thickness")),
				widget.NewLabel("Quantité"), intEntryWidget(b.Quantity, func(q int) {
					a.dispatch("Modifier la quantité", wizard.ResizeBoard{BoardID: boardID, Quantity: q})
				}),
			),
			container.NewHBox(layout.NewSpacer(), removeBtn),
		))
		box.Add(card)
	}

	addBtn := widget.NewButtonWithIcon("Ajouter une découpe", theme.ContentAddIcon(), func() {
		a.dispatch("Ajouter une découpe", wizard.AddBoard{})
	})
	box.Add(addBtn)
	return box
}

// edge sides in display order.
var edgeSides = []struct {
	side  string
	label string
}{
	{"top", "Chant haut"},
	{"bottom", "Chant bas"},
	{"left", "Chant gauche"},
	{"right", "Chant droit"},
}

func (a *App) buildPlancheEdgesStep(cfg *config.PlancheConfig) fyne.CanvasObject {
	box := container.NewVBox()

	for i := range cfg.Boards {
		b := cfg.Boards[i]
		boardID := b.ID

		current := func(side string) string {
			switch side {
			case "top":
				return b.Edges.Top
			case "bottom":
				return b.Edges.Bottom
			case "left":
				return b.Edges.Left
			default:
				return b.Edges.Right
			}
		}

		grid := container.NewGridWithColumns(2)
		for _, es := range edgeSides {
			side := es.side
			grid.Add(widget.NewLabel(es.label))
			grid.Add(keySelect(a.bandingOptions(), current(side), func(key string) {
				a.dispatch("Choisir le chant", wizard.SetBoardEdge{
					BoardID: boardID, Side: side, BandingKey: key,
				})
			}))
		}

		box.Add(widget.NewCard(
			fmt.Sprintf("Découpe %d (%.0f × %.0f)", i+1, b.Length, b.Width), "", grid))
	}
	return box
}

func (a *App) buildPlancheFinishStep(cfg *config.PlancheConfig) fyne.CanvasObject {
	matSelect := keySelect(a.materialOptions(nil), cfg.Material, func(key string) {
		a.dispatch("Choisir le matériau", wizard.SetPlancheMaterial{Key: key})
	})
	finishSelect := keySelect(a.finishOptions(), cfg.Finish, func(key string) {
		a.dispatch("Choisir la finition", wizard.SetFinish{Key: key})
	})

	return container.NewVBox(
		widget.NewCard("Matériau et finition", "", container.NewGridWithColumns(2,
			widget.NewLabel("Panneau"), matSelect,
			widget.NewLabel("Finition"), finishSelect,
		)),
	)
}
