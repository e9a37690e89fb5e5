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

// hardwareOptions is the fixed hinge/slide grade choice; the grade does
// not change the hardware count formula.
var hardwareOptions = []keyed{
	{key: "charnieres", label: "Charnières standard"},
	{key: "amorti", label: "Fermeture amortie"},
}

func (a *App) buildMeubleStep(key string, cfg *config.MeubleConfig) fyne.CanvasObject {
	switch key {
	case "modele":
		return a.buildMeubleModelStep(cfg)
	case "structure":
		return a.buildMeubleStructureStep(cfg)
	case "amenagement":
		return a.buildMeubleLayoutStep(cfg)
	case "materiau":
		return a.buildMeubleMaterialStep(cfg)
	case "finitions":
		return a.buildMeubleFinishStep(cfg)
	default:
		return widget.NewLabel("")
	}
}

func (a *App) buildMeubleModelStep(cfg *config.MeubleConfig) fyne.CanvasObject {
	tplSelect := keySelect(a.templateOptions(), cfg.Template, func(key string) {
		a.dispatch("Choisir le modèle", wizard.SetTemplate{Key: key})
	})

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Mon dressing")
	nameEntry.SetText(cfg.Name)
	nameEntry.OnSubmitted = func(text string) {
		a.dispatch("Renommer le projet", wizard.SetName{Name: text})
	}

	return container.NewVBox(
		widget.NewCard("Modèle", "", container.NewGridWithColumns(2,
			widget.NewLabel("Gabarit"), tplSelect,
			widget.NewLabel("Nom du projet"), nameEntry,
		)),
	)
}

func (a *App) buildMeubleStructureStep(cfg *config.MeubleConfig) fyne.CanvasObject {
	box := container.NewVBox()

	for i := range cfg.Cabinets {
		cab := cfg.Cabinets[i]
		cabID := cab.ID

		resize := func(field string) func(v float64) {
			return func(v float64) {
				act := wizard.ResizeCabinet{CabinetID: cabID}
				switch field {
				case "width":
					act.Width = v
				case "height":
					act.Height = v
				case "depth":
					act.Depth = v
				case "thickness":
					act.Thickness = v
				}
				a.dispatch("Redimensionner le caisson", act)
			}
		}

		removeBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Supprimer ce caisson", func() {
			a.dispatch("Supprimer le caisson", wizard.RemoveCabinet{CabinetID: cabID})
		})
		if len(cfg.Cabinets) <= 1 {
			removeBtn.Disable()
		}

		card := widget.NewCard(fmt.Sprintf("Caisson %d", i+1), "", container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel("Largeur (mm)"), dimensionEntry(cab.Width, resize("width")),
				widget.NewLabel("Hauteur (mm)"), dimensionEntry(cab.Height, resize("height")),
				widget.NewLabel("Profondeur (mm)"), dimensionEntry(cab.Depth, resize("depth")),
				widget.NewLabel("Épaisseur (mm)"), dimensionEntry(cab.Thickness, resize("thickness")),
			),
			container.NewHBox(layout.NewSpacer(), removeBtn),
		))
		box.Add(card)
	}

	addBtn := widget.NewButtonWithIcon("Ajouter un caisson", theme.ContentAddIcon(), func() {
		a.dispatch("Ajouter un caisson", wizard.AddCabinet{})
	})
	box.Add(addBtn)
	box.Add(widget.NewLabel(fmt.Sprintf("Largeur totale : %.0f mm", cfg.TotalWidth())))
	return box
}

var moduleLabels = map[config.ModuleType]string{
	config.ModuleEtagere:  "Étagère",
	config.ModuleTiroir:   "Tiroir",
	config.ModulePenderie: "Penderie",
	config.ModuleNiche:    "Niche",
	config.ModulePorte:    "Porte",
}

func (a *App) buildMeubleLayoutStep(cfg *config.MeubleConfig) fyne.CanvasObject {
	box := container.NewVBox(
		widget.NewLabel("Glissez un aménagement dans l'aperçu 3D pour le repositionner\n(grille de 50 mm)."),
	)

	for i := range cfg.Cabinets {
		cab := cfg.Cabinets[i]
		cabID := cab.ID

		rows := container.NewVBox()
		for _, mod := range cab.Modules {
			modID := mod.ID
			label := moduleLabels[mod.Type]
			if label == "" {
				label = string(mod.Type)
			}
			rows.Add(container.NewHBox(
				widget.NewLabel(fmt.Sprintf("%s à %.0f mm", label, mod.Position)),
				layout.NewSpacer(),
				newIconButtonWithTooltip(theme.DeleteIcon(), "Retirer cet aménagement", func() {
					a.dispatch("Retirer l'aménagement", wizard.RemoveModule{CabinetID: cabID, ModuleID: modID})
				}),
			))
		}

		addButtons := container.NewHBox()
		for _, t := range []config.ModuleType{
			config.ModuleEtagere, config.ModuleTiroir, config.ModulePenderie,
			config.ModuleNiche, config.ModulePorte,
		} {
			modType := t
			addButtons.Add(widget.NewButton("+ "+moduleLabels[modType], func() {
				a.dispatch("Ajouter un aménagement", wizard.AddModule{CabinetID: cabID, Type: modType})
			}))
		}

		box.Add(widget.NewCard(fmt.Sprintf("Caisson %d", i+1), "",
			container.NewVBox(rows, addButtons)))
	}
	return box
}

func (a *App) buildMeubleMaterialStep(cfg *config.MeubleConfig) fyne.CanvasObject {
	matSelect := keySelect(a.materialOptions(nil), cfg.Material, func(key string) {
		a.dispatch("Choisir le matériau", wizard.SetMeubleMaterial{Key: key})
	})
	return widget.NewCard("Matériau", "", container.NewGridWithColumns(2,
		widget.NewLabel("Panneau"), matSelect,
	))
}

func (a *App) buildMeubleFinishStep(cfg *config.MeubleConfig) fyne.CanvasObject {
	finishSelect := keySelect(a.finishOptions(), cfg.Finish, func(key string) {
		a.dispatch("Choisir la finition", wizard.SetFinish{Key: key})
	})
	handleSelect := keySelect(a.handleOptions(), cfg.GlobalHandle, func(key string) {
		a.dispatch("Choisir les poignées", wizard.SetHandle{Key: key})
	})
	hardwareSelect := keySelect(hardwareOptions, cfg.Hardware, func(key string) {
		a.dispatch("Choisir la quincaillerie", wizard.SetHardware{Key: key})
	})

	dimsCheck := widget.NewCheck("Afficher les cotes", func(bool) {
		a.dispatch("Basculer les cotes", wizard.ToggleDimensions{})
	})
	dimsCheck.Checked = cfg.ShowDimensions
	explodedCheck := widget.NewCheck("Vue éclatée", func(bool) {
		a.dispatch("Basculer la vue éclatée", wizard.ToggleExploded{})
	})
	explodedCheck.Checked = cfg.Exploded

	return container.NewVBox(
		widget.NewCard("Finitions", "", container.NewGridWithColumns(2,
			widget.NewLabel("Finition"), finishSelect,
			widget.NewLabel("Poignées"), handleSelect,
			widget.NewLabel("Quincaillerie"), hardwareSelect,
		)),
		widget.NewCard("Aperçu", "", container.NewVBox(dimsCheck, explodedCheck)),
	)
}
