package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/surmesure/configurator/internal/config"
	"github.com/surmesure/configurator/internal/wizard"
)

var layoutOptions = []keyed{
	{key: string(config.LayoutI), label: "Linéaire (I)"},
	{key: string(config.LayoutL), label: "En angle (L)"},
	{key: string(config.LayoutU), label: "En U"},
	{key: string(config.LayoutIsland), label: "Avec îlot"},
}

func (a *App) buildCuisineStep(key string, cfg *config.CuisineConfig) fyne.CanvasObject {
	switch key {
	case "implantation":
		return a.buildCuisineLayoutStep(cfg)
	case "caissons":
		return a.buildCuisineCabinetsStep(cfg)
	case "plan-de-travail":
		return a.buildCuisineCountertopStep(cfg)
	case "materiaux":
		return a.buildCuisineMaterialsStep(cfg)
	case "finitions":
		return a.buildCuisineFinishStep(cfg)
	default:
		return widget.NewLabel("")
	}
}

func (a *App) buildCuisineLayoutStep(cfg *config.CuisineConfig) fyne.CanvasObject {
	layoutSelect := keySelect(layoutOptions, string(cfg.Layout), func(key string) {
		a.dispatch("Choisir l'implantation", wizard.SetKitchenLayout{
			Layout: config.KitchenLayout(key),
		})
		a.ctrl.Camera.Frame(a.arena)
	})

	var wallLines []fyne.CanvasObject
	for i, w := range cfg.Walls {
		wallLines = append(wallLines, widget.NewLabel(
			fmt.Sprintf("Mur %d : %.0f mm", i+1, w.Length)))
	}

	return container.NewVBox(
		widget.NewCard("Implantation", "", container.NewVBox(
			container.NewGridWithColumns(2, widget.NewLabel("Forme"), layoutSelect),
			widget.NewLabel("Changer l'implantation retire les caissons déjà placés."),
		)),
		widget.NewCard("Murs", "", container.NewVBox(wallLines...)),
	)
}

func (a *App) buildCuisineCabinetsStep(cfg *config.CuisineConfig) fyne.CanvasObject {
	box := container.NewVBox()

	// Wall chooser for the next placement.
	wallItems := make([]keyed, len(cfg.Walls))
	for i, w := range cfg.Walls {
		wallItems[i] = keyed{key: w.ID, label: fmt.Sprintf("Mur %d (%.0f mm)", i+1, w.Length)}
	}
	targetWall := ""
	if len(cfg.Walls) > 0 {
		targetWall = cfg.Walls[0].ID
	}
	wallSelect := keySelect(wallItems, targetWall, func(key string) {
		targetWall = key
	})

	box.Add(widget.NewCard("Mur cible", "", wallSelect))

	// Catalog, grouped by category in a stable order.
	keys := make([]string, 0, len(a.cat.Kitchen))
	for k := range a.cat.Kitchen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	catalogRows := container.NewVBox()
	for _, k := range keys {
		entry := a.cat.Kitchen[k]
		catKey := k
		catalogRows.Add(container.NewHBox(
			widget.NewLabel(fmt.Sprintf("%s — %.0f € (larg. %.0f mm)",
				entry.Label, entry.BasePrice, entry.DefaultWidth)),
			layout.NewSpacer(),
			widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
				a.dispatch("Placer un caisson", wizard.PlaceKitchenCabinet{
					CatalogKey: catKey, WallID: targetWall,
				})
			}),
		))
	}
	box.Add(widget.NewCard("Catalogue", "", catalogRows))

	// Current placements.
	placed := container.NewVBox()
	for _, pl := range cfg.Placements() {
		placement := pl
		entry, _ := a.cat.KitchenCabinetByKey(placement.CatalogKey)
		placed.Add(container.NewHBox(
			widget.NewLabel(fmt.Sprintf("%s (%.0f mm) à %.0f mm",
				entry.Label, placement.Width, placement.PositionOnWall)),
			layout.NewSpacer(),
			newIconButtonWithTooltip(theme.DeleteIcon(), "Retirer ce caisson", func() {
				a.dispatch("Retirer le caisson", wizard.RemoveKitchenCabinet{
					PlacementID: placement.ID,
				})
			}),
		))
	}
	if len(cfg.Placements()) == 0 {
		placed.Add(widget.NewLabel("Aucun caisson placé pour le moment."))
	}
	box.Add(widget.NewCard("Caissons placés", "", placed))

	return box
}

func (a *App) buildCuisineCountertopStep(cfg *config.CuisineConfig) fyne.CanvasObject {
	worktopMaterials := a.materialOptions(func(key string) bool {
		return a.cat.Materials[key].ForWorktop
	})
	matSelect := keySelect(worktopMaterials, cfg.Countertop.Material, func(key string) {
		spec := cfg.Countertop
		spec.Material = key
		a.dispatch("Choisir le plan de travail", wizard.SetCountertop{Spec: spec})
	})

	overhangEntry := dimensionEntry(cfg.Countertop.Overhang, func(v float64) {
		spec := cfg.Countertop
		spec.Overhang = v
		a.dispatch("Régler le débord", wizard.SetCountertop{Spec: spec})
	})
	backsplashEntry := dimensionEntry(cfg.Countertop.BacksplashHeight, func(v float64) {
		spec := cfg.Countertop
		spec.BacksplashHeight = v
		a.dispatch("Régler la crédence", wizard.SetCountertop{Spec: spec})
	})

	return widget.NewCard("Plan de travail", "", container.NewGridWithColumns(2,
		widget.NewLabel("Matériau"), matSelect,
		widget.NewLabel("Débord (mm)"), overhangEntry,
		widget.NewLabel("Hauteur de crédence (mm)"), backsplashEntry,
	))
}

func (a *App) buildCuisineMaterialsStep(cfg *config.CuisineConfig) fyne.CanvasObject {
	facadeSelect := keySelect(a.materialOptions(func(key string) bool {
		return a.cat.Materials[key].ForFacade
	}), cfg.FacadeMaterial, func(key string) {
		a.dispatch("Choisir les façades", wizard.SetFacadeMaterial{Key: key})
	})

	carcassSelect := keySelect(a.materialOptions(func(key string) bool {
		return a.cat.Materials[key].ForCarcass
	}), cfg.CarcassMaterial, func(key string) {
		a.dispatch("Choisir les caissons", wizard.SetCarcassMaterial{Key: key})
	})

	return widget.NewCard("Matériaux", "", container.NewGridWithColumns(2,
		widget.NewLabel("Façades"), facadeSelect,
		widget.NewLabel("Caissons"), carcassSelect,
	))
}

func (a *App) buildCuisineFinishStep(cfg *config.CuisineConfig) fyne.CanvasObject {
	finishSelect := keySelect(a.finishOptions(), cfg.Finish, func(key string) {
		a.dispatch("Choisir la finition", wizard.SetFinish{Key: key})
	})
	handleSelect := keySelect(a.handleOptions(), cfg.GlobalHandle, func(key string) {
		a.dispatch("Choisir les poignées", wizard.SetHandle{Key: key})
	})
	hardwareSelect := keySelect(hardwareOptions, cfg.Hardware, func(key string) {
		a.dispatch("Choisir la quincaillerie", wizard.SetHardware{Key: key})
	})

	return widget.NewCard("Finitions", "", container.NewGridWithColumns(2,
		widget.NewLabel("Finition"), finishSelect,
		widget.NewLabel("Poignées"), handleSelect,
		widget.NewLabel("Quincaillerie"), hardwareSelect,
	))
}
