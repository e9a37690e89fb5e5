package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/surmesure/configurator/internal/pricing"
	"github.com/surmesure/configurator/internal/scene"
	"github.com/surmesure/configurator/internal/ui/widgets"
)

var sketchCategories = []keyed{
	{key: string(pricing.SketchFurniture), label: "Meuble"},
	{key: string(pricing.SketchWorktop), label: "Plan de travail"},
	{key: string(pricing.SketchShelving), label: "Étagère murale"},
}

var sketchShapes = []keyed{
	{key: string(pricing.ShapeI), label: "Droit (I)"},
	{key: string(pricing.ShapeL), label: "En angle (L)"},
	{key: string(pricing.ShapeU), label: "En U"},
}

// showSketchDialog opens the simplified 2D estimator: a single silhouette
// with a live surface-based price, independent of the wizard state.
func (a *App) showSketchDialog() {
	spec := pricing.SketchSpec{
		Category:   pricing.SketchFurniture,
		Width:      1200,
		Height:     2000,
		Depth:      600,
		Shape:      pricing.ShapeI,
		ShelfCount: 3,
		Material:   "chene",
		Finish:     "brut",
	}

	preview := widgets.NewSketchCanvas(scene.BuildSketch(a.cat, spec), 300, 260)
	priceLabel := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	surfaceLabel := widget.NewLabel("")

	recompute := func() {
		est := pricing.EstimateSketch(a.cat, spec)
		surfaceLabel.SetText(fmt.Sprintf("Surface : %.2f m²", est.Surface))
		priceLabel.SetText(fmt.Sprintf("Estimation : %.2f € TTC", est.TotalTTC))
		preview.SetSketch(scene.BuildSketch(a.cat, spec))
	}

	dimEntry := func(val float64, apply func(float64)) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.0f", val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
				apply(v)
				recompute()
			}
		}
		return e
	}

	catSelect := keySelect(sketchCategories, string(spec.Category), func(key string) {
		spec.Category = pricing.SketchCategory(key)
		recompute()
	})
	shapeSelect := keySelect(sketchShapes, string(spec.Shape), func(key string) {
		spec.Shape = pricing.SketchShape(key)
		recompute()
	})
	matSelect := keySelect(a.materialOptions(nil), spec.Material, func(key string) {
		spec.Material = key
		recompute()
	})
	finishSelect := keySelect(a.finishOptions(), spec.Finish, func(key string) {
		spec.Finish = key
		recompute()
	})

	shelfEntry := widget.NewEntry()
	shelfEntry.SetText(strconv.Itoa(spec.ShelfCount))
	shelfEntry.OnChanged = func(text string) {
		if v, err := strconv.Atoi(text); err == nil && v >= 0 {
			spec.ShelfCount = v
			recompute()
		}
	}

	form := container.NewGridWithColumns(2,
		widget.NewLabel("Type"), catSelect,
		widget.NewLabel("Forme"), shapeSelect,
		widget.NewLabel("Largeur (mm)"), dimEntry(spec.Width, func(v float64) { spec.Width = v }),
		widget.NewLabel("Hauteur (mm)"), dimEntry(spec.Height, func(v float64) { spec.Height = v }),
		widget.NewLabel("Profondeur (mm)"), dimEntry(spec.Depth, func(v float64) { spec.Depth = v }),
		widget.NewLabel("Étagères"), shelfEntry,
		widget.NewLabel("Matériau"), matSelect,
		widget.NewLabel("Finition"), finishSelect,
	)

	recompute()

	content := container.NewVBox(form, preview, surfaceLabel, priceLabel)
	d := dialog.NewCustom("Estimation rapide", "Fermer", content, a.window)
	d.Resize(fyne.NewSize(500, 620))
	d.Show()
}
