package ui

import (
	"fmt"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/project"
)

// showAdminDialog displays the pricing settings editor. Edited prices are
// written to the settings overlay file and applied to the live catalog;
// the defaults stay untouched on disk.
func (a *App) showAdminDialog() {
	// Work on copies; nothing applies until Save.
	materials := make(map[string]catalog.Material, len(a.cat.Materials))
	for k, v := range a.cat.Materials {
		materials[k] = v
	}
	modules := make(map[string]catalog.ModuleOption, len(a.cat.Modules))
	for k, v := range a.cat.Modules {
		modules[k] = v
	}
	finishes := make(map[string]catalog.FinishOption, len(a.cat.Finishes))
	for k, v := range a.cat.Finishes {
		finishes[k] = v
	}
	hardware := a.cat.Hardware

	floatEntry := func(val float64, apply func(float64)) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.2f", val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil && v >= 0 {
				apply(v)
			}
		}
		return e
	}

	materialGrid := container.NewGridWithColumns(2)
	for _, key := range sortedKeys(materials) {
		k := key
		m := materials[k]
		materialGrid.Add(widget.NewLabel(m.Name + " (€/m²)"))
		materialGrid.Add(floatEntry(m.PricePerSqm, func(v float64) {
			entry := materials[k]
			entry.PricePerSqm = v
			materials[k] = entry
		}))
	}

	moduleGrid := container.NewGridWithColumns(2)
	for _, key := range sortedKeys(modules) {
		k := key
		m := modules[k]
		moduleGrid.Add(widget.NewLabel(m.Label + " (€/u)"))
		moduleGrid.Add(floatEntry(m.BasePrice, func(v float64) {
			entry := modules[k]
			entry.BasePrice = v
			modules[k] = entry
		}))
	}

	finishGrid := container.NewGridWithColumns(2)
	for _, key := range sortedKeys(finishes) {
		k := key
		f := finishes[k]
		finishGrid.Add(widget.NewLabel(f.Label + " (€/m²)"))
		finishGrid.Add(floatEntry(f.PricePerSqm, func(v float64) {
			entry := finishes[k]
			entry.PricePerSqm = v
			finishes[k] = entry
		}))
	}

	hardwareGrid := container.NewGridWithColumns(2,
		widget.NewLabel("Charnière (€/u)"), floatEntry(hardware.HingePrice, func(v float64) { hardware.HingePrice = v }),
		widget.NewLabel("Coulisse (€/paire)"), floatEntry(hardware.SlidePrice, func(v float64) { hardware.SlidePrice = v }),
		widget.NewLabel("Taquets (€/jeu)"), floatEntry(hardware.ShelfSupportPrice, func(v float64) { hardware.ShelfSupportPrice = v }),
		widget.NewLabel("Poignée (€/u)"), floatEntry(hardware.HandlePrice, func(v float64) { hardware.HandlePrice = v }),
	)

	content := container.NewVScroll(container.NewVBox(
		widget.NewCard("Matériaux", "", materialGrid),
		widget.NewCard("Aménagements", "", moduleGrid),
		widget.NewCard("Finitions", "", finishGrid),
		widget.NewCard("Quincaillerie", "", hardwareGrid),
	))

	d := dialog.NewCustomConfirm("Paramètres tarifaires", "Enregistrer", "Annuler", content,
		func(ok bool) {
			if !ok {
				return
			}
			settings := catalog.Settings{
				Materials: materials,
				Modules:   modules,
				Finishes:  finishes,
				Hardware:  &hardware,
			}
			settings.Apply(a.cat)

			path, err := project.DefaultSettingsPath()
			if err == nil {
				err = project.SaveSettings(path, settings)
			}
			if err != nil {
				dialog.ShowError(fmt.Errorf("enregistrement des paramètres : %w", err), a.window)
				return
			}
			a.refreshAll()
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 600))
	d.Show()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
