package ui

import (
	"fmt"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/surmesure/configurator/internal/config"
	"github.com/surmesure/configurator/internal/pricing"
	"github.com/surmesure/configurator/internal/quote"
	"github.com/surmesure/configurator/internal/wizard"
)

// buildProductStep is step 0 of every family: pick the product type.
func (a *App) buildProductStep() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Que souhaitez-vous configurer ?",
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	choices := []struct {
		family config.Family
		label  string
		detail string
	}{
		{config.FamilyMeuble, "Meuble sur mesure", "Dressing, bibliothèque, rangement"},
		{config.FamilyPlanche, "Découpe de panneaux", "Planches aux dimensions, chants plaqués"},
		{config.FamilyCuisine, "Cuisine", "Implantation complète, caissons et plan de travail"},
	}

	box := container.NewVBox(title, widget.NewSeparator())
	for _, c := range choices {
		family := c.family
		btn := widget.NewButton(c.label, func() {
			a.confirmDiscard(func() {
				a.dispatch("Choisir le type de projet", wizard.SetProductType{Family: family})
				a.ctrl.Camera.Frame(a.arena)
			})
		})
		if a.state.Config.Family() == family {
			btn.Importance = widget.HighImportance
		}
		box.Add(btn)
		box.Add(widget.NewLabel(c.detail))
	}
	return box
}

// buildSummaryStep is the final step of every family: recap, price, and
// the quote request.
func (a *App) buildSummaryStep() fyne.CanvasObject {
	cfg := a.state.Config
	b := pricing.Price(a.cat, cfg)

	nameEntry := widget.NewEntry()
	nameEntry.SetText(cfg.DisplayName())
	nameEntry.OnSubmitted = func(text string) {
		a.dispatch("Renommer le projet", wizard.SetName{Name: text})
	}

	recap := widget.NewCard("Récapitulatif", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Projet"), nameEntry,
			widget.NewLabel("Dimensions"), widget.NewLabel(quote.DimensionsString(cfg)),
			widget.NewLabel("Total TTC"), widget.NewLabelWithStyle(
				fmt.Sprintf("%.2f €", b.TotalTTC), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		),
	))

	quoteBtn := widget.NewButton("Demander un devis", func() {
		a.showQuoteDialog()
	})
	quoteBtn.Importance = widget.HighImportance

	pdfBtn := widget.NewButton("Télécharger le devis (PDF)", func() {
		a.exportPDF()
	})

	return container.NewVBox(recap, quoteBtn, pdfBtn)
}

// ─── Shared option selectors ───────────────────────────────

// keyed pairs a stable key with its display label for select widgets.
type keyed struct {
	key   string
	label string
}

func sortedKeyed(items []keyed) []keyed {
	sort.Slice(items, func(i, j int) bool { return items[i].label < items[j].label })
	return items
}

// keySelect builds a select widget over key/label pairs that dispatches
// the chosen key. The current key preselects its label.
func keySelect(items []keyed, current string, onChosen func(key string)) *widget.Select {
	labels := make([]string, len(items))
	byLabel := make(map[string]string, len(items))
	var currentLabel string
	for i, it := range items {
		labels[i] = it.label
		byLabel[it.label] = it.key
		if it.key == current {
			currentLabel = it.label
		}
	}
	sel := widget.NewSelect(labels, func(selected string) {
		if key, ok := byLabel[selected]; ok && key != current {
			onChosen(key)
		}
	})
	if currentLabel != "" {
		sel.SetSelected(currentLabel)
	}
	return sel
}

// dimensionEntry builds an entry prefilled with a millimeter value that
// dispatches on submit. Unparseable input is ignored.
func dimensionEntry(value float64, apply func(v float64)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(fmt.Sprintf("%.0f", value))
	e.OnSubmitted = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
			apply(v)
		}
	}
	return e
}

// intEntryWidget builds an entry for whole quantities dispatching on submit.
func intEntryWidget(value int, apply func(v int)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.Itoa(value))
	e.OnSubmitted = func(text string) {
		if v, err := strconv.Atoi(text); err == nil && v > 0 {
			apply(v)
		}
	}
	return e
}

// Catalog option lists, sorted for stable dropdowns.

func (a *App) materialOptions(filter func(key string) bool) []keyed {
	var items []keyed
	for key, m := range a.cat.Materials {
		if filter != nil && !filter(key) {
			continue
		}
		items = append(items, keyed{key: key, label: fmt.Sprintf("%s (%.0f €/m²)", m.Name, m.PricePerSqm)})
	}
	return sortedKeyed(items)
}

func (a *App) finishOptions() []keyed {
	var items []keyed
	for key, f := range a.cat.Finishes {
		items = append(items, keyed{key: key, label: fmt.Sprintf("%s (%.0f €/m²)", f.Label, f.PricePerSqm)})
	}
	return sortedKeyed(items)
}

func (a *App) handleOptions() []keyed {
	var items []keyed
	for key, h := range a.cat.Handles {
		items = append(items, keyed{key: key, label: h.Label})
	}
	return sortedKeyed(items)
}

func (a *App) bandingOptions() []keyed {
	items := []keyed{{key: "", label: "Brut (sans chant)"}}
	var banded []keyed
	for key, eb := range a.cat.EdgeBandings {
		banded = append(banded, keyed{key: key, label: fmt.Sprintf("%s (%.2f €/ml)", eb.Label, eb.PricePerM)})
	}
	return append(items, sortedKeyed(banded)...)
}

func (a *App) templateOptions() []keyed {
	var items []keyed
	for key, t := range a.cat.Templates {
		items = append(items, keyed{key: key, label: t.Label})
	}
	return sortedKeyed(items)
}
