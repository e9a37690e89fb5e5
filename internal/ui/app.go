package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
	"github.com/surmesure/configurator/internal/cutplan"
	"github.com/surmesure/configurator/internal/export"
	"github.com/surmesure/configurator/internal/pricing"
	"github.com/surmesure/configurator/internal/project"
	"github.com/surmesure/configurator/internal/scene"
	"github.com/surmesure/configurator/internal/ui/widgets"
	"github.com/surmesure/configurator/internal/viewport"
	"github.com/surmesure/configurator/internal/wizard"
)

// App holds all application state and UI references.
type App struct {
	fyneApp fyne.App
	window  fyne.Window

	cat     *catalog.Catalog
	state   wizard.State
	history *History

	arena *scene.Arena
	ctrl  *viewport.Controller
	vp    *widgets.Viewport3D

	store     project.Store
	storePath string

	appCfg     project.AppConfig
	appCfgPath string

	// UI references for dynamic updates
	stepsBar    *fyne.Container
	stepContent *fyne.Container
	pricePanel  *fyne.Container
}

// NewApp loads the catalog and saved projects and builds the initial
// wizard state. Missing files fall back to defaults silently; the app
// must start on a fresh machine.
func NewApp(application fyne.App, window fyne.Window) *App {
	a := &App{
		fyneApp: application,
		window:  window,
		state:   wizard.New(),
		history: NewHistory(),
		arena:   scene.NewArena(),
	}

	settingsPath, err := project.DefaultSettingsPath()
	if err == nil {
		a.cat, err = project.LoadCatalog(settingsPath)
	}
	if err != nil || a.cat == nil {
		a.cat = catalog.Default()
	}

	if path, err := project.DefaultStorePath(); err == nil {
		a.storePath = path
		if store, err := project.LoadStore(path); err == nil {
			a.store = store
		} else {
			a.store = project.NewStore()
		}
	} else {
		a.store = project.NewStore()
	}

	a.appCfg = project.DefaultAppConfig()
	if path, err := project.DefaultAppConfigPath(); err == nil {
		a.appCfgPath = path
		if cfg, err := project.LoadAppConfig(path); err == nil {
			a.appCfg = cfg
		}
	}

	a.ctrl = viewport.NewController(a.arena)
	a.ctrl.OnCommit = func(cabinetID, moduleID string, position float64) {
		a.dispatch("Déplacer aménagement", wizard.MoveModule{
			CabinetID: cabinetID, ModuleID: moduleID, Position: position,
		})
	}

	a.rebuildScene()
	a.ctrl.Camera.Frame(a.arena)
	return a
}

// State exposes the current wizard state (read-only use).
func (a *App) State() wizard.State { return a.state }

// WindowSize returns the last saved window geometry.
func (a *App) WindowSize() fyne.Size {
	return fyne.NewSize(a.appCfg.WindowWidth, a.appCfg.WindowHeight)
}

// SaveSession persists the window geometry and session state on exit.
func (a *App) SaveSession() {
	if a.appCfgPath == "" {
		return
	}
	size := a.window.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		a.appCfg.WindowWidth = size.Width
		a.appCfg.WindowHeight = size.Height
	}
	a.appCfg.LastProjectID = a.state.ProjectID
	if err := project.SaveAppConfig(a.appCfgPath, a.appCfg); err != nil {
		fyne.LogError("save app config", err)
	}
}

// dispatch routes an action through the reducer, records undo history,
// and refreshes every dependent panel. Rejected actions leave the
// history untouched.
func (a *App) dispatch(label string, act wizard.Action) {
	next := wizard.Reduce(a.cat, a.state, act)
	if stateUnchanged(next, a.state) {
		return
	}
	a.history.Push(MakeSnapshot(a.state, label))
	a.state = next
	a.rebuildScene()
	a.refreshAll()
}

// stateUnchanged reports whether the reducer returned the input unchanged.
// Rejected actions return the same configuration pointer, so pointer
// equality is the right test here.
func stateUnchanged(next, prev wizard.State) bool {
	return next.CurrentStep == prev.CurrentStep &&
		next.MaxReachedStep == prev.MaxReachedStep &&
		next.IsDirty == prev.IsDirty &&
		next.Config == prev.Config
}

// rebuildScene regenerates the full 3D model from the configuration.
func (a *App) rebuildScene() {
	scene.Build(a.cat, a.state.Config, a.arena)
}

func (a *App) refreshAll() {
	a.refreshStepsBar()
	a.refreshStepContent()
	a.refreshPrice()
	if a.vp != nil {
		a.vp.Refresh()
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("Fichier",
		fyne.NewMenuItem("Nouveau projet", func() {
			a.confirmDiscard(func() {
				a.state = wizard.New()
				a.history.Clear()
				a.rebuildScene()
				a.ctrl.Camera.Frame(a.arena)
				a.refreshAll()
			})
		}),
		fyne.NewMenuItem("Ouvrir un projet…", func() {
			a.showOpenProjectDialog()
		}),
		fyne.NewMenuItem("Enregistrer le projet…", func() {
			a.showSaveProjectDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exporter le devis en PDF…", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Exporter le chiffrage en Excel…", func() {
			a.exportExcel()
		}),
		fyne.NewMenuItem("Exporter le plan de découpe en DXF…", func() {
			a.exportDXF()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exporter toutes les données…", func() {
			a.exportBackup()
		}),
		fyne.NewMenuItem("Importer des données…", func() {
			a.importBackup()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quitter", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Édition",
		fyne.NewMenuItem("Annuler", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Rétablir", func() {
			a.redo()
		}),
	)

	toolsMenu := fyne.NewMenu("Outils",
		fyne.NewMenuItem("Estimation rapide…", func() {
			a.showSketchDialog()
		}),
		fyne.NewMenuItem("Plan de découpe", func() {
			a.showCutPlanWindow()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Paramètres tarifaires…", func() {
			a.showAdminDialog()
		}),
	)

	helpMenu := fyne.NewMenu("Aide",
		fyne.NewMenuItem("À propos", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"À propos de SurMesure",
		"SurMesure — Configurateur de mobilier sur mesure\n\n"+
			"Meubles, découpes de panneaux et cuisines,\n"+
			"chiffrés en direct avec aperçu 3D.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// confirmDiscard runs proceed immediately when nothing is unsaved,
// otherwise asks first.
func (a *App) confirmDiscard(proceed func()) {
	if !a.state.IsDirty {
		proceed()
		return
	}
	dialog.ShowConfirm("Modifications non enregistrées",
		"La configuration en cours sera perdue. Continuer ?",
		func(ok bool) {
			if ok {
				proceed()
			}
		}, a.window)
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.state, ""))
	if !ok {
		return
	}
	a.state = snap.State
	a.rebuildScene()
	a.refreshAll()
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.state, ""))
	if !ok {
		return
	}
	a.state = snap.State
	a.rebuildScene()
	a.refreshAll()
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.stepsBar = container.NewHBox()
	a.stepContent = container.NewStack()
	a.pricePanel = container.NewVBox()

	a.vp = widgets.NewViewport3D(a.ctrl)
	a.vp.ResolveCabinet = func(cabinetID string) (config.Cabinet, bool) {
		m, ok := a.state.Config.(*config.MeubleConfig)
		if !ok {
			return config.Cabinet{}, false
		}
		cab := m.FindCabinet(cabinetID)
		if cab == nil {
			return config.Cabinet{}, false
		}
		return *cab, true
	}
	a.vp.OnChanged = func() {
		a.refreshPrice()
	}

	prevBtn := widget.NewButton("← Précédent", func() {
		a.dispatch("Étape précédente", wizard.PrevStep{})
	})
	nextBtn := widget.NewButton("Suivant →", func() {
		a.dispatch("Étape suivante", wizard.NextStep{})
	})
	navBar := container.NewHBox(prevBtn, layout.NewSpacer(), nextBtn)

	left := container.NewBorder(nil, navBar, nil, nil,
		container.NewVScroll(a.stepContent))
	right := container.NewVScroll(a.pricePanel)

	inner := container.NewHSplit(a.vp, right)
	inner.SetOffset(0.72)
	split := container.NewHSplit(left, inner)
	split.SetOffset(0.28)

	root := container.NewBorder(a.stepsBar, nil, nil, nil, split)
	a.refreshAll()
	return root
}

// refreshStepsBar rebuilds the step header: reached steps are clickable,
// the current one highlighted, later steps disabled until reached.
func (a *App) refreshStepsBar() {
	a.stepsBar.RemoveAll()
	steps := a.state.Steps()
	for i, st := range steps {
		n := i
		btn := widget.NewButton(fmt.Sprintf("%d. %s", i+1, st.Title), func() {
			a.dispatch("Aller à l'étape", wizard.GotoStep{N: n})
		})
		switch {
		case i == a.state.CurrentStep:
			btn.Importance = widget.HighImportance
		case i > a.state.MaxReachedStep:
			btn.Disable()
		}
		a.stepsBar.Add(btn)
	}
	a.stepsBar.Refresh()
}

func (a *App) refreshStepContent() {
	a.stepContent.RemoveAll()
	a.stepContent.Add(a.buildStepPanel())
	a.stepContent.Refresh()
}

// buildStepPanel constructs the panel of the current step.
func (a *App) buildStepPanel() fyne.CanvasObject {
	steps := a.state.Steps()
	if a.state.CurrentStep < 0 || a.state.CurrentStep >= len(steps) {
		return widget.NewLabel("")
	}
	key := steps[a.state.CurrentStep].Key

	if key == "produit" {
		return a.buildProductStep()
	}
	if key == "recapitulatif" {
		return a.buildSummaryStep()
	}

	switch cfg := a.state.Config.(type) {
	case *config.MeubleConfig:
		return a.buildMeubleStep(key, cfg)
	case *config.PlancheConfig:
		return a.buildPlancheStep(key, cfg)
	case *config.CuisineConfig:
		return a.buildCuisineStep(key, cfg)
	default:
		return widget.NewLabel("")
	}
}

// refreshPrice recomputes the breakdown and rebuilds the price panel.
func (a *App) refreshPrice() {
	a.pricePanel.RemoveAll()

	b := pricing.Price(a.cat, a.state.Config)

	title := widget.NewLabelWithStyle("Chiffrage", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.pricePanel.Add(title)
	a.pricePanel.Add(widget.NewSeparator())

	for _, item := range b.LineItems {
		label := item.Label
		if item.Detail != "" {
			label += " — " + item.Detail
		}
		row := container.NewHBox(
			widget.NewLabel(label),
			layout.NewSpacer(),
			widget.NewLabel(fmt.Sprintf("%.2f €", item.Amount)),
		)
		a.pricePanel.Add(row)
	}

	a.pricePanel.Add(widget.NewSeparator())
	a.pricePanel.Add(priceRow("Total HT", b.SubtotalHT, false))
	a.pricePanel.Add(priceRow("TVA 20 %", b.TVA, false))
	a.pricePanel.Add(priceRow("Total TTC", b.TotalTTC, true))
	a.pricePanel.Refresh()
}

func priceRow(label string, amount float64, bold bool) fyne.CanvasObject {
	style := fyne.TextStyle{Bold: bold}
	return container.NewHBox(
		widget.NewLabelWithStyle(label, fyne.TextAlignLeading, style),
		layout.NewSpacer(),
		widget.NewLabelWithStyle(fmt.Sprintf("%.2f €", amount), fyne.TextAlignTrailing, style),
	)
}

// ─── Project persistence ───────────────────────────────────

func (a *App) showSaveProjectDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.state.Config.DisplayName())

	form := dialog.NewForm("Enregistrer le projet", "Enregistrer", "Annuler",
		[]*widget.FormItem{widget.NewFormItem("Nom", nameEntry)},
		func(ok bool) {
			if !ok {
				return
			}
			a.saveProject(nameEntry.Text)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 150))
	form.Show()
}

func (a *App) saveProject(name string) {
	var err error
	if a.state.ProjectID != "" && a.store.FindByID(a.state.ProjectID) != nil {
		err = a.store.Update(a.state.ProjectID, a.state.Config)
	} else {
		a.state.ProjectID, err = a.store.Add(name, a.state.Config)
	}
	if err == nil && a.storePath != "" {
		err = project.SaveStore(a.storePath, a.store)
	}
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.state.IsDirty = false
	a.appCfg.AddRecentProject(a.state.ProjectID)
	a.refreshAll()
}

func (a *App) showOpenProjectDialog() {
	if len(a.store.Projects) == 0 {
		dialog.ShowInformation("Aucun projet", "Aucun projet enregistré pour le moment.", a.window)
		return
	}

	list := container.NewVBox()
	var d dialog.Dialog
	for _, p := range a.store.Projects {
		saved := p
		row := container.NewHBox(
			widget.NewLabel(fmt.Sprintf("%s (%s)", saved.Name, saved.Family)),
			layout.NewSpacer(),
			widget.NewButton("Ouvrir", func() {
				a.confirmDiscard(func() {
					a.openProject(saved.ID)
					d.Hide()
				})
			}),
			widget.NewButton("Supprimer", func() {
				a.store.Remove(saved.ID)
				if a.storePath != "" {
					if err := project.SaveStore(a.storePath, a.store); err != nil {
						dialog.ShowError(err, a.window)
					}
				}
				d.Hide()
			}),
		)
		list.Add(row)
	}

	d = dialog.NewCustom("Ouvrir un projet", "Fermer", container.NewVScroll(list), a.window)
	d.Resize(fyne.NewSize(450, 300))
	d.Show()
}

func (a *App) openProject(id string) {
	cfg, err := a.store.Load(id)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.state = wizard.New()
	a.state.Config = cfg
	a.state.ProjectID = id
	a.appCfg.AddRecentProject(id)
	// A loaded project has every step available.
	a.state.MaxReachedStep = a.state.StepCount() - 1
	a.state.CurrentStep = a.state.MaxReachedStep
	a.history.Clear()
	a.rebuildScene()
	a.ctrl.Camera.Frame(a.arena)
	a.refreshAll()
}

// ─── Exports ───────────────────────────────────────────────

func (a *App) exportPDF() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		b := pricing.Price(a.cat, a.state.Config)
		if err := export.ExportQuotePDF(writer.URI().Path(), a.state.Config, b); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("devis.pdf")
	d.Show()
}

func (a *App) exportExcel() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		b := pricing.Price(a.cat, a.state.Config)
		if err := export.ExportBreakdownXLSX(writer.URI().Path(), a.state.Config.DisplayName(), b); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("chiffrage.xlsx")
	d.Show()
}

func (a *App) exportDXF() {
	cfg, ok := a.state.Config.(*config.PlancheConfig)
	if !ok {
		dialog.ShowInformation("Plan de découpe",
			"Le plan de découpe n'existe que pour les projets de découpe de panneaux.", a.window)
		return
	}
	plan := cutplan.Build(cfg, cutplan.DefaultSettings())

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ExportCutPlanDXF(writer.URI().Path(), plan); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("decoupe.dxf")
	d.Show()
}

// catalogSnapshot captures the full current catalog as an override set, so
// a backup restores prices exactly even when the defaults change later.
func (a *App) catalogSnapshot() catalog.Settings {
	return catalog.Settings{
		Materials:        a.cat.Materials,
		Modules:          a.cat.Modules,
		Hardware:         &a.cat.Hardware,
		Handles:          a.cat.Handles,
		Finishes:         a.cat.Finishes,
		EdgeBandings:     a.cat.EdgeBandings,
		Templates:        a.cat.Templates,
		Kitchen:          a.cat.Kitchen,
		Envelopes:        a.cat.Envelopes,
		BoardThicknesses: a.cat.BoardThicknesses,
	}
}

func (a *App) exportBackup() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.ExportAllData(writer.URI().Path(), a.store, a.catalogSnapshot()); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("surmesure-donnees.json")
	d.Show()
}

func (a *App) importBackup() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		backup, err := project.ImportAllData(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.store = backup.Store
		if a.storePath != "" {
			if err := project.SaveStore(a.storePath, a.store); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
		}

		cat := catalog.Default()
		backup.Settings.Apply(cat)
		a.cat = cat
		if path, err := project.DefaultSettingsPath(); err == nil {
			if err := project.SaveSettings(path, backup.Settings); err != nil {
				dialog.ShowError(err, a.window)
			}
		}

		a.rebuildScene()
		a.refreshAll()
		dialog.ShowInformation("Import terminé",
			fmt.Sprintf("%d projets et les paramètres tarifaires ont été importés.", len(a.store.Projects)),
			a.window)
	}, a.window)
	d.Show()
}

func (a *App) showCutPlanWindow() {
	cfg, ok := a.state.Config.(*config.PlancheConfig)
	if !ok {
		dialog.ShowInformation("Plan de découpe",
			"Le plan de découpe n'existe que pour les projets de découpe de panneaux.", a.window)
		return
	}
	plan := cutplan.Build(cfg, cutplan.DefaultSettings())

	w := a.fyneApp.NewWindow("Plan de découpe")
	w.SetContent(widgets.RenderCutPlan(plan))
	w.Resize(fyne.NewSize(700, 600))
	w.Show()
}
