package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/surmesure/configurator/internal/cutplan"
)

// Cut colors — cycle through these for visual distinction.
var cutColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// PanelCanvas renders a visual representation of one cutting panel.
type PanelCanvas struct {
	widget.BaseWidget
	panel     cutplan.Panel
	maxWidth  float32
	maxHeight float32
}

func NewPanelCanvas(panel cutplan.Panel, maxW, maxH float32) *PanelCanvas {
	pc := &PanelCanvas{
		panel:     panel,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *PanelCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newPanelCanvasRenderer(pc)
}

type panelCanvasRenderer struct {
	pc      *PanelCanvas
	objects []fyne.CanvasObject
}

func newPanelCanvasRenderer(pc *PanelCanvas) *panelCanvasRenderer {
	r := &panelCanvasRenderer{pc: pc}
	r.rebuild()
	return r
}

func (r *panelCanvasRenderer) scale() float32 {
	panelL := float32(r.pc.panel.Length)
	panelW := float32(r.pc.panel.Width)
	scaleX := r.pc.maxWidth / panelL
	scaleY := r.pc.maxHeight / panelW
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

func (r *panelCanvasRenderer) rebuild() {
	r.objects = nil

	panel := r.pc.panel
	scale := r.scale()
	canvasW := float32(panel.Length) * scale
	canvasH := float32(panel.Width) * scale

	// Panel background
	bg := canvas.NewRectangle(color.NRGBA{R: 210, G: 180, B: 140, A: 255}) // wood color
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Panel border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Placed cuts
	for i, p := range panel.Placements {
		col := cutColors[i%len(cutColors)]
		pw := float32(p.PlacedLength()) * scale
		ph := float32(p.PlacedWidth()) * scale
		px := float32(p.X) * scale
		py := float32(p.Y) * scale

		cutRect := canvas.NewRectangle(col)
		cutRect.Resize(fyne.NewSize(pw, ph))
		cutRect.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, cutRect)

		cutBorder := canvas.NewRectangle(color.Transparent)
		cutBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		cutBorder.StrokeWidth = 1
		cutBorder.Resize(fyne.NewSize(pw, ph))
		cutBorder.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, cutBorder)

		// Label (only if big enough)
		if pw > 30 && ph > 16 {
			label := canvas.NewText(p.Label, color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(px+3, py+2))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *panelCanvasRenderer) Layout(size fyne.Size)        {}
func (r *panelCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *panelCanvasRenderer) Destroy()                     {}
func (r *panelCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *panelCanvasRenderer) MinSize() fyne.Size {
	scale := r.scale()
	return fyne.NewSize(float32(r.pc.panel.Length)*scale, float32(r.pc.panel.Width)*scale)
}

// RenderCutPlan creates a scrollable container of all cutting panels.
func RenderCutPlan(plan cutplan.Plan) fyne.CanvasObject {
	if len(plan.Panels) == 0 {
		return widget.NewLabel("Aucune découpe à placer.")
	}

	var items []fyne.CanvasObject

	for i, panel := range plan.Panels {
		header := widget.NewLabel(fmt.Sprintf(
			"Panneau %d : %.0f × %.0f, ép. %.0f mm — %d pièces, %.1f%% d'utilisation",
			i+1, panel.Length, panel.Width, panel.Thickness,
			len(panel.Placements), panel.Efficiency(),
		))
		header.TextStyle = fyne.TextStyle{Bold: true}

		items = append(items, header, NewPanelCanvas(panel, 600, 400), widget.NewSeparator())
	}

	if len(plan.Unplaced) > 0 {
		warning := widget.NewLabel(fmt.Sprintf(
			"ATTENTION : %d pièce(s) dépassent le format des panneaux.",
			len(plan.Unplaced),
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}

	summary := widget.NewLabel(fmt.Sprintf("Total : %d panneau(x)", plan.PanelCount()))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
