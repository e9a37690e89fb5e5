package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/surmesure/configurator/internal/scene"
)

// SketchCanvas renders the 2D silhouette of the simplified estimator.
// The sketch's mm coordinates (origin bottom-left) are scaled to fit the
// widget and flipped to Fyne's top-left origin.
type SketchCanvas struct {
	widget.BaseWidget
	sketch    scene.Sketch
	maxWidth  float32
	maxHeight float32
}

func NewSketchCanvas(sketch scene.Sketch, maxW, maxH float32) *SketchCanvas {
	sc := &SketchCanvas{
		sketch:    sketch,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	sc.ExtendBaseWidget(sc)
	return sc
}

// SetSketch replaces the drawn silhouette.
func (sc *SketchCanvas) SetSketch(sketch scene.Sketch) {
	sc.sketch = sketch
	sc.Refresh()
}

func (sc *SketchCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchCanvasRenderer{sc: sc}
	r.rebuild()
	return r
}

type sketchCanvasRenderer struct {
	sc      *SketchCanvas
	objects []fyne.CanvasObject
}

func (r *sketchCanvasRenderer) scale() float32 {
	s := r.sc.sketch
	if s.Width <= 0 || s.Height <= 0 {
		return 1
	}
	scaleX := r.sc.maxWidth / float32(s.Width)
	scaleY := r.sc.maxHeight / float32(s.Height)
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

func (r *sketchCanvasRenderer) rebuild() {
	r.objects = nil

	s := r.sc.sketch
	scale := r.scale()
	canvasH := float32(s.Height) * scale

	for _, rect := range s.Rects {
		w := float32(rect.W) * scale
		h := float32(rect.H) * scale
		x := float32(rect.X) * scale
		// Flip Y: sketch origin is bottom-left.
		y := canvasH - float32(rect.Y+rect.H)*scale

		var obj *canvas.Rectangle
		if rect.Filled {
			obj = canvas.NewRectangle(rect.Color)
		} else {
			obj = canvas.NewRectangle(color.Transparent)
			obj.StrokeColor = rect.Color
			obj.StrokeWidth = 2
		}
		obj.Resize(fyne.NewSize(w, h))
		obj.Move(fyne.NewPos(x, y))
		r.objects = append(r.objects, obj)
	}
}

func (r *sketchCanvasRenderer) Layout(size fyne.Size)        {}
func (r *sketchCanvasRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.sc) }
func (r *sketchCanvasRenderer) Destroy()                     {}
func (r *sketchCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *sketchCanvasRenderer) MinSize() fyne.Size {
	scale := r.scale()
	return fyne.NewSize(float32(r.sc.sketch.Width)*scale, float32(r.sc.sketch.Height)*scale)
}
