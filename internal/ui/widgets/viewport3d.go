package widgets

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/surmesure/configurator/internal/config"
	"github.com/surmesure/configurator/internal/scene"
	"github.com/surmesure/configurator/internal/viewport"
)

const orbitSensitivity = 0.4 // degrees per pixel

var (
	viewportBackground = color.NRGBA{R: 0xF4, G: 0xF2, B: 0xEE, A: 0xFF}
	labelColor         = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
)

// Viewport3D is the interactive 3D preview. A drag starting on a tagged
// module mesh repositions that module; a drag anywhere else orbits the
// camera. Scrolling zooms. The widget redraws from the controller's
// projection list on every refresh.
type Viewport3D struct {
	widget.BaseWidget

	Controller *viewport.Controller

	// ResolveCabinet maps a hit-test cabinet ID to the cabinet of the
	// active configuration. Returns false outside the meuble family.
	ResolveCabinet func(cabinetID string) (config.Cabinet, bool)

	// OnChanged fires after any interaction so the host can refresh
	// dependent panels (price, summary).
	OnChanged func()

	dragging    bool
	dragsModule bool
	accumY      float64
}

// NewViewport3D wires a viewport widget over a shared controller.
func NewViewport3D(ctrl *viewport.Controller) *Viewport3D {
	v := &Viewport3D{Controller: ctrl}
	v.ExtendBaseWidget(v)
	return v
}

func (v *Viewport3D) CreateRenderer() fyne.WidgetRenderer {
	r := &viewportRenderer{vp: v}
	// Free-running frame loop: the viewport redraws from the current
	// arena every frame, not only on interaction, so scene rebuilds by
	// other panels show up without an explicit refresh.
	r.anim = fyne.NewAnimation(time.Second, func(float32) { r.Refresh() })
	r.anim.Curve = fyne.AnimationLinear
	r.anim.RepeatCount = fyne.AnimationRepeatForever
	if fyne.CurrentApp() != nil {
		r.anim.Start()
	}
	return r
}

// Dragged handles both interaction modes. The first event of a gesture
// decides the mode with a hit test at the pointer position.
func (v *Viewport3D) Dragged(ev *fyne.DragEvent) {
	size := v.Size()
	if !v.dragging {
		v.dragging = true
		v.dragsModule = false
		v.accumY = 0

		tag := v.Controller.HitTest(ev.Position.X, ev.Position.Y, float64(size.Width), float64(size.Height))
		if cabID, _, ok := viewport.ParseModuleTag(tag); ok && v.ResolveCabinet != nil {
			if cab, found := v.ResolveCabinet(cabID); found {
				v.dragsModule = v.Controller.StartDrag(tag, cab)
			}
		}
	}

	if v.dragsModule {
		v.accumY += float64(ev.Dragged.DY)
		v.Controller.DragMove(v.accumY)
	} else {
		v.Controller.Camera.Orbit(
			float64(ev.Dragged.DX)*orbitSensitivity,
			float64(ev.Dragged.DY)*orbitSensitivity,
		)
	}
	v.Refresh()
}

// DragEnd releases the gesture. A module drag commits through the
// controller when its last candidate was valid; orbit ends silently.
func (v *Viewport3D) DragEnd() {
	if v.dragsModule {
		v.Controller.EndDrag()
		v.dragsModule = false
	}
	v.dragging = false
	v.Refresh()
	if v.OnChanged != nil {
		v.OnChanged()
	}
}

// Scrolled zooms the camera.
func (v *Viewport3D) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		v.Controller.Camera.Zoom(0.9)
	} else if ev.Scrolled.DY < 0 {
		v.Controller.Camera.Zoom(1.1)
	}
	v.Refresh()
}

// MouseIn implements desktop.Hoverable.
func (v *Viewport3D) MouseIn(*desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable.
func (v *Viewport3D) MouseMoved(*desktop.MouseEvent) {}

// MouseOut aborts an in-flight module drag when the pointer leaves the
// viewport; nothing commits and the overlay is cleaned up.
func (v *Viewport3D) MouseOut() {
	if v.dragsModule {
		v.Controller.CancelDrag()
		v.dragsModule = false
		v.dragging = false
		v.Refresh()
	}
}

type viewportRenderer struct {
	vp      *Viewport3D
	objects []fyne.CanvasObject
	size    fyne.Size
	anim    *fyne.Animation
}

func (r *viewportRenderer) rebuild() {
	r.objects = r.objects[:0]

	bg := canvas.NewRectangle(viewportBackground)
	bg.Resize(r.size)
	r.objects = append(r.objects, bg)

	projs := r.vp.Controller.Render(float64(r.size.Width), float64(r.size.Height))
	for _, p := range projs {
		r.objects = append(r.objects, projectionObject(p))
		if p.Label != "" {
			label := canvas.NewText(p.Label, labelColor)
			label.TextSize = 12
			label.Move(fyne.NewPos(p.X+p.W/2, p.Y+p.H/2-16))
			r.objects = append(r.objects, label)
		}
	}
}

func projectionObject(p viewport.Projection) fyne.CanvasObject {
	var obj fyne.CanvasObject
	switch p.Kind {
	case scene.KindCylinder:
		c := canvas.NewCircle(p.Color)
		c.Resize(fyne.NewSize(p.W, p.H))
		c.Move(fyne.NewPos(p.X, p.Y))
		obj = c
	case scene.KindOutline:
		rect := canvas.NewRectangle(color.Transparent)
		rect.StrokeColor = p.Color
		rect.StrokeWidth = 1
		if p.Dashed {
			rect.StrokeWidth = 2
		}
		rect.Resize(fyne.NewSize(p.W, p.H))
		rect.Move(fyne.NewPos(p.X, p.Y))
		obj = rect
	default:
		rect := canvas.NewRectangle(p.Color)
		rect.Resize(fyne.NewSize(p.W, p.H))
		rect.Move(fyne.NewPos(p.X, p.Y))
		obj = rect
	}
	return obj
}

func (r *viewportRenderer) Layout(size fyne.Size) {
	r.size = size
	r.rebuild()
}

func (r *viewportRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.vp)
}

func (r *viewportRenderer) Destroy() {
	if r.anim != nil {
		r.anim.Stop()
	}
}
func (r *viewportRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *viewportRenderer) MinSize() fyne.Size           { return fyne.NewSize(480, 360) }
