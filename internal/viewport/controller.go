package viewport

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/surmesure/configurator/internal/config"
	"github.com/surmesure/configurator/internal/scene"
)

// Drag protocol constants.
const (
	// SnapGrid quantizes the candidate position, in mm.
	SnapGrid = 50.0
	// DragSensitivity converts vertical pointer pixels to mm.
	DragSensitivity = 2.5
)

// Ghost colors for valid and invalid candidate positions.
var (
	ghostValid   = color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0x90}
	ghostInvalid = color.NRGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0x90}
	planeColor   = color.NRGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0x50}
)

// DragPhase is the protocol state: idle until a pointer-down hits a
// draggable mesh, dragging until pointer-up or pointer-leave.
type DragPhase int

const (
	PhaseIdle DragPhase = iota
	PhaseDragging
)

// dragState carries the in-flight drag. Everything here is transient and
// cleared unconditionally when the drag ends, committed or not.
type dragState struct {
	phase     DragPhase
	cabinetID string
	moduleID  string

	original  float64 // module position at drag start, mm
	raw       float64 // unclamped candidate from pointer delta
	candidate float64 // clamped and snapped
	valid     bool
	moved     bool // snap indicator hidden until first move

	rangeMin float64
	rangeMax float64
	baseY    float64 // builder Y offset under the module position

	ghost *scene.Node
	plane *scene.Node

	created  int
	disposed int
}

// Controller mediates between pointer events, the scene arena, and the
// wizard dispatch. The render loop redraws every frame from the last-built
// arena plus the controller's transient drag overlay.
type Controller struct {
	Camera *Camera
	Arena  *scene.Arena

	// OnCommit dispatches the committed move back into the wizard.
	OnCommit func(cabinetID, moduleID string, position float64)

	drag dragState
}

// NewController wires a controller over an arena.
func NewController(arena *scene.Arena) *Controller {
	return &Controller{Camera: NewCamera(), Arena: arena}
}

// Phase returns the drag protocol state.
func (v *Controller) Phase() DragPhase { return v.drag.phase }

// DragValid reports whether the current candidate position is inside the
// cabinet's usable vertical range. Range is the whole validity rule:
// overlapping modules are not rejected.
func (v *Controller) DragValid() bool { return v.drag.valid }

// Candidate returns the snapped candidate position of the active drag.
func (v *Controller) Candidate() float64 { return v.drag.candidate }

// ParseModuleTag splits a scene hit-test tag into its cabinet and module
// IDs; ok is false for non-module tags.
func ParseModuleTag(tag string) (cabinetID, moduleID string, ok bool) {
	parts := strings.Split(tag, ":")
	if len(parts) != 3 || parts[0] != "module" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// StartDrag enters the dragging phase for a module picked by hit test.
// It spawns the semi-transparent ghost at the module's transform and the
// (initially hidden) snap-plane indicator.
func (v *Controller) StartDrag(tag string, cab config.Cabinet) bool {
	if v.drag.phase != PhaseIdle {
		return false
	}
	cabinetID, moduleID, ok := ParseModuleTag(tag)
	if !ok || cabinetID != cab.ID {
		return false
	}
	mod := cab.FindModule(moduleID)
	if mod == nil {
		return false
	}

	lo, hi := cab.ModuleRange()
	v.drag = dragState{
		phase:     PhaseDragging,
		cabinetID: cabinetID,
		moduleID:  moduleID,
		original:  mod.Position,
		raw:       mod.Position,
		candidate: snapInto(mod.Position, lo, hi),
		valid:     true,
		rangeMin:  lo,
		rangeMax:  hi,
	}

	src := v.findTagged(tag)
	ghost := scene.Node{
		Name: "drag-ghost", Kind: scene.KindBox, Color: ghostValid,
	}
	if src != nil {
		ghost.Kind = src.Kind
		ghost.Axis = src.Axis
		ghost.Size = src.Size
		ghost.Center = src.Center
		v.drag.baseY = src.Center.Y - mod.Position
	}
	v.drag.ghost = &ghost
	v.drag.plane = &scene.Node{
		Name: "snap-plane", Kind: scene.KindBox, Color: planeColor,
		Size:   r3.Vec{X: cab.Width * 1.4, Y: 2, Z: cab.Depth * 1.4},
		Center: ghost.Center,
	}
	v.drag.created = 2
	return true
}

// DragMove updates the candidate from the accumulated vertical pointer
// delta since drag start (screen pixels, positive downward). The delta is
// scaled by the fixed sensitivity and subtracted from the original model
// position, clamped to the usable range, then snapped to the grid.
func (v *Controller) DragMove(deltaY float64) {
	if v.drag.phase != PhaseDragging {
		return
	}
	d := &v.drag
	d.raw = d.original - deltaY*DragSensitivity
	d.candidate = snapInto(d.raw, d.rangeMin, d.rangeMax)
	d.valid = d.raw >= d.rangeMin && d.raw <= d.rangeMax
	d.moved = true

	if d.ghost != nil {
		d.ghost.Center.Y = d.baseY + d.candidate
		d.ghost.Color = ghostValid
		if !d.valid {
			d.ghost.Color = ghostInvalid
		}
	}
	if d.plane != nil {
		d.plane.Center.Y = d.baseY + d.candidate
	}
}

// EndDrag leaves the dragging phase. When the last candidate is valid the
// committed move is dispatched; either way every transient visual is
// disposed and the protocol returns to idle.
func (v *Controller) EndDrag() (committed bool) {
	if v.drag.phase != PhaseDragging {
		return false
	}
	d := v.drag
	if d.valid && d.moved && v.OnCommit != nil {
		v.OnCommit(d.cabinetID, d.moduleID, d.candidate)
		committed = true
	}
	v.disposeTransients()
	return committed
}

// CancelDrag aborts the drag (pointer left the viewport). Equivalent to an
// invalid release: nothing commits, transients are still cleaned up.
func (v *Controller) CancelDrag() {
	if v.drag.phase != PhaseDragging {
		return
	}
	v.drag.valid = false
	v.disposeTransients()
}

// disposeTransients releases the ghost and snap plane exactly once and
// resets the drag state machine to idle.
func (v *Controller) disposeTransients() {
	d := &v.drag
	if d.ghost != nil {
		d.ghost = nil
		d.disposed++
	}
	if d.plane != nil {
		d.plane = nil
		d.disposed++
	}
	v.drag = dragState{phase: PhaseIdle, created: d.created, disposed: d.disposed}
}

// TransientBalance returns created minus disposed overlay objects; zero
// whenever no drag is active.
func (v *Controller) TransientBalance() int {
	return v.drag.created - v.drag.disposed
}

func (v *Controller) findTagged(tag string) *scene.Node {
	for _, n := range v.Arena.Nodes() {
		if n.Tag == tag {
			return n
		}
	}
	return nil
}

func snap(p float64) float64 {
	return math.Round(p/SnapGrid) * SnapGrid
}

// snapInto clamps to the usable range before and after snapping. The range
// bounds are rarely grid multiples, so a snapped value near a bound can
// escape it; the final clamp keeps the ghost on the position the commit
// will actually produce.
func snapInto(p, lo, hi float64) float64 {
	return clampF(snap(clampF(p, lo, hi)), lo, hi)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Projection is one scene node flattened to screen space, ready for the
// canvas layer. Quads are billboards scaled by perspective depth; the
// painter's sort keeps far geometry behind near geometry.
type Projection struct {
	X, Y   float32 // top-left, pixels
	W, H   float32
	Depth  float64
	Color  color.NRGBA
	Kind   scene.Kind
	Dashed bool
	Label  string
	Tag    string
}

// Render projects the arena plus the drag overlay for a viewport of the
// given pixel size, back to front.
func (v *Controller) Render(width, height float64) []Projection {
	nodes := v.Arena.Nodes()
	out := make([]Projection, 0, len(nodes)+2)

	add := func(n *scene.Node) {
		x, y, depth, ok := v.Camera.Project(n.Center, width, height)
		if !ok {
			return
		}
		s := v.Camera.Scale(depth, height)
		w := n.Size.X * s
		h := n.Size.Y * s
		if n.Kind == scene.KindCylinder {
			switch n.Axis {
			case scene.AxisX:
				w = n.Size.Y * s
				h = n.Size.X * 2 * s
			case scene.AxisY:
				w = n.Size.X * 2 * s
				h = n.Size.Y * s
			default:
				w = n.Size.X * 2 * s
				h = n.Size.X * 2 * s
			}
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		out = append(out, Projection{
			X: float32(x - w/2), Y: float32(y - h/2),
			W: float32(w), H: float32(h),
			Depth: depth, Color: n.Color, Kind: n.Kind, Dashed: n.Dashed,
			Label: n.Label, Tag: n.Tag,
		})
	}

	for _, n := range nodes {
		add(n)
	}
	if v.drag.phase == PhaseDragging {
		if v.drag.moved && v.drag.plane != nil {
			add(v.drag.plane)
		}
		if v.drag.ghost != nil {
			add(v.drag.ghost)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth > out[j].Depth })
	return out
}

// HitTest returns the tag of the topmost tagged projection containing the
// point, or "" when nothing draggable is under the pointer.
func (v *Controller) HitTest(px, py float32, width, height float64) string {
	projs := v.Render(width, height)
	// Front-most last after the painter's sort; walk backwards.
	for i := len(projs) - 1; i >= 0; i-- {
		p := projs[i]
		if p.Tag == "" {
			continue
		}
		if px >= p.X && px <= p.X+p.W && py >= p.Y && py <= p.Y+p.H {
			return p.Tag
		}
	}
	return ""
}
