// Package scene builds the procedural 3D representation of a product
// configuration. Nodes live in an arena owned by the rebuild cycle: every
// configuration change clears the arena (releasing the previous generation
// in one step) and reconstructs the model from scratch. There is no
// incremental diffing; full rebuild trades cost for the guarantee that no
// stale geometry survives an edit.
package scene

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Kind is the node geometry type.
type Kind int

const (
	KindBox      Kind = iota // solid box, Size = width/height/depth
	KindCylinder             // Size.X = radius, Size.Y = length, axis per Axis
	KindOutline              // wireframe box, optionally dashed
)

// Axis orients a cylinder.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Node is one retained geometry entry. Center is the geometric center in
// mm (Y up, furniture front toward +Z). YawDeg rotates the node around the
// vertical axis, used by kitchen walls. Tag carries hit-test identity for
// the viewport ("module:<cabinetID>:<moduleID>" on draggable fittings).
type Node struct {
	Name       string
	Tag        string
	Kind       Kind
	Axis       Axis
	Size       r3.Vec
	Center     r3.Vec
	YawDeg     float64
	Color      color.NRGBA
	Dashed     bool
	Label      string // measurement text drawn next to dimension lines
	Generation uint64
}

// Arena owns all scene nodes of the current generation. Rebuild protocol:
// Reset, then Add for every node of the new model. Nodes from earlier
// generations are released exactly once, by the Reset that supersedes them.
type Arena struct {
	generation uint64
	nodes      []*Node

	allocated uint64
	released  uint64
}

// NewArena returns an empty arena at generation 0.
func NewArena() *Arena { return &Arena{} }

// Reset releases the current generation and starts the next one.
func (a *Arena) Reset() {
	a.released += uint64(len(a.nodes))
	a.nodes = a.nodes[:0]
	a.generation++
}

// Add allocates a node into the current generation and returns it.
func (a *Arena) Add(n Node) *Node {
	n.Generation = a.generation
	stored := &n
	a.nodes = append(a.nodes, stored)
	a.allocated++
	return stored
}

// Nodes returns the live node list. Callers must not retain the slice
// across a Reset.
func (a *Arena) Nodes() []*Node { return a.nodes }

// Len returns the live node count.
func (a *Arena) Len() int { return len(a.nodes) }

// Generation returns the current generation counter.
func (a *Arena) Generation() uint64 { return a.generation }

// Leaked reports allocations not yet covered by a release; after any
// Reset it counts exactly the live nodes.
func (a *Arena) Leaked() uint64 { return a.allocated - a.released }

// Bounds returns the axis-aligned bounding box of all live nodes. The
// second return is false for an empty arena.
func (a *Arena) Bounds() (min, max r3.Vec, ok bool) {
	if len(a.nodes) == 0 {
		return r3.Vec{}, r3.Vec{}, false
	}
	first := true
	for _, n := range a.nodes {
		half := r3.Scale(0.5, n.Size)
		lo := r3.Sub(n.Center, half)
		hi := r3.Add(n.Center, half)
		if first {
			min, max = lo, hi
			first = false
			continue
		}
		min = r3.Vec{X: minF(min.X, lo.X), Y: minF(min.Y, lo.Y), Z: minF(min.Z, lo.Z)}
		max = r3.Vec{X: maxF(max.X, hi.X), Y: maxF(max.Y, hi.Y), Z: maxF(max.Z, hi.Z)}
	}
	return min, max, true
}

// Center returns the midpoint of the bounding box, the orbit target after
// a rebuild.
func (a *Arena) Center() r3.Vec {
	min, max, ok := a.Bounds()
	if !ok {
		return r3.Vec{}
	}
	return r3.Scale(0.5, r3.Add(min, max))
}

// Extent returns the largest bounding-box dimension, used to place the
// camera far enough to avoid clipping.
func (a *Arena) Extent() float64 {
	min, max, ok := a.Bounds()
	if !ok {
		return 0
	}
	d := r3.Sub(max, min)
	return maxF(d.X, maxF(d.Y, d.Z))
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
