package scene

import (
	"image/color"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/pricing"
)

// Rect2D is one filled or stroked rectangle of the 2D silhouette, in mm
// with the origin at the bottom-left of the drawing.
type Rect2D struct {
	X, Y, W, H float64
	Color      color.NRGBA
	Filled     bool
}

// Sketch is the flattened 2D model of the simplified configurator.
type Sketch struct {
	Rects  []Rect2D
	Width  float64 // overall silhouette width, mm
	Height float64 // overall silhouette height, mm
}

const sketchPanel = 19.0 // drawn panel thickness

// BuildSketch computes the 2D front silhouette for a sketch spec.
// Furniture draws the carcass front; a worktop draws its footprint from
// above (I, L, or U); shelving draws the back panel with its shelves.
func BuildSketch(cat *catalog.Catalog, spec pricing.SketchSpec) Sketch {
	body := ColorFromHex(cat.MaterialColor(spec.Material))
	outline := shade(body, 0.6)

	w, h, d := spec.Width, spec.Height, spec.Depth

	switch spec.Category {
	case pricing.SketchWorktop:
		return worktopSketch(spec.Shape, w, d, body)

	case pricing.SketchShelving:
		s := Sketch{Width: w, Height: h}
		s.Rects = append(s.Rects, Rect2D{X: 0, Y: 0, W: w, H: h, Color: shade(body, 0.85), Filled: true})
		n := spec.ShelfCount
		for i := 1; i <= n; i++ {
			y := float64(i) * h / float64(n+1)
			s.Rects = append(s.Rects, Rect2D{X: 0, Y: y - sketchPanel/2, W: w, H: sketchPanel, Color: body, Filled: true})
		}
		return s

	default: // furniture front view
		s := Sketch{Width: w, Height: h}
		s.Rects = append(s.Rects,
			Rect2D{X: 0, Y: 0, W: sketchPanel, H: h, Color: body, Filled: true},
			Rect2D{X: w - sketchPanel, Y: 0, W: sketchPanel, H: h, Color: body, Filled: true},
			Rect2D{X: 0, Y: 0, W: w, H: sketchPanel, Color: body, Filled: true},
			Rect2D{X: 0, Y: h - sketchPanel, W: w, H: sketchPanel, Color: body, Filled: true},
			Rect2D{X: 0, Y: 0, W: w, H: h, Color: outline, Filled: false},
		)
		return s
	}
}

// worktopSketch draws the top-down footprint of a worktop run.
func worktopSketch(shape pricing.SketchShape, w, d float64, body color.NRGBA) Sketch {
	s := Sketch{Width: w, Height: w} // square canvas fits L and U returns
	switch shape {
	case pricing.ShapeL:
		s.Rects = append(s.Rects,
			Rect2D{X: 0, Y: 0, W: w, H: d, Color: body, Filled: true},
			Rect2D{X: 0, Y: d, W: d, H: w/2 - d, Color: body, Filled: true},
		)
		s.Height = w / 2
	case pricing.ShapeU:
		s.Rects = append(s.Rects,
			Rect2D{X: 0, Y: 0, W: w, H: d, Color: body, Filled: true},
			Rect2D{X: 0, Y: d, W: d, H: w/2 - d, Color: body, Filled: true},
			Rect2D{X: w - d, Y: d, W: d, H: w/2 - d, Color: body, Filled: true},
		)
		s.Height = w / 2
	default:
		s.Rects = append(s.Rects, Rect2D{X: 0, Y: 0, W: w, H: d, Color: body, Filled: true})
		s.Height = d
	}
	return s
}
