package pricing

import (
	"github.com/surmesure/configurator/internal/catalog"
)

// SketchCategory selects the simplified configurator's product kind.
type SketchCategory string

const (
	SketchFurniture SketchCategory = "meuble"
	SketchWorktop   SketchCategory = "plan-de-travail"
	SketchShelving  SketchCategory = "etagere"
)

// SketchShape is the worktop footprint.
type SketchShape string

const (
	ShapeI SketchShape = "I"
	ShapeL SketchShape = "L"
	ShapeU SketchShape = "U"
)

// SketchSpec is the input of the simplified 2D configurator: a single
// body described by outer dimensions (mm) plus category-specific options.
type SketchSpec struct {
	Category   SketchCategory `json:"category"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Depth      float64        `json:"depth"`
	Shape      SketchShape    `json:"shape"`       // worktop only
	ShelfCount int            `json:"shelf_count"` // shelving only
	Material   string         `json:"material"`
	Finish     string         `json:"finish"`
}

// SketchEstimate is the simplified price result.
type SketchEstimate struct {
	Surface    float64 `json:"surface"` // m²
	Material   float64 `json:"material_cost"`
	Finish     float64 `json:"finish_cost"`
	SubtotalHT float64 `json:"subtotal_ht"`
	TVA        float64 `json:"tva"`
	TotalTTC   float64 `json:"total_ttc"`
}

// shapeMultiplier scales a worktop's rectangular surface for non-straight
// footprints.
func shapeMultiplier(s SketchShape) float64 {
	switch s {
	case ShapeL:
		return 1.5
	case ShapeU:
		return 2.0
	default:
		return 1.0
	}
}

// SketchSurface computes the priced surface of a sketch spec in m².
// Furniture counts the carcass panels, a worktop its (shape-scaled) top,
// shelving its back panel plus every shelf.
func SketchSurface(spec SketchSpec) float64 {
	w := spec.Width / 1000
	h := spec.Height / 1000
	d := spec.Depth / 1000
	switch spec.Category {
	case SketchWorktop:
		return w * d * shapeMultiplier(spec.Shape)
	case SketchShelving:
		surface := w * h // back panel
		for i := 0; i < spec.ShelfCount; i++ {
			surface += w * d
		}
		return surface
	default:
		return 2*h*d + 2*w*d + w*h
	}
}

// EstimateSketch prices a sketch spec. Dimensions are clamped to the
// meuble envelope before pricing.
func EstimateSketch(cat *catalog.Catalog, spec SketchSpec) SketchEstimate {
	env := cat.EnvelopeFor("meuble")
	spec.Width = env.ClampWidth(spec.Width)
	spec.Height = env.ClampHeight(spec.Height)
	spec.Depth = env.ClampDepth(spec.Depth)

	surface := SketchSurface(spec)
	material := Round2(surface * cat.MaterialPrice(spec.Material))
	finish := Round2(surface * cat.FinishPrice(spec.Finish))
	subtotal := Round2(material + finish)
	tva := Round2(subtotal * TVARate)
	return SketchEstimate{
		Surface:    Round2(surface),
		Material:   material,
		Finish:     finish,
		SubtotalHT: subtotal,
		TVA:        tva,
		TotalTTC:   Round2(subtotal + tva),
	}
}
