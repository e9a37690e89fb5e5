// Package catalog holds the immutable reference tables the configurator
// prices and draws from: materials, module and hardware prices, kitchen
// cabinet descriptors, templates, and per-family dimensional envelopes.
// Lookups never fail hard; a missing key degrades to a zero-cost or
// default-colored fallback so pricing and geometry stay total.
package catalog

// Material describes a panel material with its price and display color.
type Material struct {
	Key          string  `json:"key"`
	Name         string  `json:"name"`
	PricePerSqm  float64 `json:"price_per_sqm"`  // EUR per square meter
	EdgePerM     float64 `json:"edge_per_m"`     // EUR per linear meter of matching edge banding
	Color        string  `json:"color"`          // hex RGB, e.g. "#C19A6B"
	ForCarcass   bool    `json:"for_carcass"`    // usable as kitchen carcass material
	ForFacade    bool    `json:"for_facade"`     // usable as kitchen facade material
	ForWorktop   bool    `json:"for_worktop"`    // usable as countertop material
}

// ModuleOption describes an internal cabinet fitting (shelf, drawer, rail,
// niche, door) with its unit price.
type ModuleOption struct {
	Key           string  `json:"key"`
	Label         string  `json:"label"`
	BasePrice     float64 `json:"base_price"` // EUR per unit
	DefaultHeight float64 `json:"default_height"`
}

// Hardware holds the per-piece prices used by the hardware cost formula.
type Hardware struct {
	HingePrice        float64 `json:"hinge_price"`         // per hinge, 3 per door
	SlidePrice        float64 `json:"slide_price"`         // per pair, 1 per drawer
	ShelfSupportPrice float64 `json:"shelf_support_price"` // per set, 1 per shelf
	HandlePrice       float64 `json:"handle_price"`        // per handle
}

// HandleStyle is a selectable handle finish.
type HandleStyle struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// FinishOption is a surface finish with its price per square meter.
type FinishOption struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	PricePerSqm float64 `json:"price_per_sqm"`
}

// EdgeBandingOption is an edge banding type priced per linear meter.
type EdgeBandingOption struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	PricePerM float64 `json:"price_per_m"`
}

// Template is a predefined meuble starting point. FeetStyle is one of
// "", "rond", "carre", "incline". SlidingDoors switches door rendering
// and hardware from hinges to slides.
type Template struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	HasBack      bool   `json:"has_back"`
	FeetStyle    string `json:"feet_style"`
	SlidingDoors bool   `json:"sliding_doors"`
}

// KitchenCategory classifies a kitchen cabinet placement list.
type KitchenCategory string

const (
	KitchenBase KitchenCategory = "bas"
	KitchenWall KitchenCategory = "haut"
	KitchenTall KitchenCategory = "colonne"
)

// KitchenCabinet describes one catalog entry for the cuisine family.
// BasePrice applies at DefaultWidth; wider placements scale linearly.
type KitchenCabinet struct {
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	Category     KitchenCategory `json:"category"`
	BasePrice    float64         `json:"base_price"`
	DefaultWidth float64         `json:"default_width"` // mm
	WidthOptions []float64       `json:"width_options"` // mm
	HasDoor      bool            `json:"has_door"`
	HasDrawer    bool            `json:"has_drawer"`
}

// Envelope is the accepted dimensional range per axis, in mm.
type Envelope struct {
	MinWidth  float64 `json:"min_width"`
	MaxWidth  float64 `json:"max_width"`
	MinHeight float64 `json:"min_height"`
	MaxHeight float64 `json:"max_height"`
	MinDepth  float64 `json:"min_depth"`
	MaxDepth  float64 `json:"max_depth"`
}

// ClampWidth returns w clamped into the envelope's width range.
func (e Envelope) ClampWidth(w float64) float64 { return clamp(w, e.MinWidth, e.MaxWidth) }

// ClampHeight returns h clamped into the envelope's height range.
func (e Envelope) ClampHeight(h float64) float64 { return clamp(h, e.MinHeight, e.MaxHeight) }

// ClampDepth returns d clamped into the envelope's depth range.
func (e Envelope) ClampDepth(d float64) float64 { return clamp(d, e.MinDepth, e.MaxDepth) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Catalog bundles all reference tables. It is loaded once at startup and
// never mutated afterwards; pricing and scene building receive it as an
// explicit parameter.
type Catalog struct {
	Materials    map[string]Material          `json:"materials"`
	Modules      map[string]ModuleOption      `json:"modules"`
	Hardware     Hardware                     `json:"hardware"`
	Handles      map[string]HandleStyle       `json:"handles"`
	Finishes     map[string]FinishOption      `json:"finishes"`
	EdgeBandings map[string]EdgeBandingOption `json:"edge_bandings"`
	Templates    map[string]Template          `json:"templates"`
	Kitchen      map[string]KitchenCabinet    `json:"kitchen"`

	// Envelopes keyed by product family ("meuble", "planche", "cuisine").
	Envelopes map[string]Envelope `json:"envelopes"`

	// BoardThicknesses is the fixed set of orderable planche thicknesses (mm).
	BoardThicknesses []float64 `json:"board_thicknesses"`
}

// MaterialPrice returns the price per m² for a material key, 0 if unknown.
func (c *Catalog) MaterialPrice(key string) float64 {
	return c.Materials[key].PricePerSqm
}

// MaterialEdgePrice returns the matching banding price per meter, 0 if unknown.
func (c *Catalog) MaterialEdgePrice(key string) float64 {
	return c.Materials[key].EdgePerM
}

// MaterialColor returns the display color for a material, or a neutral
// wood tone when the key is unknown.
func (c *Catalog) MaterialColor(key string) string {
	if m, ok := c.Materials[key]; ok && m.Color != "" {
		return m.Color
	}
	return "#C19A6B"
}

// ModulePrice returns the unit price for a module type, 0 if unknown.
func (c *Catalog) ModulePrice(key string) float64 {
	return c.Modules[key].BasePrice
}

// FinishPrice returns the price per m² for a finish key, 0 if unknown.
func (c *Catalog) FinishPrice(key string) float64 {
	return c.Finishes[key].PricePerSqm
}

// EdgeBandingPrice returns the price per meter for a banding key, 0 if unknown.
func (c *Catalog) EdgeBandingPrice(key string) float64 {
	return c.EdgeBandings[key].PricePerM
}

// KitchenCabinetByKey returns the kitchen catalog entry and whether it exists.
func (c *Catalog) KitchenCabinetByKey(key string) (KitchenCabinet, bool) {
	k, ok := c.Kitchen[key]
	return k, ok
}

// TemplateByKey returns the template descriptor; unknown keys fall back to
// a closed carcass with a back panel and no feet.
func (c *Catalog) TemplateByKey(key string) Template {
	if t, ok := c.Templates[key]; ok {
		return t
	}
	return Template{Key: key, HasBack: true}
}

// EnvelopeFor returns the dimensional envelope for a product family.
// Unknown families get a permissive default so clamping stays total.
func (c *Catalog) EnvelopeFor(family string) Envelope {
	if e, ok := c.Envelopes[family]; ok {
		return e
	}
	return Envelope{MinWidth: 1, MaxWidth: 10000, MinHeight: 1, MaxHeight: 10000, MinDepth: 1, MaxDepth: 10000}
}

// NearestBoardThickness snaps t to the closest orderable thickness.
func (c *Catalog) NearestBoardThickness(t float64) float64 {
	if len(c.BoardThicknesses) == 0 {
		return t
	}
	best := c.BoardThicknesses[0]
	for _, cand := range c.BoardThicknesses[1:] {
		if abs(cand-t) < abs(best-t) {
			best = cand
		}
	}
	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
