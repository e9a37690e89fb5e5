// Package pricing maps a product configuration to a priced line-item
// breakdown. Every function is pure: the catalog is passed in explicitly,
// unknown keys price at zero, and nothing here can fail.
//
// Monetary values are rounded to 2 decimals at the point of computation,
// not deferred to the end; reference quote totals depend on the step-wise
// rounding order.
package pricing

import (
	"math"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

// TVARate is the fixed French VAT applied to every quote.
const TVARate = 0.20

// LineItem is one priced contributor, kept in computation order for
// display and audit.
type LineItem struct {
	Label    string  `json:"label"`
	Detail   string  `json:"detail,omitempty"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"` // "m²", "ml", "u", "forfait"
	Amount   float64 `json:"amount"`
}

// Breakdown is the full priced decomposition of a configuration.
type Breakdown struct {
	MaterialCost    float64    `json:"material_cost"`
	ModulesCost     float64    `json:"modules_cost"`
	HardwareCost    float64    `json:"hardware_cost"`
	EdgeBandingCost float64    `json:"edge_banding_cost"`
	FinishCost      float64    `json:"finish_cost"`
	CountertopCost  float64    `json:"countertop_cost"`
	SubtotalHT      float64    `json:"subtotal_ht"`
	TVA             float64    `json:"tva"`
	TotalTTC        float64    `json:"total_ttc"`
	LineItems       []LineItem `json:"line_items"`
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Price dispatches on the configuration family. Unknown families yield an
// empty, zero-total breakdown.
func Price(cat *catalog.Catalog, cfg config.Product) Breakdown {
	switch c := cfg.(type) {
	case *config.MeubleConfig:
		return priceMeuble(cat, c)
	case *config.PlancheConfig:
		return pricePlanche(cat, c)
	case *config.CuisineConfig:
		return priceCuisine(cat, c)
	default:
		return finalize(Breakdown{})
	}
}

// finalize sums the cost buckets, applies the tax, and rounds each
// aggregation step.
func finalize(b Breakdown) Breakdown {
	b.SubtotalHT = Round2(b.MaterialCost + b.ModulesCost + b.HardwareCost +
		b.EdgeBandingCost + b.FinishCost + b.CountertopCost)
	b.TVA = Round2(b.SubtotalHT * TVARate)
	b.TotalTTC = Round2(b.SubtotalHT + b.TVA)
	return b
}

func (b *Breakdown) addItem(label, detail string, qty float64, unit string, amount float64) {
	b.LineItems = append(b.LineItems, LineItem{
		Label:    label,
		Detail:   detail,
		Quantity: qty,
		Unit:     unit,
		Amount:   amount,
	})
}

// cabinetSurfaceSqm is the priced panel surface of one carcass:
// two sides, top and bottom, and the front-face opening, in m².
func cabinetSurfaceSqm(c config.Cabinet) float64 {
	w := c.Width / 1000
	h := c.Height / 1000
	d := c.Depth / 1000
	return 2*h*d + 2*w*d + w*h
}
