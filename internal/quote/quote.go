// Package quote builds and submits quote requests to the external order
// endpoint. The endpoint persists, numbers, and mails the quote; this side
// only produces the payload and surfaces failures as recoverable errors,
// leaving the in-progress configuration untouched.
package quote

import (
	"fmt"
	"strings"

	"github.com/surmesure/configurator/internal/config"
	"github.com/surmesure/configurator/internal/pricing"
)

// Contact is the client side of the request.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}

// Request is the wire payload of a quote submission.
type Request struct {
	Contact     Contact            `json:"contact"`
	ProductType string             `json:"product_type"`
	ProductName string             `json:"product_name"`
	Dimensions  string             `json:"dimensions"`
	Material    string             `json:"material"`
	LineItems   []pricing.LineItem `json:"line_items"`
	SubtotalHT  float64            `json:"subtotal_ht"`
	TVA         float64            `json:"tva"`
	TotalTTC    float64            `json:"total_ttc"`
}

// BuildRequest assembles the payload from the current configuration and
// its price breakdown.
func BuildRequest(contact Contact, cfg config.Product, b pricing.Breakdown) Request {
	return Request{
		Contact:     contact,
		ProductType: string(cfg.Family()),
		ProductName: cfg.DisplayName(),
		Dimensions:  DimensionsString(cfg),
		Material:    materialOf(cfg),
		LineItems:   b.LineItems,
		SubtotalHT:  b.SubtotalHT,
		TVA:         b.TVA,
		TotalTTC:    b.TotalTTC,
	}
}

// DimensionsString renders a human-readable dimension summary per family.
func DimensionsString(cfg config.Product) string {
	switch c := cfg.(type) {
	case *config.MeubleConfig:
		if len(c.Cabinets) == 0 {
			return ""
		}
		h := c.Cabinets[0].Height
		d := c.Cabinets[0].Depth
		return fmt.Sprintf("L %.0f × H %.0f × P %.0f mm (%d caissons)", c.TotalWidth(), h, d, len(c.Cabinets))
	case *config.PlancheConfig:
		parts := make([]string, 0, len(c.Boards))
		for _, b := range c.Boards {
			parts = append(parts, fmt.Sprintf("%.0f×%.0f×%.0f ×%d", b.Length, b.Width, b.Thickness, b.Quantity))
		}
		return strings.Join(parts, ", ")
	case *config.CuisineConfig:
		var run float64
		for _, w := range c.Walls {
			run += w.Length
		}
		return fmt.Sprintf("Implantation %s, %.1f m de murs, %d caissons", c.Layout, run/1000, len(c.Placements()))
	default:
		return ""
	}
}

func materialOf(cfg config.Product) string {
	switch c := cfg.(type) {
	case *config.MeubleConfig:
		return c.Material
	case *config.PlancheConfig:
		return c.Material
	case *config.CuisineConfig:
		return c.FacadeMaterial
	default:
		return ""
	}
}
