package pricing

import (
	"fmt"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

// referenceThickness is the 18 mm panel the material rate is quoted for;
// other thicknesses scale the rate proportionally.
const referenceThickness = 18.0

// pricePlanche prices the cut-to-size board family.
//
// Material: board surface times thickness ratio times rate times quantity.
// Edges: banded side length times banding rate times quantity, per side.
// Finish: both faces of every board.
func pricePlanche(cat *catalog.Catalog, cfg *config.PlancheConfig) Breakdown {
	var b Breakdown

	matPrice := cat.MaterialPrice(cfg.Material)
	matName := cfg.Material
	if m, ok := cat.Materials[cfg.Material]; ok {
		matName = m.Name
	}

	for i, board := range cfg.Boards {
		qty := float64(board.Quantity)
		surface := board.SurfaceSqm()
		ratio := board.Thickness / referenceThickness

		cost := Round2(surface * ratio * matPrice * qty)
		b.MaterialCost = Round2(b.MaterialCost + cost)
		b.addItem(
			fmt.Sprintf("Planche %d (%.0f × %.0f × %.0f)", i+1, board.Length, board.Width, board.Thickness),
			matName, qty, "u", cost)

		edgeCost := 0.0
		sides := []struct {
			key    string
			length float64 // mm
		}{
			{board.Edges.Top, board.Length},
			{board.Edges.Bottom, board.Length},
			{board.Edges.Left, board.Width},
			{board.Edges.Right, board.Width},
		}
		for _, side := range sides {
			if side.key == "" {
				continue
			}
			rate := cat.EdgeBandingPrice(side.key)
			edgeCost = Round2(edgeCost + Round2(side.length/1000*rate*qty))
		}
		if edgeCost > 0 {
			b.EdgeBandingCost = Round2(b.EdgeBandingCost + edgeCost)
			b.addItem(fmt.Sprintf("Planche %d — chants", i+1), "", float64(board.Edges.BandedCount()), "côtés", edgeCost)
		}
	}

	finishRate := cat.FinishPrice(cfg.Finish)
	if finishRate > 0 {
		for i, board := range cfg.Boards {
			qty := float64(board.Quantity)
			// Both faces are finished.
			surface := board.SurfaceSqm() * 2
			cost := Round2(surface * finishRate * qty)
			b.FinishCost = Round2(b.FinishCost + cost)
			b.addItem(fmt.Sprintf("Planche %d — finition", i+1), cfg.Finish, Round2(surface*qty), "m²", cost)
		}
	}

	return finalize(b)
}
