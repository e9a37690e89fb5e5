package pricing

import (
	"fmt"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

// facadeBaseline is the facade material rate already included in the
// kitchen catalog prices; only the excess above it is surcharged.
const facadeBaseline = 30.0

// Coarse per-cabinet approximations used instead of exact geometry for
// kitchen edge banding and finish. Quotes depend on these exact values.
const (
	kitchenEdgePerCabinetM   = 2.0 // meters of visible banding per cabinet
	kitchenFacePerCabinetSqm = 1.5 // m² of finished face per cabinet
)

// priceCuisine prices the modular kitchen family.
func priceCuisine(cat *catalog.Catalog, cfg *config.CuisineConfig) Breakdown {
	var b Breakdown

	placements := cfg.Placements()

	var doors, drawers int
	for _, pl := range placements {
		entry, ok := cat.KitchenCabinetByKey(pl.CatalogKey)
		if !ok {
			// Unknown catalog entries price at zero rather than failing.
			continue
		}
		scale := 1.0
		if entry.DefaultWidth > 0 && pl.Width/entry.DefaultWidth > 1 {
			scale = pl.Width / entry.DefaultWidth
		}
		cost := Round2(entry.BasePrice * scale)
		b.ModulesCost = Round2(b.ModulesCost + cost)
		b.addItem(entry.Label, fmt.Sprintf("%.0f mm", pl.Width), 1, "u", cost)

		if entry.HasDoor {
			doors++
		}
		if entry.HasDrawer {
			drawers++
		}
	}

	facadePrice := cat.MaterialPrice(cfg.FacadeMaterial)
	if facadePrice > facadeBaseline && len(placements) > 0 {
		surcharge := Round2((facadePrice - facadeBaseline) * float64(len(placements)) * 0.5)
		b.MaterialCost = Round2(b.MaterialCost + surcharge)
		b.addItem("Supplément façades", cfg.FacadeMaterial, float64(len(placements)), "u", surcharge)
	}

	hw := cat.Hardware
	hingeCost := Round2(hw.HingePrice * float64(doors) * 3)
	slideCost := Round2(hw.SlidePrice * float64(drawers))
	handleCost := Round2(hw.HandlePrice * float64(doors+drawers))
	if doors > 0 {
		b.addItem("Charnières", "", float64(doors*3), "u", hingeCost)
	}
	if drawers > 0 {
		b.addItem("Coulisses", "", float64(drawers), "u", slideCost)
	}
	if doors+drawers > 0 {
		b.addItem("Poignées", cfg.GlobalHandle, float64(doors+drawers), "u", handleCost)
	}
	b.HardwareCost = Round2(hingeCost + slideCost + handleCost)

	ctopRate := cat.MaterialPrice(cfg.Countertop.Material)
	var runM float64
	for _, pl := range cfg.BaseCabinets {
		runM += pl.Width / 1000
	}
	if runM > 0 && ctopRate > 0 {
		depth := cfg.Countertop.DepthM()
		cost := Round2(runM * depth * ctopRate)
		b.CountertopCost = Round2(b.CountertopCost + cost)
		b.addItem("Plan de travail", cfg.Countertop.Material, Round2(runM*depth), "m²", cost)

		if h := cfg.Countertop.BacksplashHeight; h > 0 {
			bsCost := Round2(runM * h / 1000 * ctopRate * 0.6)
			b.CountertopCost = Round2(b.CountertopCost + bsCost)
			b.addItem("Crédence", cfg.Countertop.Material, Round2(runM*h/1000), "m²", bsCost)
		}
	}

	edgeRate := cat.MaterialEdgePrice(cfg.FacadeMaterial)
	if edgeRate > 0 && len(placements) > 0 {
		cost := Round2(kitchenEdgePerCabinetM * float64(len(placements)) * edgeRate)
		b.EdgeBandingCost = Round2(b.EdgeBandingCost + cost)
		b.addItem("Chants façades", "", Round2(kitchenEdgePerCabinetM*float64(len(placements))), "ml", cost)
	}

	finishRate := cat.FinishPrice(cfg.Finish)
	if finishRate > 0 && len(placements) > 0 {
		cost := Round2(kitchenFacePerCabinetSqm * float64(len(placements)) * finishRate)
		b.FinishCost = Round2(b.FinishCost + cost)
		b.addItem("Finition façades", cfg.Finish, Round2(kitchenFacePerCabinetSqm*float64(len(placements))), "m²", cost)
	}

	return finalize(b)
}
