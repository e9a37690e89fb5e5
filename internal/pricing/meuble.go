package pricing

import (
	"fmt"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

// priceMeuble prices the free-form furniture family.
//
// Material: per-cabinet carcass surface (2hd + 2wd + wh, m²) times the
// material rate. Modules: catalog unit price per instance. Hardware:
// 3 hinges per door, 1 slide pair per drawer, 1 support set per shelf,
// 1 handle per door and per drawer. Edge banding: front-face perimeter
// per cabinet times the material's matching banding rate. Finish: carcass
// surface times the finish rate.
func priceMeuble(cat *catalog.Catalog, cfg *config.MeubleConfig) Breakdown {
	var b Breakdown

	matPrice := cat.MaterialPrice(cfg.Material)
	matName := cfg.Material
	if m, ok := cat.Materials[cfg.Material]; ok {
		matName = m.Name
	}

	var doors, drawers, shelves int

	for i, cab := range cfg.Cabinets {
		surface := cabinetSurfaceSqm(cab)

		cost := Round2(surface * matPrice)
		b.MaterialCost = Round2(b.MaterialCost + cost)
		b.addItem(fmt.Sprintf("Caisson %d — panneaux", i+1), matName, Round2(surface), "m²", cost)

		for _, mod := range cab.Modules {
			price := Round2(cat.ModulePrice(string(mod.Type)))
			b.ModulesCost = Round2(b.ModulesCost + price)
			label := cat.Modules[string(mod.Type)].Label
			if label == "" {
				label = string(mod.Type)
			}
			b.addItem(label, fmt.Sprintf("Caisson %d", i+1), 1, "u", price)

			switch mod.Type {
			case config.ModulePorte:
				doors++
			case config.ModuleTiroir:
				drawers++
			case config.ModuleEtagere:
				shelves++
			}
		}
	}

	hw := cat.Hardware
	hingeCost := Round2(hw.HingePrice * float64(doors) * 3)
	slideCost := Round2(hw.SlidePrice * float64(drawers))
	supportCost := Round2(hw.ShelfSupportPrice * float64(shelves))
	handleCost := Round2(hw.HandlePrice * float64(doors+drawers))
	if doors > 0 {
		b.addItem("Charnières", "", float64(doors*3), "u", hingeCost)
	}
	if drawers > 0 {
		b.addItem("Coulisses", "", float64(drawers), "u", slideCost)
	}
	if shelves > 0 {
		b.addItem("Taquets d'étagère", "", float64(shelves), "u", supportCost)
	}
	if doors+drawers > 0 {
		b.addItem("Poignées", cfg.GlobalHandle, float64(doors+drawers), "u", handleCost)
	}
	b.HardwareCost = Round2(hingeCost + slideCost + supportCost + handleCost)

	edgeRate := cat.MaterialEdgePrice(cfg.Material)
	for i, cab := range cfg.Cabinets {
		perimeter := 2 * (cab.Width + cab.Height) / 1000 // front face, meters
		cost := Round2(perimeter * edgeRate)
		if cost > 0 {
			b.EdgeBandingCost = Round2(b.EdgeBandingCost + cost)
			b.addItem(fmt.Sprintf("Caisson %d — chants", i+1), "", Round2(perimeter), "ml", cost)
		}
	}

	finishRate := cat.FinishPrice(cfg.Finish)
	if finishRate > 0 {
		for i, cab := range cfg.Cabinets {
			surface := cabinetSurfaceSqm(cab)
			cost := Round2(surface * finishRate)
			b.FinishCost = Round2(b.FinishCost + cost)
			b.addItem(fmt.Sprintf("Caisson %d — finition", i+1), cfg.Finish, Round2(surface), "m²", cost)
		}
	}

	return finalize(b)
}
