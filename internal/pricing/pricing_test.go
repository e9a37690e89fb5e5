package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -1.24, Round2(-1.235)) // half away from zero
	assert.Equal(t, 0.0, Round2(0))
}

func TestPriceDefaultMeuble(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()

	b := Price(cat, cfg)

	// One 800×2200×600 cabinet: 2hd + 2wd + wh = 2.64 + 0.96 + 1.76 = 5.36 m²
	// at 45 €/m² oak.
	assert.InDelta(t, 241.20, b.MaterialCost, 0.001)
	// Three shelves at 15 €.
	assert.InDelta(t, 45.0, b.ModulesCost, 0.001)
	// Shelf supports only: 3 × 1.50 €. No doors, no drawers.
	assert.InDelta(t, 4.50, b.HardwareCost, 0.001)
	// Front-face perimeter 6 m × 2 €/m oak banding.
	assert.InDelta(t, 12.0, b.EdgeBandingCost, 0.001)
	// Raw finish prices at zero.
	assert.Zero(t, b.FinishCost)

	assert.InDelta(t, 302.70, b.SubtotalHT, 0.001)
	assert.InDelta(t, 60.54, b.TVA, 0.001)
	assert.InDelta(t, 363.24, b.TotalTTC, 0.001)
}

func TestPriceMeubleDoorAndDrawerHardware(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	cfg.Cabinets[0].Modules = []config.Module{
		config.NewModule(config.ModulePorte, 1000, 800, 0),
		config.NewModule(config.ModuleTiroir, 300, 800, 150),
	}

	b := Price(cat, cfg)

	// 1 door → 3 hinges × 3.50 = 10.50, 1 drawer → 1 slide pair = 12,
	// 2 handles × 6 = 12.
	assert.InDelta(t, 34.50, b.HardwareCost, 0.001)
	// Door 60 € + drawer 45 €.
	assert.InDelta(t, 105.0, b.ModulesCost, 0.001)
}

func TestPriceMeubleFinish(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	cfg.Finish = "huile" // 8 €/m²

	b := Price(cat, cfg)
	assert.InDelta(t, 5.36*8, b.FinishCost, 0.01)
}

func TestPriceMeubleUnknownKeysPriceAtZero(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	cfg.Material = "licorne"
	cfg.Finish = "paillettes"

	b := Price(cat, cfg)
	assert.Zero(t, b.MaterialCost)
	assert.Zero(t, b.EdgeBandingCost)
	assert.Zero(t, b.FinishCost)
	// Modules and hardware still price normally.
	assert.InDelta(t, 45.0, b.ModulesCost, 0.001)
}

func TestPriceMeubleAddingModuleRaisesTotal(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	before := Price(cat, cfg).TotalTTC

	cfg.Cabinets[0].Modules = append(cfg.Cabinets[0].Modules,
		config.NewModule(config.ModuleTiroir, 400, 800, 150))
	after := Price(cat, cfg).TotalTTC

	assert.Greater(t, after, before)
}

func TestPricePlancheFullyBandedBoard(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultPlanche()
	cfg.Boards[0].Quantity = 2
	cfg.Boards[0].Edges = config.EdgeBanding{
		Top: "assorti", Bottom: "assorti", Left: "assorti", Right: "assorti",
	}

	b := Price(cat, cfg)

	// 800×400 board: (2×0.8 + 2×0.4) m × 2 €/m × 2 boards.
	assert.InDelta(t, 9.60, b.EdgeBandingCost, 0.001)
	// 0.32 m² × (18/18) × 45 €/m² × 2.
	assert.InDelta(t, 28.80, b.MaterialCost, 0.001)
	assert.InDelta(t, 38.40, b.SubtotalHT, 0.001)
}

func TestPricePlancheThicknessRatio(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultPlanche()
	cfg.Boards[0].Thickness = 38

	b := Price(cat, cfg)
	// 0.32 m² × (38/18) × 45 €/m².
	assert.InDelta(t, Round2(0.32*38.0/18.0*45), b.MaterialCost, 0.001)
}

func TestPricePlancheFinishBothFaces(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultPlanche()
	cfg.Finish = "vernis" // 12 €/m²

	b := Price(cat, cfg)
	// Both faces: 0.32 × 2 × 12.
	assert.InDelta(t, 7.68, b.FinishCost, 0.001)
}

func kitchenWithBaseCabinets(t *testing.T, keys ...string) *config.CuisineConfig {
	t.Helper()
	cfg := config.DefaultCuisine()
	wall := cfg.Walls[0].ID
	for _, key := range keys {
		cfg.BaseCabinets = append(cfg.BaseCabinets, config.NewKitchenPlacement(key, 600, wall))
	}
	cfg.NormalizePlacements()
	return cfg
}

func TestPriceCuisineCountertop(t *testing.T) {
	cat := catalog.Default()
	cfg := kitchenWithBaseCabinets(t, "bas-porte", "bas-porte")
	cfg.Countertop = config.Countertop{Material: "bois-massif", Overhang: 30}

	b := Price(cat, cfg)

	// 1.2 m run × (0.58 + 0.030) m depth × 80 €/m².
	assert.InDelta(t, 58.56, b.CountertopCost, 0.001)
}

func TestPriceCuisineBacksplash(t *testing.T) {
	cat := catalog.Default()
	cfg := kitchenWithBaseCabinets(t, "bas-porte")
	cfg.Countertop = config.Countertop{Material: "stratifie", BacksplashHeight: 500}

	b := Price(cat, cfg)

	// Top: 0.6 × 0.65 × 45 = 17.55. Backsplash: 0.6 × 0.5 × 45 × 0.6 = 8.10.
	assert.InDelta(t, 25.65, b.CountertopCost, 0.001)
}

func TestPriceCuisineWidthScale(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultCuisine()
	wall := cfg.Walls[0].ID

	// Wider than the catalog default scales the base price up.
	cfg.BaseCabinets = []config.KitchenPlacement{config.NewKitchenPlacement("bas-porte", 800, wall)}
	b := Price(cat, cfg)
	require.NotEmpty(t, b.LineItems)
	assert.InDelta(t, 160.0, b.ModulesCost, 0.001) // 120 × 800/600

	// Narrower than the default never scales down.
	cfg.BaseCabinets = []config.KitchenPlacement{config.NewKitchenPlacement("bas-porte", 400, wall)}
	b = Price(cat, cfg)
	assert.InDelta(t, 120.0, b.ModulesCost, 0.001)
}

func TestPriceCuisineFacadeSurcharge(t *testing.T) {
	cat := catalog.Default()

	// Mélaminé at 25 €/m² stays under the 30 € baseline: no surcharge.
	cfg := kitchenWithBaseCabinets(t, "bas-porte", "bas-tiroirs")
	b := Price(cat, cfg)
	assert.Zero(t, b.MaterialCost)

	// Walnut at 65 €/m²: (65 − 30) × 2 cabinets × 0.5.
	cfg.FacadeMaterial = "noyer"
	b = Price(cat, cfg)
	assert.InDelta(t, 35.0, b.MaterialCost, 0.001)
}

func TestPriceCuisineHardwareFromCatalogFlags(t *testing.T) {
	cat := catalog.Default()
	cfg := kitchenWithBaseCabinets(t, "bas-porte", "bas-tiroirs", "bas-four")

	b := Price(cat, cfg)

	// bas-porte has a door, bas-tiroirs a drawer, bas-four neither.
	// 1 door × 3 hinges × 3.50 + 1 slide × 12 + 2 handles × 6.
	assert.InDelta(t, 34.50, b.HardwareCost, 0.001)
}

func TestPriceCuisineUnknownCatalogKeyIgnored(t *testing.T) {
	cat := catalog.Default()
	cfg := kitchenWithBaseCabinets(t, "caisson-fantome")

	b := Price(cat, cfg)
	assert.Zero(t, b.ModulesCost)
}

func TestTaxInvariant(t *testing.T) {
	cat := catalog.Default()
	for _, cfg := range []config.Product{
		config.DefaultMeuble(),
		config.DefaultPlanche(),
		kitchenWithBaseCabinets(t, "bas-porte", "bas-evier"),
	} {
		b := Price(cat, cfg)
		assert.InDelta(t, Round2(b.SubtotalHT*TVARate), b.TVA, 0.001, "family %s", cfg.Family())
		assert.InDelta(t, Round2(b.SubtotalHT+b.TVA), b.TotalTTC, 0.001, "family %s", cfg.Family())
	}
}

func TestLineItemsFollowComputationOrder(t *testing.T) {
	cat := catalog.Default()
	b := Price(cat, config.DefaultMeuble())

	require.GreaterOrEqual(t, len(b.LineItems), 5)
	assert.Equal(t, "Caisson 1 — panneaux", b.LineItems[0].Label)
	assert.Equal(t, "Étagère", b.LineItems[1].Label)

	var sum float64
	for _, li := range b.LineItems {
		sum += li.Amount
	}
	assert.InDelta(t, b.SubtotalHT, Round2(sum), 0.02)
}

func TestSketchSurface(t *testing.T) {
	// Worktop shapes scale the top surface.
	base := SketchSpec{Category: SketchWorktop, Width: 2000, Depth: 600, Shape: ShapeI}
	assert.InDelta(t, 1.2, SketchSurface(base), 0.001)
	base.Shape = ShapeL
	assert.InDelta(t, 1.8, SketchSurface(base), 0.001)
	base.Shape = ShapeU
	assert.InDelta(t, 2.4, SketchSurface(base), 0.001)

	// Shelving: back panel plus one face per shelf.
	sh := SketchSpec{Category: SketchShelving, Width: 1000, Height: 2000, Depth: 300, ShelfCount: 4}
	assert.InDelta(t, 2.0+4*0.3, SketchSurface(sh), 0.001)

	// Furniture uses the carcass formula.
	fu := SketchSpec{Category: SketchFurniture, Width: 800, Height: 2200, Depth: 600}
	assert.InDelta(t, 5.36, SketchSurface(fu), 0.001)
}

func TestEstimateSketchClampsDimensions(t *testing.T) {
	cat := catalog.Default()
	est := EstimateSketch(cat, SketchSpec{
		Category: SketchFurniture,
		Width:    50000, Height: 2200, Depth: 600,
		Material: "chene", Finish: "brut",
	})

	// Width clamps to 3000: 2×2.2×0.6 + 2×3×0.6 + 3×2.2 = 12.84 m².
	assert.InDelta(t, 12.84, est.Surface, 0.001)
	assert.InDelta(t, Round2(12.84*45), est.Material, 0.01)
	assert.Zero(t, est.Finish)
	assert.InDelta(t, Round2(est.SubtotalHT*TVARate), est.TVA, 0.001)
}
