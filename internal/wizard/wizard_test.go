package wizard

import (
	"testing"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

func testCatalog() *catalog.Catalog { return catalog.Default() }

func TestNewStartsOnProductStep(t *testing.T) {
	s := New()
	if s.CurrentStep != 0 || s.MaxReachedStep != 0 {
		t.Errorf("new state should start at step 0, got %d/%d", s.CurrentStep, s.MaxReachedStep)
	}
	if s.Config.Family() != config.FamilyMeuble {
		t.Errorf("new state should default to meuble, got %q", s.Config.Family())
	}
	if s.IsDirty {
		t.Error("new state should be clean")
	}
}

func TestNextStepRaisesWatermark(t *testing.T) {
	cat := testCatalog()
	s := New()

	s = Reduce(cat, s, NextStep{})
	s = Reduce(cat, s, NextStep{})
	if s.CurrentStep != 2 || s.MaxReachedStep != 2 {
		t.Fatalf("expected step 2/2, got %d/%d", s.CurrentStep, s.MaxReachedStep)
	}

	// Going back keeps the watermark.
	s = Reduce(cat, s, PrevStep{})
	if s.CurrentStep != 1 || s.MaxReachedStep != 2 {
		t.Errorf("expected step 1 with watermark 2, got %d/%d", s.CurrentStep, s.MaxReachedStep)
	}
}

func TestNextStepClampsAtLastStep(t *testing.T) {
	cat := testCatalog()
	s := New()
	for i := 0; i < 20; i++ {
		s = Reduce(cat, s, NextStep{})
	}
	if s.CurrentStep != s.StepCount()-1 {
		t.Errorf("step should clamp at %d, got %d", s.StepCount()-1, s.CurrentStep)
	}
}

func TestGotoStepGating(t *testing.T) {
	cat := testCatalog()
	s := New()
	s = Reduce(cat, s, NextStep{})
	s = Reduce(cat, s, NextStep{}) // watermark 2

	// Reached steps are free to revisit.
	s2 := Reduce(cat, s, GotoStep{N: 0})
	if s2.CurrentStep != 0 {
		t.Errorf("jump to a reached step should succeed, got %d", s2.CurrentStep)
	}

	// Beyond the watermark is rejected.
	s3 := Reduce(cat, s, GotoStep{N: 5})
	if s3.CurrentStep != s.CurrentStep {
		t.Errorf("jump beyond the watermark should be rejected, got %d", s3.CurrentStep)
	}

	// Out of range is rejected.
	s4 := Reduce(cat, s, GotoStep{N: -1})
	if s4.CurrentStep != s.CurrentStep {
		t.Error("negative step should be rejected")
	}
}

func TestSetProductTypeResetsEverything(t *testing.T) {
	cat := testCatalog()
	s := New()

	// Advance and dirty the meuble configuration.
	s = Reduce(cat, s, NextStep{})
	s = Reduce(cat, s, NextStep{})
	s = Reduce(cat, s, NextStep{})
	s = Reduce(cat, s, AddCabinet{})
	if !s.IsDirty {
		t.Fatal("structural change should dirty the state")
	}

	// Switching family discards the configuration and restarts.
	s = Reduce(cat, s, SetProductType{Family: config.FamilyCuisine})
	if s.Config.Family() != config.FamilyCuisine {
		t.Fatalf("family should switch to cuisine, got %q", s.Config.Family())
	}
	if s.CurrentStep != 1 || s.MaxReachedStep != 1 {
		t.Errorf("switch should restart at step 1/1, got %d/%d", s.CurrentStep, s.MaxReachedStep)
	}
	if s.IsDirty {
		t.Error("fresh default configuration should be clean")
	}
	k := s.Config.(*config.CuisineConfig)
	if len(k.BaseCabinets) != 0 {
		t.Error("fresh cuisine should have no placements")
	}
}

func TestFamilyMismatchIgnored(t *testing.T) {
	cat := testCatalog()
	s := New() // meuble

	before := s.Config
	s2 := Reduce(cat, s, AddBoard{})
	if s2.Config != before {
		t.Error("planche action on a meuble should leave the state untouched")
	}
	s3 := Reduce(cat, s, SetKitchenLayout{Layout: config.LayoutU})
	if s3.Config != before {
		t.Error("cuisine action on a meuble should leave the state untouched")
	}
}

func TestReducerNeverMutatesInput(t *testing.T) {
	cat := testCatalog()
	s := New()
	m := s.Config.(*config.MeubleConfig)
	origWidth := m.Cabinets[0].Width
	origModules := len(m.Cabinets[0].Modules)

	_ = Reduce(cat, s, ResizeCabinet{CabinetID: m.Cabinets[0].ID, Width: 1200})
	_ = Reduce(cat, s, AddModule{CabinetID: m.Cabinets[0].ID, Type: config.ModuleTiroir})

	if m.Cabinets[0].Width != origWidth {
		t.Error("resize must act on a copy, input mutated")
	}
	if len(m.Cabinets[0].Modules) != origModules {
		t.Error("add module must act on a copy, input mutated")
	}
}

func TestAddRemoveCabinet(t *testing.T) {
	cat := testCatalog()
	s := New()

	s = Reduce(cat, s, AddCabinet{})
	m := s.Config.(*config.MeubleConfig)
	if len(m.Cabinets) != 2 {
		t.Fatalf("expected 2 cabinets, got %d", len(m.Cabinets))
	}
	if m.Cabinets[1].Position.X != m.Cabinets[0].Width {
		t.Errorf("new cabinet should sit after the first, got X=%.0f", m.Cabinets[1].Position.X)
	}

	s = Reduce(cat, s, RemoveCabinet{CabinetID: m.Cabinets[0].ID})
	m = s.Config.(*config.MeubleConfig)
	if len(m.Cabinets) != 1 {
		t.Fatalf("expected 1 cabinet after removal, got %d", len(m.Cabinets))
	}
	if m.Cabinets[0].Position.X != 0 {
		t.Errorf("remaining cabinet should renormalize to X=0, got %.0f", m.Cabinets[0].Position.X)
	}

	// The last cabinet cannot be removed.
	s2 := Reduce(cat, s, RemoveCabinet{CabinetID: m.Cabinets[0].ID})
	if len(s2.Config.(*config.MeubleConfig).Cabinets) != 1 {
		t.Error("removing the last cabinet should be rejected")
	}
}

func TestResizeCabinetClampsToEnvelope(t *testing.T) {
	cat := testCatalog()
	s := New()
	id := s.Config.(*config.MeubleConfig).Cabinets[0].ID

	s = Reduce(cat, s, ResizeCabinet{CabinetID: id, Width: 50000, Height: 10, Depth: 50000})
	cab := s.Config.(*config.MeubleConfig).Cabinets[0]
	if cab.Width != 3000 {
		t.Errorf("width should clamp to 3000, got %.0f", cab.Width)
	}
	if cab.Height != 400 {
		t.Errorf("height should clamp to 400, got %.0f", cab.Height)
	}
	if cab.Depth != 900 {
		t.Errorf("depth should clamp to 900, got %.0f", cab.Depth)
	}
}

func TestResizeCabinetReclampsModules(t *testing.T) {
	cat := testCatalog()
	s := New()
	m := s.Config.(*config.MeubleConfig)
	cabID := m.Cabinets[0].ID

	// Push a shelf near the top, then shrink the cabinet.
	modID := m.Cabinets[0].Modules[2].ID
	s = Reduce(cat, s, MoveModule{CabinetID: cabID, ModuleID: modID, Position: 2000})
	s = Reduce(cat, s, ResizeCabinet{CabinetID: cabID, Height: 1200})

	cab := s.Config.(*config.MeubleConfig).Cabinets[0]
	_, hi := cab.ModuleRange()
	for _, mod := range cab.Modules {
		if mod.Position > hi {
			t.Errorf("module at %.0f exceeds usable range max %.0f after shrink", mod.Position, hi)
		}
	}
}

func TestMoveModuleClampsToRange(t *testing.T) {
	cat := testCatalog()
	s := New()
	m := s.Config.(*config.MeubleConfig)
	cabID := m.Cabinets[0].ID
	modID := m.Cabinets[0].Modules[0].ID

	s2 := Reduce(cat, s, MoveModule{CabinetID: cabID, ModuleID: modID, Position: 99999})
	cab := s2.Config.(*config.MeubleConfig).Cabinets[0]
	_, hi := cab.ModuleRange()
	if cab.Modules[0].Position != hi {
		t.Errorf("position above range should clamp to %.0f, got %.0f", hi, cab.Modules[0].Position)
	}

	s3 := Reduce(cat, s, MoveModule{CabinetID: cabID, ModuleID: modID, Position: -500})
	cab = s3.Config.(*config.MeubleConfig).Cabinets[0]
	lo, _ := cab.ModuleRange()
	if cab.Modules[0].Position != lo {
		t.Errorf("position below range should clamp to %.0f, got %.0f", lo, cab.Modules[0].Position)
	}
}

func TestBoardThicknessSnapsToCatalog(t *testing.T) {
	cat := testCatalog()
	s := New()
	s = Reduce(cat, s, SetProductType{Family: config.FamilyPlanche})
	p := s.Config.(*config.PlancheConfig)

	s = Reduce(cat, s, ResizeBoard{BoardID: p.Boards[0].ID, Thickness: 20})
	b := s.Config.(*config.PlancheConfig).Boards[0]
	if b.Thickness != 22 {
		t.Errorf("thickness 20 should snap to 22, got %.0f", b.Thickness)
	}
}

func TestLastBoardCannotBeRemoved(t *testing.T) {
	cat := testCatalog()
	s := New()
	s = Reduce(cat, s, SetProductType{Family: config.FamilyPlanche})
	p := s.Config.(*config.PlancheConfig)

	s2 := Reduce(cat, s, RemoveBoard{BoardID: p.Boards[0].ID})
	if len(s2.Config.(*config.PlancheConfig).Boards) != 1 {
		t.Error("removing the last board should be rejected")
	}
}

func TestSetBoardEdge(t *testing.T) {
	cat := testCatalog()
	s := New()
	s = Reduce(cat, s, SetProductType{Family: config.FamilyPlanche})
	id := s.Config.(*config.PlancheConfig).Boards[0].ID

	s = Reduce(cat, s, SetBoardEdge{BoardID: id, Side: "top", BandingKey: "assorti"})
	s = Reduce(cat, s, SetBoardEdge{BoardID: id, Side: "left", BandingKey: "alu"})
	b := s.Config.(*config.PlancheConfig).Boards[0]
	if b.Edges.Top != "assorti" || b.Edges.Left != "alu" {
		t.Errorf("edges not applied: %+v", b.Edges)
	}

	// Unknown side is rejected.
	s2 := Reduce(cat, s, SetBoardEdge{BoardID: id, Side: "diagonal", BandingKey: "alu"})
	if s2.Config != s.Config {
		t.Error("unknown side should leave the state untouched")
	}
}

func TestPlaceKitchenCabinet(t *testing.T) {
	cat := testCatalog()
	s := New()
	s = Reduce(cat, s, SetProductType{Family: config.FamilyCuisine})
	k := s.Config.(*config.CuisineConfig)
	wall := k.Walls[0].ID

	s = Reduce(cat, s, PlaceKitchenCabinet{CatalogKey: "bas-porte", WallID: wall})
	s = Reduce(cat, s, PlaceKitchenCabinet{CatalogKey: "bas-tiroirs", WallID: wall})
	s = Reduce(cat, s, PlaceKitchenCabinet{CatalogKey: "haut-porte", WallID: wall})
	s = Reduce(cat, s, PlaceKitchenCabinet{CatalogKey: "colonne-four", WallID: wall})

	k = s.Config.(*config.CuisineConfig)
	if len(k.BaseCabinets) != 2 || len(k.WallCabinets) != 1 || len(k.TallCabinets) != 1 {
		t.Fatalf("placements landed in wrong lists: %d/%d/%d",
			len(k.BaseCabinets), len(k.WallCabinets), len(k.TallCabinets))
	}
	if k.BaseCabinets[0].Width != 600 {
		t.Errorf("zero width should take the catalog default 600, got %.0f", k.BaseCabinets[0].Width)
	}
	if k.BaseCabinets[1].PositionOnWall != 600 {
		t.Errorf("second base cabinet should start at 600, got %.0f", k.BaseCabinets[1].PositionOnWall)
	}
	// Tall cabinets continue the floor run after the base cabinets.
	if k.TallCabinets[0].PositionOnWall != 1200 {
		t.Errorf("tall cabinet should start at 1200, got %.0f", k.TallCabinets[0].PositionOnWall)
	}

	// Unknown catalog key or wall is rejected.
	s2 := Reduce(cat, s, PlaceKitchenCabinet{CatalogKey: "inconnu", WallID: wall})
	if s2.Config != s.Config {
		t.Error("unknown catalog key should be rejected")
	}
	s3 := Reduce(cat, s, PlaceKitchenCabinet{CatalogKey: "bas-porte", WallID: "inconnu"})
	if s3.Config != s.Config {
		t.Error("unknown wall should be rejected")
	}
}

func TestRemoveKitchenCabinetRenormalizes(t *testing.T) {
	cat := testCatalog()
	s := New()
	s = Reduce(cat, s, SetProductType{Family: config.FamilyCuisine})
	wall := s.Config.(*config.CuisineConfig).Walls[0].ID

	s = Reduce(cat, s, PlaceKitchenCabinet{CatalogKey: "bas-porte", WallID: wall})
	s = Reduce(cat, s, PlaceKitchenCabinet{CatalogKey: "bas-evier", WallID: wall})
	first := s.Config.(*config.CuisineConfig).BaseCabinets[0].ID

	s = Reduce(cat, s, RemoveKitchenCabinet{PlacementID: first})
	k := s.Config.(*config.CuisineConfig)
	if len(k.BaseCabinets) != 1 {
		t.Fatalf("expected 1 base cabinet, got %d", len(k.BaseCabinets))
	}
	if k.BaseCabinets[0].PositionOnWall != 0 {
		t.Errorf("remaining cabinet should slide back to 0, got %.0f", k.BaseCabinets[0].PositionOnWall)
	}
}

func TestSetCountertopSanitizesNegatives(t *testing.T) {
	cat := testCatalog()
	s := New()
	s = Reduce(cat, s, SetProductType{Family: config.FamilyCuisine})

	s = Reduce(cat, s, SetCountertop{Spec: config.Countertop{
		Material: "quartz", Overhang: -20, BacksplashHeight: -5,
	}})
	k := s.Config.(*config.CuisineConfig)
	if k.Countertop.Overhang != 0 || k.Countertop.BacksplashHeight != 0 {
		t.Errorf("negative values should sanitize to 0, got %+v", k.Countertop)
	}
	if k.Countertop.Material != "quartz" {
		t.Errorf("material should apply, got %q", k.Countertop.Material)
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	s := New()
	clone := s.Clone()

	m := s.Config.(*config.MeubleConfig)
	m.Cabinets[0].Width = 9999

	cm := clone.Config.(*config.MeubleConfig)
	if cm.Cabinets[0].Width == 9999 {
		t.Error("clone should not share cabinet storage with the original")
	}
}

func TestStepsPerFamily(t *testing.T) {
	if n := len(StepsFor(config.FamilyMeuble)); n != 7 {
		t.Errorf("meuble should have 7 steps, got %d", n)
	}
	if n := len(StepsFor(config.FamilyPlanche)); n != 5 {
		t.Errorf("planche should have 5 steps, got %d", n)
	}
	if n := len(StepsFor(config.FamilyCuisine)); n != 7 {
		t.Errorf("cuisine should have 7 steps, got %d", n)
	}
}
