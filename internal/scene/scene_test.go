package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

func countByName(a *Arena, name string) int {
	n := 0
	for _, node := range a.Nodes() {
		if node.Name == name {
			n++
		}
	}
	return n
}

func TestArenaResetReleasesGeneration(t *testing.T) {
	a := NewArena()
	a.Add(Node{Name: "a"})
	a.Add(Node{Name: "b"})
	require.Equal(t, 2, a.Len())
	require.EqualValues(t, 0, a.Generation())

	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.EqualValues(t, 1, a.Generation())
	assert.EqualValues(t, 0, a.Leaked())

	n := a.Add(Node{Name: "c"})
	assert.EqualValues(t, 1, n.Generation)
	assert.EqualValues(t, 1, a.Leaked())
}

func TestArenaBounds(t *testing.T) {
	a := NewArena()
	a.Add(Node{Size: r3.Vec{X: 100, Y: 200, Z: 300}, Center: r3.Vec{Y: 100}})

	min, max, ok := a.Bounds()
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: -50, Y: 0, Z: -150}, min)
	assert.Equal(t, r3.Vec{X: 50, Y: 200, Z: 150}, max)
	assert.Equal(t, r3.Vec{Y: 100}, a.Center())
	assert.Equal(t, 300.0, a.Extent())

	empty := NewArena()
	_, _, ok = empty.Bounds()
	assert.False(t, ok)
	assert.Zero(t, empty.Extent())
}

func TestBuildMeubleDefault(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	a := NewArena()

	Build(cat, cfg, a)

	// One cabinet: 2 sides, top, bottom, back, 3 shelves.
	assert.Equal(t, 8, a.Len())
	assert.Equal(t, 1, countByName(a, "cabinet-0/back"))
	assert.Equal(t, 3, countByName(a, "cabinet-0/shelf"))
	assert.Equal(t, 0, countByName(a, "cabinet-0/foot"))
}

func TestBuildMeubleShelfTagsAndPositions(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	cab := cfg.Cabinets[0]
	a := NewArena()

	Build(cat, cfg, a)

	var shelves []*Node
	for _, n := range a.Nodes() {
		if n.Name == "cabinet-0/shelf" {
			shelves = append(shelves, n)
		}
	}
	require.Len(t, shelves, 3)
	for i, sh := range shelves {
		assert.Equal(t, ModuleTag(cab.ID, cab.Modules[i].ID), sh.Tag)
		assert.Equal(t, cab.Modules[i].Position, sh.Center.Y)
	}
}

func TestBuildMeubleFeetRaiseCase(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	cfg.Template = "buffet" // round feet

	a := NewArena()
	Build(cat, cfg, a)

	assert.Equal(t, 2, countByName(a, "cabinet-0/foot"))
	// The bottom panel sits above the feet.
	for _, n := range a.Nodes() {
		if n.Name == "cabinet-0/bottom" {
			assert.Greater(t, n.Center.Y, 100.0-cfg.Cabinets[0].Thickness)
		}
	}
}

func TestBuildMeubleDoorsAndHandles(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	cfg.Cabinets[0].Modules = []config.Module{
		config.NewModule(config.ModulePorte, 0, 800, 0),
		config.NewModule(config.ModulePorte, 0, 800, 0),
	}

	a := NewArena()
	Build(cat, cfg, a)
	assert.Equal(t, 2, countByName(a, "cabinet-0/door"))
	assert.Equal(t, 2, countByName(a, "cabinet-0/handle"))

	// Sliding-door template renders dashed outlines without handles.
	cfg.Template = "tv"
	Build(cat, cfg, a)
	assert.Equal(t, 0, countByName(a, "cabinet-0/handle"))
	for _, n := range a.Nodes() {
		if n.Name == "cabinet-0/door" {
			assert.Equal(t, KindOutline, n.Kind)
			assert.True(t, n.Dashed)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()

	a1, a2 := NewArena(), NewArena()
	Build(cat, cfg, a1)
	Build(cat, cfg, a2)

	require.Equal(t, a1.Len(), a2.Len())
	for i := range a1.Nodes() {
		assert.Equal(t, a1.Nodes()[i].Name, a2.Nodes()[i].Name)
		assert.Equal(t, a1.Nodes()[i].Center, a2.Nodes()[i].Center)
		assert.Equal(t, a1.Nodes()[i].Size, a2.Nodes()[i].Size)
	}
}

func TestRepeatedRebuildsNeverLeak(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	a := NewArena()

	for i := 0; i < 10; i++ {
		Build(cat, cfg, a)
	}
	assert.EqualValues(t, a.Len(), a.Leaked())
	assert.EqualValues(t, 10, a.Generation())
}

func TestBuildUnknownFamilyYieldsEmptyScene(t *testing.T) {
	a := NewArena()
	Build(catalog.Default(), config.DefaultMeuble(), a)
	require.NotZero(t, a.Len())

	Build(catalog.Default(), nil, a)
	assert.Zero(t, a.Len())
	assert.EqualValues(t, 2, a.Generation())
}

func TestBuildPlancheFirstBoardOnly(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultPlanche()
	cfg.Boards = append(cfg.Boards, config.NewBoard())

	a := NewArena()
	Build(cat, cfg, a)

	// Only the first board renders, no banding by default.
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, countByName(a, "board"))
}

func TestBuildPlancheBandingStrips(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultPlanche()
	cfg.Boards[0].Edges = config.EdgeBanding{Top: "assorti", Left: "alu"}

	a := NewArena()
	Build(cat, cfg, a)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 1, countByName(a, "band-top"))
	assert.Equal(t, 1, countByName(a, "band-left"))
	assert.Equal(t, 0, countByName(a, "band-right"))
}

func TestBuildCuisineWallsAndCabinets(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultCuisine() // L layout, two walls
	a := NewArena()

	Build(cat, cfg, a)
	assert.Equal(t, 2, countByName(a, "wall"))
	// No base cabinets: no worktop run.
	assert.Equal(t, 0, countByName(a, "worktop"))

	wall := cfg.Walls[0].ID
	cfg.BaseCabinets = append(cfg.BaseCabinets, config.NewKitchenPlacement("bas-porte", 600, wall))
	cfg.WallCabinets = append(cfg.WallCabinets, config.NewKitchenPlacement("haut-porte", 600, wall))
	cfg.NormalizePlacements()

	Build(cat, cfg, a)
	assert.Equal(t, 2, countByName(a, "kitchen-cabinet"))
	assert.Equal(t, 1, countByName(a, "worktop"))

	cfg.Countertop.BacksplashHeight = 500
	Build(cat, cfg, a)
	assert.Equal(t, 1, countByName(a, "backsplash"))
}

func TestBuildMeubleExplodedSeparatesPanels(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	plain := NewArena()
	Build(cat, cfg, plain)

	cfg.Exploded = true
	exploded := NewArena()
	Build(cat, cfg, exploded)
	require.Equal(t, plain.Len(), exploded.Len())

	byName := func(a *Arena, name string) *Node {
		for _, n := range a.Nodes() {
			if n.Name == name {
				return n
			}
		}
		t.Fatalf("node %q not found", name)
		return nil
	}
	assert.InDelta(t,
		byName(plain, "cabinet-0/side-left").Center.X-explodeGap,
		byName(exploded, "cabinet-0/side-left").Center.X, 1e-9)
	assert.InDelta(t,
		byName(plain, "cabinet-0/side-right").Center.X+explodeGap,
		byName(exploded, "cabinet-0/side-right").Center.X, 1e-9)
	assert.InDelta(t,
		byName(plain, "cabinet-0/top").Center.Y+explodeGap,
		byName(exploded, "cabinet-0/top").Center.Y, 1e-9)
	assert.InDelta(t,
		byName(plain, "cabinet-0/back").Center.Z-explodeGap,
		byName(exploded, "cabinet-0/back").Center.Z, 1e-9)
	// Internal modules keep their configured positions.
	assert.Equal(t,
		byName(plain, "cabinet-0/shelf").Center,
		byName(exploded, "cabinet-0/shelf").Center)
}

func TestBuildMeubleDimensionLines(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultMeuble()
	a := NewArena()
	Build(cat, cfg, a)
	assert.Equal(t, 0, countByName(a, "dimension"))

	cfg.ShowDimensions = true
	Build(cat, cfg, a)
	require.Equal(t, 3, countByName(a, "dimension"))

	labels := map[string]bool{}
	for _, n := range a.Nodes() {
		if n.Name == "dimension" {
			labels[n.Label] = true
			assert.True(t, n.Dashed)
		}
	}
	assert.True(t, labels["L 800 mm"])
	assert.True(t, labels["H 2200 mm"])
	assert.True(t, labels["P 600 mm"])
}

func TestBuildCuisineWallMidpoints(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultCuisine() // L: 2400 mm at 90° from origin, 3600 mm at 0° from (0, 2400)
	a := NewArena()
	Build(cat, cfg, a)

	var walls []*Node
	for _, n := range a.Nodes() {
		if n.Name == "wall" {
			walls = append(walls, n)
		}
	}
	require.Len(t, walls, 2)
	assert.InDelta(t, 0, walls[0].Center.X, 1e-9)
	assert.InDelta(t, 1200, walls[0].Center.Z, 1e-9)
	assert.InDelta(t, 1800, walls[1].Center.X, 1e-9)
	assert.InDelta(t, 2400, walls[1].Center.Z, 1e-9)
}

func TestBuildCuisinePlacementTags(t *testing.T) {
	cat := catalog.Default()
	cfg := config.DefaultCuisine()
	wall := cfg.Walls[0].ID
	cfg.BaseCabinets = append(cfg.BaseCabinets, config.NewKitchenPlacement("bas-porte", 600, wall))
	cfg.NormalizePlacements()

	a := NewArena()
	Build(cat, cfg, a)

	found := false
	for _, n := range a.Nodes() {
		if n.Name == "kitchen-cabinet" {
			found = true
			assert.Equal(t, "placement:"+cfg.BaseCabinets[0].ID, n.Tag)
		}
	}
	assert.True(t, found)
}

func TestColorFromHex(t *testing.T) {
	c := ColorFromHex("#B8860B")
	assert.EqualValues(t, 0xB8, c.R)
	assert.EqualValues(t, 0x86, c.G)
	assert.EqualValues(t, 0x0B, c.B)
	assert.EqualValues(t, 0xFF, c.A)

	fallback := ColorFromHex("")
	assert.EqualValues(t, 0xC1, fallback.R)
	assert.Equal(t, fallback, ColorFromHex("#GGGGGG"))
	assert.Equal(t, fallback, ColorFromHex("B8860B"))
}
