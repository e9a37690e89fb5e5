package config

import (
	"math"

	"github.com/google/uuid"
)

// KitchenLayout is a wall arrangement preset. The preset fully determines
// the wall set; changing it resets every cabinet placement.
type KitchenLayout string

const (
	LayoutI      KitchenLayout = "I"
	LayoutL      KitchenLayout = "L"
	LayoutU      KitchenLayout = "U"
	LayoutIsland KitchenLayout = "island"
)

// Wall is one straight kitchen wall segment. StartX/StartY in mm, Angle in
// degrees counterclockwise from the +X axis. Wall polylines are derived
// from the layout preset, never edited point by point.
type Wall struct {
	ID     string  `json:"id"`
	Length float64 `json:"length"`
	Angle  float64 `json:"angle"`
	StartX float64 `json:"start_x"`
	StartY float64 `json:"start_y"`
}

// End returns the wall's end point.
func (w Wall) End() (x, y float64) {
	rad := w.Angle * math.Pi / 180
	return w.StartX + w.Length*math.Cos(rad), w.StartY + w.Length*math.Sin(rad)
}

// KitchenPlacement places one catalog cabinet along a wall.
// PositionOnWall is the running sum of the widths of earlier placements on
// the same wall (append-only layout, no reordering).
type KitchenPlacement struct {
	ID             string  `json:"id"`
	CatalogKey     string  `json:"catalog_key"`
	Width          float64 `json:"width"` // mm
	WallID         string  `json:"wall_id"`
	PositionOnWall float64 `json:"position_on_wall"` // mm from wall start
}

func NewKitchenPlacement(catalogKey string, width float64, wallID string) KitchenPlacement {
	return KitchenPlacement{
		ID:         uuid.New().String()[:8],
		CatalogKey: catalogKey,
		Width:      width,
		WallID:     wallID,
	}
}

// Countertop describes the worktop specification. Overhang and
// BacksplashHeight in mm; a zero backsplash height means none.
type Countertop struct {
	Material         string  `json:"material"`
	Overhang         float64 `json:"overhang"`
	BacksplashHeight float64 `json:"backsplash_height"`
}

// DepthM returns the countertop depth in meters: the standard 0.65 m, or
// the 0.58 m carcass plus the overhang when one is set.
func (c Countertop) DepthM() float64 {
	if c.Overhang > 0 {
		return 0.58 + c.Overhang/1000
	}
	return 0.65
}

// CuisineConfig is the modular kitchen configuration.
type CuisineConfig struct {
	Name            string             `json:"name"`
	Layout          KitchenLayout      `json:"layout"`
	Walls           []Wall             `json:"walls"`
	BaseCabinets    []KitchenPlacement `json:"base_cabinets"`
	WallCabinets    []KitchenPlacement `json:"wall_cabinets"`
	TallCabinets    []KitchenPlacement `json:"tall_cabinets"`
	Countertop      Countertop         `json:"countertop"`
	FacadeMaterial  string             `json:"facade_material"`
	CarcassMaterial string             `json:"carcass_material"`
	GlobalHandle    string             `json:"global_handle"`
	Hardware        string             `json:"hardware"`
	Finish          string             `json:"finish"`
}

func (c *CuisineConfig) Family() Family { return FamilyCuisine }

func (c *CuisineConfig) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return "Cuisine sur mesure"
}

// WallsForLayout derives the wall set of a layout preset. Lengths in mm.
func WallsForLayout(layout KitchenLayout) []Wall {
	newWall := func(length, angle, sx, sy float64) Wall {
		return Wall{ID: uuid.New().String()[:8], Length: length, Angle: angle, StartX: sx, StartY: sy}
	}
	switch layout {
	case LayoutI:
		return []Wall{newWall(3600, 0, 0, 0)}
	case LayoutU:
		return []Wall{
			newWall(2400, 90, 0, 0),
			newWall(3600, 0, 0, 2400),
			newWall(2400, -90, 3600, 2400),
		}
	case LayoutIsland:
		return []Wall{
			newWall(3600, 0, 0, 0),
			newWall(2000, 0, 800, 1500), // free-standing island run
		}
	default: // L
		return []Wall{
			newWall(2400, 90, 0, 0),
			newWall(3600, 0, 0, 2400),
		}
	}
}

// ApplyLayout replaces the wall set with the preset's walls and resets all
// cabinet placements, which reference walls that no longer exist.
func (c *CuisineConfig) ApplyLayout(layout KitchenLayout) {
	c.Layout = layout
	c.Walls = WallsForLayout(layout)
	c.BaseCabinets = []KitchenPlacement{}
	c.WallCabinets = []KitchenPlacement{}
	c.TallCabinets = []KitchenPlacement{}
}

// FindWall returns a pointer to the wall with the given ID, or nil.
func (c *CuisineConfig) FindWall(id string) *Wall {
	for i := range c.Walls {
		if c.Walls[i].ID == id {
			return &c.Walls[i]
		}
	}
	return nil
}

// NormalizePlacements recomputes PositionOnWall for every placement list
// as the running sum of prior placements on the same wall. Base and tall
// cabinets share the floor run; wall cabinets stack independently.
func (c *CuisineConfig) NormalizePlacements() {
	floorOffset := map[string]float64{}
	normalize := func(list []KitchenPlacement, offsets map[string]float64) {
		for i := range list {
			list[i].PositionOnWall = offsets[list[i].WallID]
			offsets[list[i].WallID] += list[i].Width
		}
	}
	normalize(c.BaseCabinets, floorOffset)
	normalize(c.TallCabinets, floorOffset)
	normalize(c.WallCabinets, map[string]float64{})
}

// Placements returns all placement lists concatenated, base first.
func (c *CuisineConfig) Placements() []KitchenPlacement {
	all := make([]KitchenPlacement, 0, len(c.BaseCabinets)+len(c.WallCabinets)+len(c.TallCabinets))
	all = append(all, c.BaseCabinets...)
	all = append(all, c.WallCabinets...)
	all = append(all, c.TallCabinets...)
	return all
}

// DefaultCuisine returns the starting configuration: an L-shaped two-wall
// kitchen with no cabinets placed yet.
func DefaultCuisine() *CuisineConfig {
	cfg := &CuisineConfig{
		Layout:          LayoutL,
		Walls:           WallsForLayout(LayoutL),
		BaseCabinets:    []KitchenPlacement{},
		WallCabinets:    []KitchenPlacement{},
		TallCabinets:    []KitchenPlacement{},
		Countertop:      Countertop{Material: "stratifie"},
		FacadeMaterial:  "melamine",
		CarcassMaterial: "melamine",
		GlobalHandle:    "barre",
		Hardware:        "charnieres",
		Finish:          "brut",
	}
	return cfg
}
