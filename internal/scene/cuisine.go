package scene

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

// Standard kitchen carcass dimensions in mm.
const (
	wallHeight      = 2500.0
	wallThick       = 100.0
	baseCabHeight   = 720.0
	baseCabDepth    = 580.0
	plinthHeight    = 100.0
	wallCabHeight   = 720.0
	wallCabDepth    = 350.0
	wallCabBottom   = 1400.0
	tallCabHeight   = 2080.0
	worktopThick    = 38.0
	backsplashThick = 20.0
)

// buildCuisine constructs wall slabs from the layout polyline, places the
// cabinets as boxes along each wall by cumulative position, and lays one
// countertop run (plus optional backsplash) per wall that carries base
// cabinets.
func buildCuisine(cat *catalog.Catalog, cfg *config.CuisineConfig, arena *Arena) {
	wallColor := shade(ColorFromHex("#E8E4DC"), 1.0)
	facade := ColorFromHex(cat.MaterialColor(cfg.FacadeMaterial))
	carcass := shade(ColorFromHex(cat.MaterialColor(cfg.CarcassMaterial)), 0.9)
	worktop := ColorFromHex(cat.MaterialColor(cfg.Countertop.Material))

	for _, wall := range cfg.Walls {
		dirX, dirZ := wallDir(&wall)
		midX := wall.StartX + dirX*wall.Length/2
		midZ := wall.StartY + dirZ*wall.Length/2
		arena.Add(Node{
			Name: "wall", Kind: KindBox, Color: wallColor, YawDeg: wall.Angle,
			Size:   r3.Vec{X: wall.Length, Y: wallHeight, Z: wallThick},
			Center: r3.Vec{X: midX, Y: wallHeight / 2, Z: midZ},
		})
	}

	place := func(pl config.KitchenPlacement, height, depth, bottom float64, col color.NRGBA) {
		wall := cfg.FindWall(pl.WallID)
		if wall == nil {
			return
		}
		dirX, dirZ := wallDir(wall)
		// Normal pointing into the room (left of the wall direction).
		nX, nZ := -dirZ, dirX
		along := pl.PositionOnWall + pl.Width/2
		cx := wall.StartX + dirX*along + nX*(wallThick/2+depth/2)
		cz := wall.StartY + dirZ*along + nZ*(wallThick/2+depth/2)
		arena.Add(Node{
			Name: "kitchen-cabinet", Tag: "placement:" + pl.ID, Kind: KindBox,
			Color: col, YawDeg: wall.Angle,
			Size:   r3.Vec{X: pl.Width, Y: height, Z: depth},
			Center: r3.Vec{X: cx, Y: bottom + height/2, Z: cz},
		})
	}

	for _, pl := range cfg.BaseCabinets {
		place(pl, baseCabHeight, baseCabDepth, plinthHeight, facade)
	}
	for _, pl := range cfg.WallCabinets {
		place(pl, wallCabHeight, wallCabDepth, wallCabBottom, facade)
	}
	for _, pl := range cfg.TallCabinets {
		place(pl, tallCabHeight, baseCabDepth, plinthHeight, carcass)
	}

	// Countertop and backsplash per wall carrying base cabinets.
	depthM := cfg.Countertop.DepthM()
	ctopDepth := depthM * 1000
	for _, wall := range cfg.Walls {
		run := baseRunOnWall(cfg, wall.ID)
		if run <= 0 {
			continue
		}
		dirX, dirZ := wallDir(&wall)
		nX, nZ := -dirZ, dirX
		topY := plinthHeight + baseCabHeight
		cx := wall.StartX + dirX*run/2 + nX*(wallThick/2+ctopDepth/2)
		cz := wall.StartY + dirZ*run/2 + nZ*(wallThick/2+ctopDepth/2)
		arena.Add(Node{
			Name: "worktop", Kind: KindBox, Color: worktop, YawDeg: wall.Angle,
			Size:   r3.Vec{X: run, Y: worktopThick, Z: ctopDepth},
			Center: r3.Vec{X: cx, Y: topY + worktopThick/2, Z: cz},
		})
		if h := cfg.Countertop.BacksplashHeight; h > 0 {
			bx := wall.StartX + dirX*run/2 + nX*(wallThick/2+backsplashThick/2)
			bz := wall.StartY + dirZ*run/2 + nZ*(wallThick/2+backsplashThick/2)
			arena.Add(Node{
				Name: "backsplash", Kind: KindBox, Color: shade(worktop, 0.9), YawDeg: wall.Angle,
				Size:   r3.Vec{X: run, Y: h, Z: backsplashThick},
				Center: r3.Vec{X: bx, Y: topY + worktopThick + h/2, Z: bz},
			})
		}
	}
}

// baseRunOnWall returns the occupied base-cabinet run length on a wall.
func baseRunOnWall(cfg *config.CuisineConfig, wallID string) float64 {
	var run float64
	for _, pl := range cfg.BaseCabinets {
		if pl.WallID == wallID {
			run += pl.Width
		}
	}
	return run
}

func wallDir(w *config.Wall) (dx, dz float64) {
	rad := w.Angle * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}
