package scene

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

const (
	footHeight     = 100.0
	drawerMaxH     = 150.0
	handleRadius   = 15.0
	backPanelThick = 10.0
	explodeGap     = 120.0
	dimOffset      = 60.0
)

// ModuleTag builds the hit-test tag the viewport uses to resolve a picked
// mesh back to its module.
func ModuleTag(cabinetID, moduleID string) string {
	return "module:" + cabinetID + ":" + moduleID
}

// buildMeuble constructs the carcass panels, internal modules, doors, and
// feet for every cabinet, left to right. The exploded view pulls the case
// panels apart along their outward normals; the dimensions view adds
// dashed extent lines with their measurements.
func buildMeuble(cat *catalog.Catalog, cfg *config.MeubleConfig, arena *Arena) {
	bodyColor := ColorFromHex(cat.MaterialColor(cfg.Material))
	tpl := cat.TemplateByKey(cfg.Template)

	baseY := 0.0
	if tpl.FeetStyle != "" {
		baseY = footHeight
	}
	ex := 0.0
	if cfg.Exploded {
		ex = explodeGap
	}

	for ci, cab := range cfg.Cabinets {
		x0 := cab.Position.X
		w, h, d, th := cab.Width, cab.Height, cab.Depth, cab.Thickness
		prefix := fmt.Sprintf("cabinet-%d", ci)

		// Case panels: two sides, top, bottom, optional back.
		arena.Add(Node{
			Name: prefix + "/side-left", Kind: KindBox, Color: bodyColor,
			Size:   r3.Vec{X: th, Y: h, Z: d},
			Center: r3.Vec{X: x0 + th/2 - ex, Y: baseY + h/2},
		})
		arena.Add(Node{
			Name: prefix + "/side-right", Kind: KindBox, Color: bodyColor,
			Size:   r3.Vec{X: th, Y: h, Z: d},
			Center: r3.Vec{X: x0 + w - th/2 + ex, Y: baseY + h/2},
		})
		arena.Add(Node{
			Name: prefix + "/bottom", Kind: KindBox, Color: bodyColor,
			Size:   r3.Vec{X: w - 2*th, Y: th, Z: d},
			Center: r3.Vec{X: x0 + w/2, Y: baseY + th/2 - ex},
		})
		arena.Add(Node{
			Name: prefix + "/top", Kind: KindBox, Color: bodyColor,
			Size:   r3.Vec{X: w - 2*th, Y: th, Z: d},
			Center: r3.Vec{X: x0 + w/2, Y: baseY + h - th/2 + ex},
		})
		if tpl.HasBack {
			arena.Add(Node{
				Name: prefix + "/back", Kind: KindBox, Color: shade(bodyColor, 0.85),
				Size:   r3.Vec{X: w, Y: h, Z: backPanelThick},
				Center: r3.Vec{X: x0 + w/2, Y: baseY + h/2, Z: -d/2 + backPanelThick/2 - ex},
			})
		}

		buildModules(cab, baseY, prefix, bodyColor, arena)
		buildDoors(cab, tpl, baseY, ex, prefix, bodyColor, arena)

		if tpl.FeetStyle != "" {
			buildFeet(cab, tpl.FeetStyle, prefix, bodyColor, arena)
		}
	}

	if cfg.ShowDimensions {
		buildDimensions(cfg, baseY, ex, arena)
	}
}

// buildDimensions draws three dashed extent lines (width, height, depth)
// labeled with the overall measurements, offset away from the furniture.
func buildDimensions(cfg *config.MeubleConfig, baseY, ex float64, arena *Arena) {
	var totalW, maxH, maxD float64
	for _, cab := range cfg.Cabinets {
		if right := cab.Position.X + cab.Width; right > totalW {
			totalW = right
		}
		if cab.Height > maxH {
			maxH = cab.Height
		}
		if cab.Depth > maxD {
			maxD = cab.Depth
		}
	}
	if totalW == 0 {
		return
	}
	front := maxD/2 + ex + dimOffset
	arena.Add(Node{
		Name: "dimension", Kind: KindOutline, Dashed: true, Color: grey,
		Label:  fmt.Sprintf("L %.0f mm", totalW),
		Size:   r3Vec(totalW, 2, 2),
		Center: r3Vec(totalW/2, baseY-dimOffset-ex, front),
	})
	arena.Add(Node{
		Name: "dimension", Kind: KindOutline, Dashed: true, Color: grey,
		Label:  fmt.Sprintf("H %.0f mm", maxH),
		Size:   r3Vec(2, maxH, 2),
		Center: r3Vec(totalW+dimOffset+ex, baseY+maxH/2, front),
	})
	arena.Add(Node{
		Name: "dimension", Kind: KindOutline, Dashed: true, Color: grey,
		Label:  fmt.Sprintf("P %.0f mm", maxD),
		Size:   r3Vec(2, 2, maxD),
		Center: r3Vec(totalW+dimOffset+ex, baseY-dimOffset-ex, 0),
	})
}

// buildModules places the internal fittings at their configured vertical
// positions. Shelf defaults land at the evenly spaced i/(N+1) fractional
// heights; a dragged shelf renders wherever its position says.
func buildModules(cab config.Cabinet, baseY float64, prefix string, body color.NRGBA, arena *Arena) {
	w, d, th := cab.Width, cab.Depth, cab.Thickness
	x0 := cab.Position.X
	innerW := w - 2*th

	drawerIdx := 0
	drawerH := drawerHeight(cab)

	for _, m := range cab.Modules {
		tag := ModuleTag(cab.ID, m.ID)
		switch m.Type {
		case config.ModuleEtagere:
			arena.Add(Node{
				Name: prefix + "/shelf", Tag: tag, Kind: KindBox, Color: body,
				Size:   r3Vec(innerW, 19, d-backPanelThick),
				Center: r3Vec(x0+w/2, baseY+m.Position, 0),
			})
		case config.ModuleTiroir:
			// Drawers stack from the bottom regardless of position.
			y := th + float64(drawerIdx)*drawerH + drawerH/2
			arena.Add(Node{
				Name: prefix + "/drawer", Tag: tag, Kind: KindBox, Color: shade(body, 1.1),
				Size:   r3Vec(innerW-10, drawerH-10, 20),
				Center: r3Vec(x0+w/2, baseY+y, d/2-10),
			})
			drawerIdx++
		case config.ModulePenderie:
			arena.Add(Node{
				Name: prefix + "/rail", Tag: tag, Kind: KindCylinder, Axis: AxisX, Color: grey,
				Size:   r3Vec(15, innerW, 0),
				Center: r3Vec(x0+w/2, baseY+m.Position, 0),
			})
		case config.ModuleNiche:
			arena.Add(Node{
				Name: prefix + "/niche", Tag: tag, Kind: KindOutline, Color: shade(body, 0.7),
				Size:   r3Vec(innerW, m.Height, d-backPanelThick),
				Center: r3Vec(x0+w/2, baseY+m.Position, 0),
			})
		default:
			// Doors are built by buildDoors; anything else has no geometry.
		}
	}
}

// drawerHeight is clamped so a tall stack still fits the carcass.
func drawerHeight(cab config.Cabinet) float64 {
	n := cab.CountModules(config.ModuleTiroir)
	if n == 0 {
		return drawerMaxH
	}
	h := cab.Height / float64(n+2)
	if h > drawerMaxH {
		h = drawerMaxH
	}
	return h
}

// buildDoors spans doors from the cabinet top down to the first drawer, or
// to the bottom when there are none, split evenly by door count. Sliding
// doors render as dashed outlines; hinged doors get a round handle.
func buildDoors(cab config.Cabinet, tpl catalog.Template, baseY, ex float64, prefix string, body color.NRGBA, arena *Arena) {
	doors := cab.CountModules(config.ModulePorte)
	if doors == 0 {
		return
	}
	w, h, th := cab.Width, cab.Height, cab.Thickness
	x0 := cab.Position.X

	bottom := th
	if n := cab.CountModules(config.ModuleTiroir); n > 0 {
		bottom = th + float64(n)*drawerHeight(cab)
	}
	doorH := h - th - bottom
	if doorH <= 0 {
		return
	}
	doorW := w / float64(doors)
	sliding := tpl.SlidingDoors

	for i := 0; i < doors; i++ {
		cx := x0 + doorW*float64(i) + doorW/2
		cy := baseY + bottom + doorH/2
		if sliding {
			arena.Add(Node{
				Name: prefix + "/door", Kind: KindOutline, Dashed: true, Color: shade(body, 1.15),
				Size:   r3Vec(doorW-4, doorH-4, 20),
				Center: r3Vec(cx, cy, cab.Depth/2+10+ex),
			})
			continue
		}
		arena.Add(Node{
			Name: prefix + "/door", Kind: KindBox, Color: shade(body, 1.15),
			Size:   r3Vec(doorW-4, doorH-4, 20),
			Center: r3Vec(cx, cy, cab.Depth/2+10+ex),
		})
		// Handle on the opening edge.
		hx := cx + doorW/2 - 40
		if i%2 == 1 {
			hx = cx - doorW/2 + 40
		}
		arena.Add(Node{
			Name: prefix + "/handle", Kind: KindCylinder, Axis: AxisZ, Color: grey,
			Size:   r3Vec(handleRadius, 30, 0),
			Center: r3Vec(hx, cy, cab.Depth/2+35+ex),
		})
	}
}

// buildFeet places two feet at 10% and 90% of the cabinet width, below
// the case.
func buildFeet(cab config.Cabinet, style, prefix string, body color.NRGBA, arena *Arena) {
	w, d := cab.Width, cab.Depth
	x0 := cab.Position.X
	for _, fx := range []float64{x0 + 0.1*w, x0 + 0.9*w} {
		switch style {
		case "rond":
			arena.Add(Node{
				Name: prefix + "/foot", Kind: KindCylinder, Axis: AxisY, Color: shade(body, 0.6),
				Size:   r3Vec(25, footHeight, 0),
				Center: r3Vec(fx, footHeight/2, 0),
			})
		case "incline":
			arena.Add(Node{
				Name: prefix + "/foot", Kind: KindBox, YawDeg: 15, Color: shade(body, 0.6),
				Size:   r3Vec(40, footHeight, 40),
				Center: r3Vec(fx, footHeight/2, d/4),
			})
		default: // carre
			arena.Add(Node{
				Name: prefix + "/foot", Kind: KindBox, Color: shade(body, 0.6),
				Size:   r3Vec(50, footHeight, 50),
				Center: r3Vec(fx, footHeight/2, 0),
			})
		}
	}
}

func r3Vec(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }
