// Package cutplan lays out a planche order's boards onto stock panels so
// the workshop (and the DXF export) can see how many panels a cut-to-size
// order consumes. Best-area-fit packing over a maximal-rectangles free
// list; boards may rotate 90°.
package cutplan

import (
	"fmt"
	"sort"

	"github.com/surmesure/configurator/internal/config"
)

// Default stock panel and saw settings, in mm.
const (
	DefaultPanelLength = 2800.0
	DefaultPanelWidth  = 2050.0
	DefaultKerf        = 4.0
)

// Settings configures the packer.
type Settings struct {
	PanelLength float64
	PanelWidth  float64
	Kerf        float64
}

// DefaultSettings returns the standard panel saw setup.
func DefaultSettings() Settings {
	return Settings{PanelLength: DefaultPanelLength, PanelWidth: DefaultPanelWidth, Kerf: DefaultKerf}
}

// Placement is one board cut positioned on a panel.
type Placement struct {
	BoardID string  `json:"board_id"`
	Label   string  `json:"label"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Length  float64 `json:"length"`
	Width   float64 `json:"width"`
	Rotated bool    `json:"rotated"`
}

// PlacedLength is the X extent of the placement as cut.
func (p Placement) PlacedLength() float64 {
	if p.Rotated {
		return p.Width
	}
	return p.Length
}

// PlacedWidth is the Y extent of the placement as cut.
func (p Placement) PlacedWidth() float64 {
	if p.Rotated {
		return p.Length
	}
	return p.Width
}

// Panel is one stock panel with its placements.
type Panel struct {
	Index      int         `json:"index"`
	Length     float64     `json:"length"`
	Width      float64     `json:"width"`
	Thickness  float64     `json:"thickness"`
	Placements []Placement `json:"placements"`
}

// UsedArea returns the summed cut area in mm².
func (p Panel) UsedArea() float64 {
	var a float64
	for _, pl := range p.Placements {
		a += pl.Length * pl.Width
	}
	return a
}

// Efficiency returns the used fraction of the panel in percent.
func (p Panel) Efficiency() float64 {
	total := p.Length * p.Width
	if total <= 0 {
		return 0
	}
	return p.UsedArea() / total * 100
}

// Plan is the full cutting layout of an order.
type Plan struct {
	Panels   []Panel  `json:"panels"`
	Unplaced []string `json:"unplaced"` // board IDs that fit no panel
}

// PanelCount returns the number of stock panels consumed.
func (p Plan) PanelCount() int { return len(p.Panels) }

// Build packs every board of the order, one thickness group per panel run.
// Boards wider or longer than the panel end up in Unplaced rather than
// failing the plan.
func Build(cfg *config.PlancheConfig, settings Settings) Plan {
	if settings.PanelLength <= 0 || settings.PanelWidth <= 0 {
		settings = DefaultSettings()
	}

	// One cut candidate per unit of quantity.
	type cut struct {
		board config.Board
		label string
	}
	byThickness := map[float64][]cut{}
	for i, b := range cfg.Boards {
		label := labelFor(i, b)
		for q := 0; q < b.Quantity; q++ {
			byThickness[b.Thickness] = append(byThickness[b.Thickness], cut{board: b, label: label})
		}
	}

	thicknesses := make([]float64, 0, len(byThickness))
	for t := range byThickness {
		thicknesses = append(thicknesses, t)
	}
	sort.Float64s(thicknesses)

	var plan Plan
	for _, th := range thicknesses {
		cuts := byThickness[th]
		// Largest first packs tighter.
		sort.SliceStable(cuts, func(i, j int) bool {
			return cuts[i].board.Length*cuts[i].board.Width > cuts[j].board.Length*cuts[j].board.Width
		})

		remaining := cuts
		for len(remaining) > 0 {
			panel := Panel{
				Index:     len(plan.Panels) + 1,
				Length:    settings.PanelLength,
				Width:     settings.PanelWidth,
				Thickness: th,
			}
			packer := newPacker(settings.PanelLength, settings.PanelWidth, settings.Kerf)

			var next []cut
			for _, c := range remaining {
				placed := tryPlace(packer, &panel, c.board, c.label)
				if !placed {
					next = append(next, c)
				}
			}

			if len(panel.Placements) == 0 {
				// Nothing fits an empty panel: the rest is unplaceable.
				for _, c := range next {
					plan.Unplaced = append(plan.Unplaced, c.board.ID)
				}
				break
			}
			plan.Panels = append(plan.Panels, panel)
			remaining = next
		}
	}
	return plan
}

// tryPlace inserts the board in its tighter-fitting orientation.
func tryPlace(p *packer, panel *Panel, b config.Board, label string) bool {
	normal := p.bestFit(b.Length, b.Width)
	rotated := p.bestFit(b.Width, b.Length)

	preferRotated := normal < 0 && rotated >= 0 ||
		normal >= 0 && rotated >= 0 && rotated < normal

	if preferRotated {
		if ok, x, y := p.insert(b.Width, b.Length); ok {
			panel.Placements = append(panel.Placements, Placement{
				BoardID: b.ID, Label: label, X: x, Y: y,
				Length: b.Length, Width: b.Width, Rotated: true,
			})
			return true
		}
	}
	if normal >= 0 {
		if ok, x, y := p.insert(b.Length, b.Width); ok {
			panel.Placements = append(panel.Placements, Placement{
				BoardID: b.ID, Label: label, X: x, Y: y,
				Length: b.Length, Width: b.Width,
			})
			return true
		}
	}
	return false
}

func labelFor(i int, b config.Board) string {
	return fmt.Sprintf("P%d (%.0fx%.0f)", i+1, b.Length, b.Width)
}
