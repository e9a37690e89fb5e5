package scene

import (
	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

const bandingStripThick = 6.0

// buildPlanche renders the first board of the order as a representative
// sample, lying flat, with a colored strip on every banded side. Further
// boards are covered by the cutting-plan view, not the 3D preview.
func buildPlanche(cat *catalog.Catalog, cfg *config.PlancheConfig, arena *Arena) {
	if len(cfg.Boards) == 0 {
		return
	}
	board := cfg.Boards[0]
	body := ColorFromHex(cat.MaterialColor(cfg.Material))

	l, w, th := board.Length, board.Width, board.Thickness

	arena.Add(Node{
		Name: "board", Kind: KindBox, Color: body,
		Size:   r3Vec(l, th, w),
		Center: r3Vec(0, th/2, 0),
	})

	strip := shade(body, 0.65)
	if board.Edges.Top != "" {
		arena.Add(Node{
			Name: "band-top", Kind: KindBox, Color: strip,
			Size:   r3Vec(l, th, bandingStripThick),
			Center: r3Vec(0, th/2, w/2+bandingStripThick/2),
		})
	}
	if board.Edges.Bottom != "" {
		arena.Add(Node{
			Name: "band-bottom", Kind: KindBox, Color: strip,
			Size:   r3Vec(l, th, bandingStripThick),
			Center: r3Vec(0, th/2, -w/2-bandingStripThick/2),
		})
	}
	if board.Edges.Left != "" {
		arena.Add(Node{
			Name: "band-left", Kind: KindBox, Color: strip,
			Size:   r3Vec(bandingStripThick, th, w),
			Center: r3Vec(-l/2-bandingStripThick/2, th/2, 0),
		})
	}
	if board.Edges.Right != "" {
		arena.Add(Node{
			Name: "band-right", Kind: KindBox, Color: strip,
			Size:   r3Vec(bandingStripThick, th, w),
			Center: r3Vec(l/2+bandingStripThick/2, th/2, 0),
		})
	}
}
