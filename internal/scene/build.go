package scene

import (
	"image/color"

	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

// Build rebuilds the arena from a configuration. The previous generation
// is always released first, even when the family is unknown and the new
// model is empty.
func Build(cat *catalog.Catalog, cfg config.Product, arena *Arena) {
	arena.Reset()
	switch c := cfg.(type) {
	case *config.MeubleConfig:
		buildMeuble(cat, c, arena)
	case *config.PlancheConfig:
		buildPlanche(cat, c, arena)
	case *config.CuisineConfig:
		buildCuisine(cat, c, arena)
	default:
		// Unknown family: empty scene.
	}
}

// grey is the metal tone for rails, handles, and hardware.
var grey = color.NRGBA{R: 0x8A, G: 0x8D, B: 0x91, A: 0xFF}

// ColorFromHex parses "#RRGGBB" into an opaque NRGBA; bad input returns a
// neutral wood tone, matching the catalog's unknown-material fallback.
func ColorFromHex(hex string) color.NRGBA {
	fallback := color.NRGBA{R: 0xC1, G: 0x9A, B: 0x6B, A: 0xFF}
	if len(hex) != 7 || hex[0] != '#' {
		return fallback
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexVal(hex[1+i*2])
		lo, ok2 := hexVal(hex[2+i*2])
		if !ok1 || !ok2 {
			return fallback
		}
		out[i] = hi<<4 | lo
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: 0xFF}
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		s := float64(v) * f
		if s > 255 {
			s = 255
		}
		return uint8(s)
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
