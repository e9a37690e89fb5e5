package config

import "github.com/google/uuid"

// EdgeBanding holds the banding catalog key per board side; an empty key
// means the side is left raw.
type EdgeBanding struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
	Right  string `json:"right"`
}

// HasAny reports whether at least one side is banded.
func (e EdgeBanding) HasAny() bool {
	return e.Top != "" || e.Bottom != "" || e.Left != "" || e.Right != ""
}

// BandedCount returns the number of banded sides.
func (e EdgeBanding) BandedCount() int {
	n := 0
	for _, k := range []string{e.Top, e.Bottom, e.Left, e.Right} {
		if k != "" {
			n++
		}
	}
	return n
}

// Board is one cut-to-size panel line. Length and Width in mm; Thickness
// must belong to the catalog thickness set.
type Board struct {
	ID        string      `json:"id"`
	Length    float64     `json:"length"`
	Width     float64     `json:"width"`
	Thickness float64     `json:"thickness"`
	Quantity  int         `json:"quantity"`
	Edges     EdgeBanding `json:"edges"`
}

// NewBoard creates a board with the standard default cut (800 x 400 x 18,
// quantity 1, no banding).
func NewBoard() Board {
	return Board{
		ID:        uuid.New().String()[:8],
		Length:    800,
		Width:     400,
		Thickness: 18,
		Quantity:  1,
	}
}

// SurfaceSqm returns the single-face surface of one board in m².
func (b Board) SurfaceSqm() float64 {
	return b.Length / 1000 * b.Width / 1000
}

// PlancheConfig is the cut-to-size board order configuration.
type PlancheConfig struct {
	Name     string  `json:"name"`
	Material string  `json:"material"`
	Boards   []Board `json:"boards"`
	Finish   string  `json:"finish"`
}

func (c *PlancheConfig) Family() Family { return FamilyPlanche }

func (c *PlancheConfig) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return "Découpe sur mesure"
}

// FindBoard returns a pointer to the board with the given ID, or nil.
func (c *PlancheConfig) FindBoard(id string) *Board {
	for i := range c.Boards {
		if c.Boards[i].ID == id {
			return &c.Boards[i]
		}
	}
	return nil
}

// DefaultPlanche returns the starting configuration: one default board,
// oak, raw finish.
func DefaultPlanche() *PlancheConfig {
	return &PlancheConfig{
		Material: "chene",
		Boards:   []Board{NewBoard()},
		Finish:   "brut",
	}
}
