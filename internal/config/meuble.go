package config

import "github.com/google/uuid"

// ModuleType enumerates the internal fittings a cabinet can host.
type ModuleType string

const (
	ModuleEtagere  ModuleType = "etagere"
	ModuleTiroir   ModuleType = "tiroir"
	ModulePenderie ModuleType = "penderie"
	ModuleNiche    ModuleType = "niche"
	ModulePorte    ModuleType = "porte"
)

// Module is an internal fitting of a cabinet. Position is the vertical
// offset of the module from the cabinet bottom, in mm. Modules are not
// guaranteed non-overlapping by the model; overlap is a presentation-time
// concern, the structural invariant is only the vertical range.
type Module struct {
	ID       string     `json:"id"`
	Type     ModuleType `json:"type"`
	Position float64    `json:"position"` // mm from cabinet bottom
	Width    float64    `json:"width"`    // mm
	Height   float64    `json:"height"`   // mm
}

func NewModule(t ModuleType, position, width, height float64) Module {
	return Module{
		ID:       uuid.New().String()[:8],
		Type:     t,
		Position: position,
		Width:    width,
		Height:   height,
	}
}

// Cabinet is a rectangular carcass hosting modules. Dimensions in mm.
type Cabinet struct {
	ID        string   `json:"id"`
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	Depth     float64  `json:"depth"`
	Thickness float64  `json:"thickness"`
	Position  Position `json:"position"`
	Modules   []Module `json:"modules"`
}

// NewCabinet creates a cabinet with the standard default carcass
// (800 x 2200 x 600 mm, 18 mm panels) and three shelves.
func NewCabinet() Cabinet {
	c := Cabinet{
		ID:        uuid.New().String()[:8],
		Width:     800,
		Height:    2200,
		Depth:     600,
		Thickness: 18,
		Modules:   []Module{},
	}
	for i := 1; i <= 3; i++ {
		m := NewModule(ModuleEtagere, float64(i)*c.Height/4, c.Width, 19)
		c.Modules = append(c.Modules, m)
	}
	return c
}

// ClampThickness enforces thickness <= min(width, height, depth)/2.
func (c *Cabinet) ClampThickness() {
	limit := c.Width
	if c.Height < limit {
		limit = c.Height
	}
	if c.Depth < limit {
		limit = c.Depth
	}
	limit /= 2
	if c.Thickness > limit {
		c.Thickness = limit
	}
	if c.Thickness < 1 {
		c.Thickness = 1
	}
}

// ModuleRange returns the usable vertical range for a module position,
// in mm from the cabinet bottom.
func (c Cabinet) ModuleRange() (min, max float64) {
	return c.Thickness + 50, c.Height - c.Thickness - 100
}

// CountModules returns the number of modules of the given type.
func (c Cabinet) CountModules(t ModuleType) int {
	n := 0
	for _, m := range c.Modules {
		if m.Type == t {
			n++
		}
	}
	return n
}

// FindModule returns a pointer to the module with the given ID, or nil.
func (c *Cabinet) FindModule(id string) *Module {
	for i := range c.Modules {
		if c.Modules[i].ID == id {
			return &c.Modules[i]
		}
	}
	return nil
}

// MeubleConfig is the free-form furniture configuration.
type MeubleConfig struct {
	Name           string    `json:"name"`
	Template       string    `json:"template"`
	Material       string    `json:"material"`
	Cabinets       []Cabinet `json:"cabinets"`
	GlobalHandle   string    `json:"global_handle"`
	Hardware       string    `json:"hardware"`
	Finish         string    `json:"finish"`
	ShowDimensions bool      `json:"show_dimensions"`
	Exploded       bool      `json:"exploded"`
}

func (c *MeubleConfig) Family() Family { return FamilyMeuble }

func (c *MeubleConfig) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return "Meuble sur mesure"
}

// DefaultMeuble returns the starting configuration: one default cabinet,
// oak, raw finish, free-form template.
func DefaultMeuble() *MeubleConfig {
	cfg := &MeubleConfig{
		Template:     "libre",
		Material:     "chene",
		Cabinets:     []Cabinet{NewCabinet()},
		GlobalHandle: "bouton",
		Hardware:     "charnieres",
		Finish:       "brut",
	}
	cfg.NormalizeLayout()
	return cfg
}

// NormalizeLayout recomputes each cabinet's X position as the running sum
// of the preceding cabinets' widths: cabinets lay out left to right with
// no gaps.
func (c *MeubleConfig) NormalizeLayout() {
	x := 0.0
	for i := range c.Cabinets {
		c.Cabinets[i].Position.X = x
		x += c.Cabinets[i].Width
	}
}

// FindCabinet returns a pointer to the cabinet with the given ID, or nil.
func (c *MeubleConfig) FindCabinet(id string) *Cabinet {
	for i := range c.Cabinets {
		if c.Cabinets[i].ID == id {
			return &c.Cabinets[i]
		}
	}
	return nil
}

// TotalWidth returns the summed width of all cabinets in mm.
func (c *MeubleConfig) TotalWidth() float64 {
	var w float64
	for _, cab := range c.Cabinets {
		w += cab.Width
	}
	return w
}
