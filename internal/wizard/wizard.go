package wizard

import (
	"github.com/surmesure/configurator/internal/catalog"
	"github.com/surmesure/configurator/internal/config"
)

// State is the wizard snapshot: current configuration, step cursor, the
// furthest step reached, and the unsaved-changes flag. ProjectID stays
// empty until the external save collaborator assigns one.
type State struct {
	CurrentStep    int
	MaxReachedStep int
	Config         config.Product
	IsDirty        bool
	ProjectID      string
}

// New returns the initial wizard state: a default meuble at step 0.
func New() State {
	return State{Config: config.DefaultMeuble()}
}

// Clone returns a deep copy of the state so callers can keep snapshots
// that later reducer runs cannot reach into.
func (s State) Clone() State {
	switch c := s.Config.(type) {
	case *config.MeubleConfig:
		dup, _ := cloneMeuble(c)
		s.Config = dup
	case *config.PlancheConfig:
		dup, _ := clonePlanche(c)
		s.Config = dup
	case *config.CuisineConfig:
		dup, _ := cloneCuisine(c)
		s.Config = dup
	}
	return s
}

// Steps returns the ordered step list of the active family.
func (s State) Steps() []Step { return StepsFor(s.Config.Family()) }

// StepCount returns the number of steps for the active family.
func (s State) StepCount() int { return len(s.Steps()) }

// Reduce is the pure transition function. It never mutates its input
// state's configuration; every accepted mutation acts on a deep copy.
// Rejected actions (out-of-range navigation, family mismatch, last-item
// removal) return the state unchanged.
func Reduce(cat *catalog.Catalog, s State, a Action) State {
	switch act := a.(type) {
	case GotoStep:
		if act.N < 0 || act.N >= s.StepCount() || act.N > s.MaxReachedStep {
			return s
		}
		s.CurrentStep = act.N
		return s

	case NextStep:
		if s.CurrentStep < s.StepCount()-1 {
			s.CurrentStep++
		}
		if s.CurrentStep > s.MaxReachedStep {
			s.MaxReachedStep = s.CurrentStep
		}
		return s

	case PrevStep:
		if s.CurrentStep > 0 {
			s.CurrentStep--
		}
		return s

	case SetProductType:
		s.Config = config.DefaultFor(act.Family)
		s.CurrentStep = 1
		s.MaxReachedStep = 1
		s.IsDirty = false
		return s

	case SetName:
		return s.withConfig(setName(s.Config, act.Name))

	case SetHardware:
		return s.withConfig(setHardware(s.Config, act.Key))

	case SetFinish:
		return s.withConfig(setFinish(s.Config, act.Key))

	case SetHandle:
		return s.withConfig(setHandle(s.Config, act.Key))

	case SetTemplate:
		m, ok := cloneMeuble(s.Config)
		if !ok {
			return s
		}
		m.Template = act.Key
		return s.withConfig(m)

	case SetMeubleMaterial:
		m, ok := cloneMeuble(s.Config)
		if !ok {
			return s
		}
		m.Material = act.Key
		return s.withConfig(m)

	case AddCabinet:
		m, ok := cloneMeuble(s.Config)
		if !ok {
			return s
		}
		m.Cabinets = append(m.Cabinets, config.NewCabinet())
		m.NormalizeLayout()
		return s.withConfig(m)

	case RemoveCabinet:
		m, ok := cloneMeuble(s.Config)
		if !ok || len(m.Cabinets) <= 1 {
			return s
		}
		kept := m.Cabinets[:0]
		found := false
		for _, c := range m.Cabinets {
			if c.ID == act.CabinetID {
				found = true
				continue
			}
			kept = append(kept, c)
		}
		if !found {
			return s
		}
		m.Cabinets = kept
		m.NormalizeLayout()
		return s.withConfig(m)

	case ResizeCabinet:
		m, ok := cloneMeuble(s.Config)
		if !ok {
			return s
		}
		cab := m.FindCabinet(act.CabinetID)
		if cab == nil {
			return s
		}
		env := cat.EnvelopeFor(string(config.FamilyMeuble))
		if act.Width > 0 {
			cab.Width = env.ClampWidth(act.Width)
		}
		if act.Height > 0 {
			cab.Height = env.ClampHeight(act.Height)
		}
		if act.Depth > 0 {
			cab.Depth = env.ClampDepth(act.Depth)
		}
		if act.Thickness > 0 {
			cab.Thickness = act.Thickness
		}
		cab.ClampThickness()
		clampModules(cab)
		m.NormalizeLayout()
		return s.withConfig(m)

	case AddModule:
		m, ok := cloneMeuble(s.Config)
		if !ok {
			return s
		}
		cab := m.FindCabinet(act.CabinetID)
		if cab == nil {
			return s
		}
		lo, hi := cab.ModuleRange()
		opt := cat.Modules[string(act.Type)]
		mod := config.NewModule(act.Type, (lo+hi)/2, cab.Width, opt.DefaultHeight)
		cab.Modules = append(cab.Modules, mod)
		return s.withConfig(m)

	case RemoveModule:
		m, ok := cloneMeuble(s.Config)
		if !ok {
			return s
		}
		cab := m.FindCabinet(act.CabinetID)
		if cab == nil {
			return s
		}
		kept := cab.Modules[:0]
		found := false
		for _, mod := range cab.Modules {
			if mod.ID == act.ModuleID {
				found = true
				continue
			}
			kept = append(kept, mod)
		}
		if !found {
			return s
		}
		cab.Modules = kept
		return s.withConfig(m)

	case MoveModule:
		m, ok := cloneMeuble(s.Config)
		if !ok {
			return s
		}
		cab := m.FindCabinet(act.CabinetID)
		if cab == nil {
			return s
		}
		mod := cab.FindModule(act.ModuleID)
		if mod == nil {
			return s
		}
		lo, hi := cab.ModuleRange()
		mod.Position = clampF(act.Position, lo, hi)
		return s.withConfig(m)

	case ToggleDimensions:
		m, ok := cloneMeuble(s.Config)
		if !ok {
			return s
		}
		m.ShowDimensions = !m.ShowDimensions
		return s.withConfig(m)

	case ToggleExploded:
		m, ok := cloneMeuble(s.Config)
		if !ok {
			return s
		}
		m.Exploded = !m.Exploded
		return s.withConfig(m)

	case AddBoard:
		p, ok := clonePlanche(s.Config)
		if !ok {
			return s
		}
		p.Boards = append(p.Boards, config.NewBoard())
		return s.withConfig(p)

	case RemoveBoard:
		p, ok := clonePlanche(s.Config)
		if !ok || len(p.Boards) <= 1 {
			return s
		}
		kept := p.Boards[:0]
		found := false
		for _, b := range p.Boards {
			if b.ID == act.BoardID {
				found = true
				continue
			}
			kept = append(kept, b)
		}
		if !found {
			return s
		}
		p.Boards = kept
		return s.withConfig(p)

	case ResizeBoard:
		p, ok := clonePlanche(s.Config)
		if !ok {
			return s
		}
		b := p.FindBoard(act.BoardID)
		if b == nil {
			return s
		}
		env := cat.EnvelopeFor(string(config.FamilyPlanche))
		if act.Length > 0 {
			b.Length = env.ClampHeight(act.Length)
		}
		if act.Width > 0 {
			b.Width = env.ClampWidth(act.Width)
		}
		if act.Thickness > 0 {
			b.Thickness = cat.NearestBoardThickness(act.Thickness)
		}
		if act.Quantity > 0 {
			b.Quantity = act.Quantity
		}
		return s.withConfig(p)

	case SetBoardEdge:
		p, ok := clonePlanche(s.Config)
		if !ok {
			return s
		}
		b := p.FindBoard(act.BoardID)
		if b == nil {
			return s
		}
		switch act.Side {
		case "top":
			b.Edges.Top = act.BandingKey
		case "bottom":
			b.Edges.Bottom = act.BandingKey
		case "left":
			b.Edges.Left = act.BandingKey
		case "right":
			b.Edges.Right = act.BandingKey
		default:
			return s
		}
		return s.withConfig(p)

	case SetPlancheMaterial:
		p, ok := clonePlanche(s.Config)
		if !ok {
			return s
		}
		p.Material = act.Key
		return s.withConfig(p)

	case SetKitchenLayout:
		k, ok := cloneCuisine(s.Config)
		if !ok {
			return s
		}
		k.ApplyLayout(act.Layout)
		return s.withConfig(k)

	case PlaceKitchenCabinet:
		k, ok := cloneCuisine(s.Config)
		if !ok {
			return s
		}
		entry, known := cat.KitchenCabinetByKey(act.CatalogKey)
		if !known || k.FindWall(act.WallID) == nil {
			return s
		}
		width := act.Width
		if width <= 0 {
			width = entry.DefaultWidth
		}
		pl := config.NewKitchenPlacement(act.CatalogKey, width, act.WallID)
		switch entry.Category {
		case catalog.KitchenWall:
			k.WallCabinets = append(k.WallCabinets, pl)
		case catalog.KitchenTall:
			k.TallCabinets = append(k.TallCabinets, pl)
		default:
			k.BaseCabinets = append(k.BaseCabinets, pl)
		}
		k.NormalizePlacements()
		return s.withConfig(k)

	case RemoveKitchenCabinet:
		k, ok := cloneCuisine(s.Config)
		if !ok {
			return s
		}
		found := false
		remove := func(list []config.KitchenPlacement) []config.KitchenPlacement {
			kept := list[:0]
			for _, pl := range list {
				if pl.ID == act.PlacementID {
					found = true
					continue
				}
				kept = append(kept, pl)
			}
			return kept
		}
		k.BaseCabinets = remove(k.BaseCabinets)
		k.WallCabinets = remove(k.WallCabinets)
		k.TallCabinets = remove(k.TallCabinets)
		if !found {
			return s
		}
		k.NormalizePlacements()
		return s.withConfig(k)

	case SetCountertop:
		k, ok := cloneCuisine(s.Config)
		if !ok {
			return s
		}
		spec := act.Spec
		if spec.Overhang < 0 {
			spec.Overhang = 0
		}
		if spec.BacksplashHeight < 0 {
			spec.BacksplashHeight = 0
		}
		k.Countertop = spec
		return s.withConfig(k)

	case SetFacadeMaterial:
		k, ok := cloneCuisine(s.Config)
		if !ok {
			return s
		}
		k.FacadeMaterial = act.Key
		return s.withConfig(k)

	case SetCarcassMaterial:
		k, ok := cloneCuisine(s.Config)
		if !ok {
			return s
		}
		k.CarcassMaterial = act.Key
		return s.withConfig(k)

	default:
		return s
	}
}

// withConfig installs a new configuration and marks the state dirty.
// A nil config means the action was rejected.
func (s State) withConfig(p config.Product) State {
	if p == nil {
		return s
	}
	s.Config = p
	s.IsDirty = true
	return s
}

// clampModules keeps every module position inside the cabinet's usable
// range after a carcass resize.
func clampModules(cab *config.Cabinet) {
	lo, hi := cab.ModuleRange()
	for i := range cab.Modules {
		cab.Modules[i].Position = clampF(cab.Modules[i].Position, lo, hi)
		if cab.Modules[i].Width > cab.Width {
			cab.Modules[i].Width = cab.Width
		}
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Deep copies. Each clone helper also serves as the family guard: a
// mismatched configuration type returns ok=false and the reducer leaves
// the state untouched.

func cloneMeuble(p config.Product) (*config.MeubleConfig, bool) {
	src, ok := p.(*config.MeubleConfig)
	if !ok {
		return nil, false
	}
	dup := *src
	dup.Cabinets = make([]config.Cabinet, len(src.Cabinets))
	for i, c := range src.Cabinets {
		dup.Cabinets[i] = c
		dup.Cabinets[i].Modules = append([]config.Module(nil), c.Modules...)
	}
	return &dup, true
}

func clonePlanche(p config.Product) (*config.PlancheConfig, bool) {
	src, ok := p.(*config.PlancheConfig)
	if !ok {
		return nil, false
	}
	dup := *src
	dup.Boards = append([]config.Board(nil), src.Boards...)
	return &dup, true
}

func cloneCuisine(p config.Product) (*config.CuisineConfig, bool) {
	src, ok := p.(*config.CuisineConfig)
	if !ok {
		return nil, false
	}
	dup := *src
	dup.Walls = append([]config.Wall(nil), src.Walls...)
	dup.BaseCabinets = append([]config.KitchenPlacement(nil), src.BaseCabinets...)
	dup.WallCabinets = append([]config.KitchenPlacement(nil), src.WallCabinets...)
	dup.TallCabinets = append([]config.KitchenPlacement(nil), src.TallCabinets...)
	return &dup, true
}

// Shared option setters; each accepts the subset of families carrying the
// option and rejects the rest.

func setName(p config.Product, name string) config.Product {
	switch c := p.(type) {
	case *config.MeubleConfig:
		dup, _ := cloneMeuble(c)
		dup.Name = name
		return dup
	case *config.PlancheConfig:
		dup, _ := clonePlanche(c)
		dup.Name = name
		return dup
	case *config.CuisineConfig:
		dup, _ := cloneCuisine(c)
		dup.Name = name
		return dup
	default:
		return nil
	}
}

func setHardware(p config.Product, key string) config.Product {
	switch c := p.(type) {
	case *config.MeubleConfig:
		dup, _ := cloneMeuble(c)
		dup.Hardware = key
		return dup
	case *config.CuisineConfig:
		dup, _ := cloneCuisine(c)
		dup.Hardware = key
		return dup
	default:
		return nil
	}
}

func setFinish(p config.Product, key string) config.Product {
	switch c := p.(type) {
	case *config.MeubleConfig:
		dup, _ := cloneMeuble(c)
		dup.Finish = key
		return dup
	case *config.PlancheConfig:
		dup, _ := clonePlanche(c)
		dup.Finish = key
		return dup
	case *config.CuisineConfig:
		dup, _ := cloneCuisine(c)
		dup.Finish = key
		return dup
	default:
		return nil
	}
}

func setHandle(p config.Product, key string) config.Product {
	switch c := p.(type) {
	case *config.MeubleConfig:
		dup, _ := cloneMeuble(c)
		dup.GlobalHandle = key
		return dup
	case *config.CuisineConfig:
		dup, _ := cloneCuisine(c)
		dup.GlobalHandle = key
		return dup
	default:
		return nil
	}
}
