package wizard

import "github.com/surmesure/configurator/internal/config"

// Action is the closed input vocabulary of the wizard reducer. Structural
// actions carry their family implicitly: the reducer ignores (returns the
// state unchanged) any structural action whose family does not match the
// active configuration type.
type Action interface{ isAction() }

// Navigation.

// GotoStep jumps to step N. Rejected when N is out of range or beyond the
// furthest step the user has reached.
type GotoStep struct{ N int }

// NextStep advances one step, clamped to the last step, and raises the
// max-reached watermark monotonically.
type NextStep struct{}

// PrevStep goes back one step, clamped to 0.
type PrevStep struct{}

// SetProductType replaces the configuration with the target family's
// default and restarts progress at step 1.
type SetProductType struct{ Family config.Family }

// SetName renames the project (any family).
type SetName struct{ Name string }

// Shared options.

type SetHardware struct{ Key string }
type SetFinish struct{ Key string }
type SetHandle struct{ Key string }

// Meuble structural actions.

type SetTemplate struct{ Key string }
type SetMeubleMaterial struct{ Key string }
type AddCabinet struct{}
type RemoveCabinet struct{ CabinetID string }

// ResizeCabinet updates carcass dimensions; zero fields keep the current
// value. All dimensions are clamped to the meuble envelope.
type ResizeCabinet struct {
	CabinetID                        string
	Width, Height, Depth, Thickness float64
}

type AddModule struct {
	CabinetID string
	Type      config.ModuleType
}
type RemoveModule struct{ CabinetID, ModuleID string }

// MoveModule commits a module reposition; Position is clamped to the
// cabinet's usable vertical range. This is the action the viewport drag
// protocol dispatches on a valid release.
type MoveModule struct {
	CabinetID, ModuleID string
	Position            float64
}

type ToggleDimensions struct{}
type ToggleExploded struct{}

// Planche structural actions.

type AddBoard struct{}
type RemoveBoard struct{ BoardID string }

// ResizeBoard updates a board's cut; zero fields keep the current value.
// Thickness snaps to the catalog thickness set, length/width clamp to the
// planche envelope, quantity stays >= 1.
type ResizeBoard struct {
	BoardID                  string
	Length, Width, Thickness float64
	Quantity                 int
}

// SetBoardEdge assigns a banding key ("" = raw) to one side of a board.
// Side is one of "top", "bottom", "left", "right".
type SetBoardEdge struct {
	BoardID, Side, BandingKey string
}

type SetPlancheMaterial struct{ Key string }

// Cuisine structural actions.

// SetKitchenLayout applies a layout preset, replacing the wall set and
// resetting every cabinet placement.
type SetKitchenLayout struct{ Layout config.KitchenLayout }

// PlaceKitchenCabinet appends a catalog cabinet to a wall run. A zero
// width takes the catalog default.
type PlaceKitchenCabinet struct {
	CatalogKey string
	WallID     string
	Width      float64
}

type RemoveKitchenCabinet struct{ PlacementID string }

type SetCountertop struct{ Spec config.Countertop }
type SetFacadeMaterial struct{ Key string }
type SetCarcassMaterial struct{ Key string }

func (GotoStep) isAction()             {}
func (NextStep) isAction()             {}
func (PrevStep) isAction()             {}
func (SetProductType) isAction()       {}
func (SetName) isAction()              {}
func (SetHardware) isAction()          {}
func (SetFinish) isAction()            {}
func (SetHandle) isAction()            {}
func (SetTemplate) isAction()          {}
func (SetMeubleMaterial) isAction()    {}
func (AddCabinet) isAction()           {}
func (RemoveCabinet) isAction()        {}
func (ResizeCabinet) isAction()        {}
func (AddModule) isAction()            {}
func (RemoveModule) isAction()         {}
func (MoveModule) isAction()           {}
func (ToggleDimensions) isAction()     {}
func (ToggleExploded) isAction()       {}
func (AddBoard) isAction()             {}
func (RemoveBoard) isAction()          {}
func (ResizeBoard) isAction()          {}
func (SetBoardEdge) isAction()         {}
func (SetPlancheMaterial) isAction()   {}
func (SetKitchenLayout) isAction()     {}
func (PlaceKitchenCabinet) isAction()  {}
func (RemoveKitchenCabinet) isAction() {}
func (SetCountertop) isAction()        {}
func (SetFacadeMaterial) isAction()    {}
func (SetCarcassMaterial) isAction()   {}
