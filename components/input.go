package components

import (
	"github.com/automoto/batbounce/config"
	"github.com/yohamta/donburi"
)

// IntentData is one tick of buffered player intent. Pressed/Released flags
// are edges and only hold for the tick they were produced in.
type IntentData struct {
	MoveX, MoveY  float64
	JumpPressed   bool
	JumpReleased  bool
	DashPressed   bool
	AttackPressed bool
	ThrowPressed  bool
	HoldAim       bool
}

var Intent = donburi.NewComponentType[IntentData]()

// ActionState is the edge-aware state of one bound action.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds the raw polled actions for this and the previous frame.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool

	// Left stick, already past the deadzone. Y is up.
	AxisX, AxisY float64
}
