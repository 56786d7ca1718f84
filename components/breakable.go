package components

import (
	"github.com/automoto/batbounce/config"
	"github.com/yohamta/donburi"
)

type BreakableData struct {
	Config    *config.BreakableConfig
	HitPoints int
	WeakSide  config.WeakSide
	Broken    bool
}

var Breakable = donburi.NewComponentType[BreakableData]()

// LeverData is a switch that fires a channel when struck.
type LeverData struct {
	Config     *config.LeverConfig
	Channel    string // external collaborator listening for activation
	Top        bool   // caller position for elevator-style receivers
	Repeatable bool
	Activated  bool
	Cooldown   Timer
}

var Lever = donburi.NewComponentType[LeverData]()

// HazardData marks damaging terrain such as spikes.
type HazardData struct {
	Damage   int
	Touching bool
}

var Hazard = donburi.NewComponentType[HazardData]()
