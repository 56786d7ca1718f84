package components

import (
	"github.com/automoto/batbounce/config"
	"github.com/yohamta/donburi"
)

// MoveLock is a reason voluntary movement is disabled. Movement is allowed
// only while no lock is held, so releasing one does not cancel another.
type MoveLock uint8

const (
	LockStun MoveLock = 1 << iota // health: knockback and hazard freeze
	LockAim                       // combat: holding position to aim
)

// LocomotionData is the player's movement state machine.
type LocomotionData struct {
	Config *config.LocomotionConfig

	State  config.StateID
	Facing float64 // +1 right, -1 left

	// Probe results, recomputed every tick.
	Grounded     bool
	TouchingWall bool
	WallSliding  bool

	Coyote        Timer
	JumpBuffer    Timer
	Dash          Timer
	DashCooldown  Timer
	WallJump      Timer
	SoundCooldown Timer

	DashDirection float64
	CanDoubleJump bool
	Horizontal    float64 // horizontal intent after locks
	Locks         MoveLock
}

// CanMove reports whether voluntary control is enabled.
func (l *LocomotionData) CanMove() bool {
	return l.Locks == 0
}

func (l *LocomotionData) Dashing() bool {
	return l.Dash.Active()
}

func (l *LocomotionData) WallJumping() bool {
	return l.WallJump.Active()
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
