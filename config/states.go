package config

// StateID identifies a locomotion state.
type StateID int

const (
	Grounded StateID = iota
	Airborne
	WallSliding
	Dashing
	WallJumping
	Stunned
)

var stateNames = map[StateID]string{
	Grounded:    "Grounded",
	Airborne:    "Airborne",
	WallSliding: "WallSliding",
	Dashing:     "Dashing",
	WallJumping: "WallJumping",
	Stunned:     "Stunned",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "Unknown"
}

// BallStateID is the projectile behaviour state.
type BallStateID int

const (
	BallFlying BallStateID = iota
	BallReturning
	BallPogoSeeking
	BallStopped
)

func (s BallStateID) String() string {
	switch s {
	case BallFlying:
		return "Flying"
	case BallReturning:
		return "Returning"
	case BallPogoSeeking:
		return "PogoSeeking"
	case BallStopped:
		return "Stopped"
	}
	return "Unknown"
}

// EnemyStateID is the enemy AI state.
type EnemyStateID int

const (
	StatePatrol EnemyStateID = iota
	StateChase
	StateAttack
	StateHitStun
)

func (s EnemyStateID) String() string {
	switch s {
	case StatePatrol:
		return "Patrol"
	case StateChase:
		return "Chase"
	case StateAttack:
		return "Attack"
	case StateHitStun:
		return "HitStun"
	}
	return "Unknown"
}

// AttackPhase is the phase of an enemy attack sequence.
type AttackPhase int

const (
	PhaseNone AttackPhase = iota
	PhaseWindup
	PhaseActive
	PhaseRecovery
)

// WeakSide restricts which side of a breakable accepts damage.
type WeakSide int

const (
	SideAny WeakSide = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// ParseWeakSide maps a level property to a WeakSide. Unknown values mean any side.
func ParseWeakSide(s string) WeakSide {
	switch s {
	case "left", "Left":
		return SideLeft
	case "right", "Right":
		return SideRight
	case "top", "Top":
		return SideTop
	case "bottom", "Bottom":
		return SideBottom
	}
	return SideAny
}
