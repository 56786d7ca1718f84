package components

import (
	"github.com/automoto/batbounce/config"
	"github.com/yohamta/donburi"
)

// HealthData tracks lives and the timed damage response shared by the player
// and enemies.
type HealthData struct {
	Config *config.HealthConfig

	Current  int
	Max      int
	Defeated bool

	Stun         Timer
	Invulnerable Timer
	Flicker      Timer
	Visible      bool

	// Hazard recovery runs instead of the plain stun.
	HazardTeleport Timer
	HazardControl  Timer
}

// IsInvulnerable reports whether damage is currently ignored.
func (h *HealthData) IsInvulnerable() bool {
	return h.Invulnerable.Active()
}

var Health = donburi.NewComponentType[HealthData]()

// DamageFlags describe where damage came from.
type DamageFlags uint8

const (
	FromHazard DamageFlags = 1 << iota
	FromProjectile
	FromMelee
	FromEnemy
)

// DamageEvent is one immutable hit delivered to a single target.
type DamageEvent struct {
	Amount int
	Source Vector // world position of the attacker
	Flags  DamageFlags
}

// Damageable is implemented by everything that can be hit.
type Damageable interface {
	TakeDamage(ev DamageEvent)
}

// HurtboxData binds an entity to its damage handler.
type HurtboxData struct {
	Target Damageable
}

var Hurtbox = donburi.NewComponentType[HurtboxData]()
