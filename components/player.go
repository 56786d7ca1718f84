package components

import (
	"github.com/automoto/batbounce/config"
	"github.com/yohamta/donburi"
)

// PlayerData is the combat dispatcher state owned by the player.
type PlayerData struct {
	Combat *config.CombatConfig

	Aim            Vector // unit aim direction
	ThrowCooldown  Timer
	MeleeCooldown  Timer
	PogoRefractory Timer
	ActiveBalls    []*donburi.Entry
	ActiveHitbox   *donburi.Entry
}

var Player = donburi.NewComponentType[PlayerData]()

// SafePositionData keeps a short history of grounded positions so hazards
// can return the player somewhere sensible.
type SafePositionData struct {
	Samples     []SafeSample
	SampleTimer Timer
	Safe        Vector // newest sample older than the configured lag
}

type SafeSample struct {
	Time     float64
	Position Vector
}

var SafePosition = donburi.NewComponentType[SafePositionData]()
