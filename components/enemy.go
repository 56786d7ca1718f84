package components

import (
	"github.com/automoto/batbounce/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Grunt", "Brute" etc...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Target     *donburi.Entry          // Player handed over by the level assembler

	State  config.EnemyStateID
	Facing float64

	// Patrol bounds around the spawn point
	Spawn       Vector
	PatrolLeft  float64
	PatrolRight float64

	// Attack sequence
	Phase          config.AttackPhase
	PhaseTimer     Timer
	AttackLanded   bool
	AttackCooldown Timer

	HitStun        Timer
	TouchingTarget bool // contact damage is edge triggered
}

var Enemy = donburi.NewComponentType[EnemyData]()
