package components

import (
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	OwnerEntity *donburi.Entry          // The entity that swung
	Direction   Vector                  // Unit strike direction
	Offset      float64                 // Distance of the box centre from the owner's centre
	Size        float64                 // Edge length of the square box
	Damage      int                     // Damage dealt to each target once
	Impulse     float64                 // Velocity change along Direction for targets with mass
	Downward    bool                    // Strike counts for pogo
	LifeTime    Timer                   // Active window
	HitEntities map[*donburi.Entry]bool // Entities already hit (prevent multiple hits)
}

var Hitbox = donburi.NewComponentType[HitboxData]()
