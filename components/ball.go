package components

import (
	"github.com/automoto/batbounce/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BallData is the thrown projectile's state machine.
type BallData struct {
	Config *config.BallConfig

	Owner        *donburi.Entry
	State        config.BallStateID
	Speed        float64
	Damage       int
	Bounces      int
	CanHitPlayer bool
	WasPogoHit   bool    // last bat redirect aimed down
	Age          float64 // seconds since the last throw or redirect

	// Contact watchdog
	Contact     *resolv.Object
	ContactTime float64
}

var Ball = donburi.NewComponentType[BallData]()
