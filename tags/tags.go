package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Wall      = donburi.NewTag().SetName("Wall")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Hitbox    = donburi.NewTag().SetName("Hitbox")
	Ball      = donburi.NewTag().SetName("Ball")
	Breakable = donburi.NewTag().SetName("Breakable")
	Lever     = donburi.NewTag().SetName("Lever")
	Hazard    = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvBall      = "Ball"
	ResolvBreakable = "Breakable"
	ResolvLever     = "Lever"
	ResolvHazard    = "hazard"
	ResolvHitbox    = "Hitbox"
)
