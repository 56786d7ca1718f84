package factory

import (
	"github.com/automoto/batbounce/archetypes"
	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/systems"
	"github.com/automoto/batbounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing with its feet centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	w, h := cfg.Locomotion.Width, cfg.Locomotion.Height

	obj := resolv.NewObject(x-w/2, y, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, obj)

	components.Body.SetValue(player, components.BodyData{
		GravityEnabled: true,
		GravityScale:   1,
		Mass:           1,
		Solid:          true,
	})
	components.Locomotion.SetValue(player, components.LocomotionData{
		Config:        &cfg.Locomotion,
		State:         cfg.Grounded,
		Facing:        1,
		CanDoubleJump: true,
	})
	components.Player.SetValue(player, components.PlayerData{
		Combat: &cfg.Combat,
		Aim:    components.Vector{X: 1, Y: 0},
	})
	components.Health.SetValue(player, components.HealthData{
		Config:  &cfg.PlayerHealth,
		Current: cfg.PlayerHealth.MaxLives,
		Max:     cfg.PlayerHealth.MaxLives,
		Visible: true,
	})
	components.SafePosition.SetValue(player, components.SafePositionData{
		Safe: components.Vector{X: x, Y: y + h/2},
	})
	components.Hurtbox.SetValue(player, components.HurtboxData{
		Target: systems.NewPlayerHurtbox(ecs.World, player),
	})

	return player
}
