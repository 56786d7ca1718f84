package factory

import (
	"github.com/automoto/batbounce/archetypes"
	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, data *leveldata.LevelData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Name: data.Name,
		Data: data,
	})
	return level
}

// BuildLevel creates the clock, space, camera and every level entity, and
// returns the player. Enemies are handed the player as their target.
func BuildLevel(ecs *ecs.ECS, data *leveldata.LevelData) *donburi.Entry {
	CreateClock(ecs, cfg.Sim.Dt())
	CreateLevel(ecs, data)

	// The space must exist before anything that collides is created.
	CreateSpace(ecs, data.Width, data.Height, cfg.Physics.CellSize)

	for _, r := range data.Solids {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, hz := range data.Hazards {
		CreateHazard(ecs, hz.X, hz.Y, hz.W, hz.H, hz.Damage)
	}
	for _, b := range data.Breakables {
		CreateBreakable(ecs, b.X, b.Y, b.W, b.H, b.HitPoints, cfg.ParseWeakSide(b.WeakSide))
	}
	for _, l := range data.Levers {
		CreateLever(ecs, l.X, l.Y, l.W, l.H, l.Channel, l.Top, l.Repeatable)
	}

	spawn := data.PlayerSpawn
	player := CreatePlayer(ecs, spawn.X, spawn.Y)

	for _, en := range data.Enemies {
		CreateEnemy(ecs, en.X, en.Y, en.Type, en.PatrolDistance, player)
	}

	CreateCamera(ecs, components.Object.Get(player).Center())

	return player
}
