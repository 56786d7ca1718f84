package archetypes

import (
	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Intent,
		components.Locomotion,
		components.Health,
		components.SafePosition,
		components.Hurtbox,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Body,
		components.Health,
		components.Hurtbox,
		components.Flash,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Breakable = newArchetype(
		tags.Breakable,
		components.Breakable,
		components.Object,
		components.Hurtbox,
		components.Shake,
	)
	Lever = newArchetype(
		tags.Lever,
		components.Lever,
		components.Object,
		components.Hurtbox,
		components.Flash,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Message = newArchetype(
		components.Message,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
