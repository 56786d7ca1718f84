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

const breakableShake = 0.1

// CreateBreakable adds a solid block that breaks when hit on its weak side.
func CreateBreakable(ecs *ecs.ECS, x, y, w, h float64, hitPoints int, weakSide cfg.WeakSide) *donburi.Entry {
	block := archetypes.Breakable.Spawn(ecs)

	// Solid for movement, tagged so the ball and hitboxes can tell it apart
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid, tags.ResolvBreakable)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = block
	components.Object.SetValue(block, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	if hitPoints <= 0 {
		hitPoints = cfg.Breakable.HitPoints
	}
	components.Breakable.SetValue(block, components.BreakableData{
		Config:    &cfg.Breakable,
		HitPoints: hitPoints,
		WeakSide:  weakSide,
	})
	components.Shake.SetValue(block, components.ShakeData{Amplitude: breakableShake})
	components.Hurtbox.SetValue(block, components.HurtboxData{
		Target: systems.NewBreakableHurtbox(ecs.World, block),
	})

	return block
}

// CreateLever adds a switch. A zero size uses the configured lever size.
func CreateLever(ecs *ecs.ECS, x, y, w, h float64, channel string, top, repeatable bool) *donburi.Entry {
	lever := archetypes.Lever.Spawn(ecs)
	if w <= 0 || h <= 0 {
		w, h = cfg.Lever.Width, cfg.Lever.Height
	}

	obj := resolv.NewObject(x, y, w, h, tags.ResolvLever)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = lever
	components.Object.SetValue(lever, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Lever.SetValue(lever, components.LeverData{
		Config:     &cfg.Lever,
		Channel:    channel,
		Top:        top,
		Repeatable: repeatable,
	})
	components.Hurtbox.SetValue(lever, components.HurtboxData{
		Target: systems.NewLeverHurtbox(ecs.World, lever),
	})

	return lever
}
