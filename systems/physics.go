package systems

import (
	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravity integrates base gravity into every body that has it
// enabled. It runs before the state machines so their velocity clamps hold
// when positions are integrated.
func UpdateGravity(ecs *ecs.ECS) {
	dt := tickDt(ecs.World)
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !body.GravityEnabled {
			return
		}
		body.Velocity.Y += cfg.Physics.Gravity * body.GravityScale * dt
	})
}

// UpdateMovement integrates actor positions and resolves them against
// solids. Balls move in their own system.
func UpdateMovement(ecs *ecs.ECS) {
	probe := probeOf(ecs.World)
	dt := tickDt(ecs.World)
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Ball) {
			return
		}
		body := components.Body.Get(e)
		obj := components.Object.Get(e)
		if body.Solid {
			resolveObjectHorizontalCollision(probe, body, obj.Object, body.Velocity.X*dt)
			resolveObjectVerticalCollision(probe, body, obj.Object, body.Velocity.Y*dt)
		} else {
			obj.X += body.Velocity.X * dt
			obj.Y += body.Velocity.Y * dt
		}
		SyncObject(obj.Object)
	})
}
