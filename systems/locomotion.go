package systems

import (
	"math"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// locomotionResult reports edges the caller turns into feedback.
type locomotionResult struct {
	jumped bool
	landed bool
	dashed bool
}

func UpdateLocomotion(ecs *ecs.ECS) {
	probe := probeOf(ecs.World)
	dt := tickDt(ecs.World)

	components.Locomotion.Each(ecs.World, func(e *donburi.Entry) {
		loco := components.Locomotion.Get(e)
		body := components.Body.Get(e)
		obj := components.Object.Get(e)
		in := components.Intent.Get(e)

		res := stepLocomotion(probe, obj.Object, loco, body, *in, dt)

		pos := obj.Center()
		if res.jumped && !loco.SoundCooldown.Active() {
			loco.SoundCooldown.Set(loco.Config.SoundCooldown)
			publishFeedback(ecs.World, components.FeedbackJump, e, pos)
		}
		if res.landed && !loco.SoundCooldown.Active() {
			loco.SoundCooldown.Set(loco.Config.SoundCooldown)
			publishFeedback(ecs.World, components.FeedbackLand, e, pos)
		}
		if res.dashed {
			publishFeedback(ecs.World, components.FeedbackDash, e, pos)
		}
	})
}

// stepLocomotion advances the movement state machine by one fixed tick. It
// reads the probe, mutates the body's velocity and the facing, and never
// moves the object itself.
func stepLocomotion(p Probe, obj *resolv.Object, loco *components.LocomotionData, body *components.BodyData, in components.IntentData, dt float64) locomotionResult {
	c := loco.Config
	var res locomotionResult

	loco.DashCooldown.Tick(dt)
	loco.SoundCooldown.Tick(dt)
	loco.WallJump.Tick(dt)
	if loco.Dash.Tick(dt) {
		endDash(loco, body)
		loco.Grounded = p.IsGroundedBelow(obj)
		loco.State = deriveState(loco)
		return res
	}

	wasGrounded := loco.Grounded
	loco.Grounded = p.IsGroundedBelow(obj)
	if loco.Grounded {
		loco.Coyote.Set(c.CoyoteTime)
		loco.CanDoubleJump = true
	} else {
		loco.Coyote.Tick(dt)
	}
	loco.TouchingWall = p.IsWallAhead(obj, loco.Facing)
	loco.WallSliding = loco.TouchingWall && !loco.Grounded && body.Velocity.Y < c.WallSlideMaxRise
	res.landed = loco.Grounded && !wasGrounded

	if loco.CanMove() {
		loco.Horizontal = clampAxis(in.MoveX)
		if in.JumpPressed {
			loco.JumpBuffer.Set(c.JumpBufferTime)
		}
		if in.DashPressed && c.DashEnabled && !loco.Dashing() && !loco.DashCooldown.Active() {
			startDash(loco, body)
			res.dashed = true
		}
		if in.JumpReleased && body.Velocity.Y > 0 && !loco.Dashing() {
			body.Velocity.Y *= c.JumpCutFactor
		}
		if !loco.WallJumping() && !loco.WallSliding && opposes(loco.Horizontal, loco.Facing) {
			loco.Facing = -loco.Facing
		}
	} else {
		loco.Horizontal = 0
	}

	if loco.Dashing() {
		body.Velocity = components.Vector{X: loco.DashDirection * c.DashSpeed}
		loco.State = deriveState(loco)
		return res
	}

	// Extra gravity on top of the integrator's base gravity. Also runs while
	// stunned so knockback arcs fall the same way jumps do.
	if !loco.Grounded && !loco.WallSliding {
		scale := c.GravityMultiplier
		if body.Velocity.Y < 0 {
			scale *= c.FallMultiplier
		}
		body.Velocity.Y += cfg.Physics.Gravity * (scale - 1) * dt
	}

	if loco.CanMove() && loco.JumpBuffer.Active() {
		if tryJump(loco, body) {
			loco.JumpBuffer.Clear()
			res.jumped = true
		} else {
			loco.JumpBuffer.Tick(dt)
		}
	}

	// A stun leaves velocity to the knockback. Any other lock steers toward
	// standing still with Horizontal already zeroed.
	if loco.Locks&components.LockStun == 0 {
		if !loco.WallJumping() {
			target := loco.Horizontal * c.MoveSpeed
			if loco.WallSliding && loco.Horizontal*loco.Facing > 0 {
				target = loco.Facing * c.WallStickSpeed
			}
			if c.AirControl && !loco.Grounded {
				alpha := 1 - math.Exp(-c.AirControlRate*dt)
				body.Velocity.X += (target - body.Velocity.X) * alpha
			} else {
				body.Velocity.X = target
			}
		}
	}

	if loco.WallSliding && !loco.WallJumping() {
		body.Velocity.Y = math.Max(body.Velocity.Y, -c.WallSlideSpeed)
	} else {
		body.Velocity.Y = math.Max(body.Velocity.Y, c.MaxFallSpeed)
	}

	loco.State = deriveState(loco)
	return res
}

// tryJump consumes a buffered jump: wall jump, then ground or coyote jump,
// then double jump.
func tryJump(loco *components.LocomotionData, body *components.BodyData) bool {
	c := loco.Config
	switch {
	case loco.TouchingWall && !loco.Grounded:
		dir := -loco.Facing
		body.Velocity = components.Vector{X: c.WallJumpVelocityX * dir, Y: c.WallJumpVelocityY}
		loco.Facing = dir
		loco.WallJump.Set(c.WallJumpDuration)
		loco.WallSliding = false
		if c.WallJumpRefreshesDoubleJump {
			loco.CanDoubleJump = true
		}
		return true
	case loco.Coyote.Active():
		body.Velocity.Y = jumpVelocity(c)
		loco.Coyote.Clear()
		return true
	case c.DoubleJumpEnabled && loco.CanDoubleJump:
		body.Velocity.Y = c.DoubleJumpVelocity
		loco.CanDoubleJump = false
		return true
	}
	return false
}

// jumpVelocity is the launch speed reaching JumpHeight under airborne gravity.
func jumpVelocity(c *cfg.LocomotionConfig) float64 {
	if c.UseJumpVelocity {
		return c.JumpVelocity
	}
	return math.Sqrt(2 * math.Abs(cfg.Physics.Gravity*c.GravityMultiplier) * c.JumpHeight)
}

func startDash(loco *components.LocomotionData, body *components.BodyData) {
	dir := math.Copysign(1, loco.Horizontal)
	if loco.Horizontal == 0 {
		dir = loco.Facing
	}
	loco.DashDirection = dir
	loco.Dash.Set(loco.Config.DashDuration)
	body.SetGravity(false)
	body.Velocity = components.Vector{X: dir * loco.Config.DashSpeed}
}

func endDash(loco *components.LocomotionData, body *components.BodyData) {
	loco.Dash.Clear()
	loco.DashCooldown.Set(loco.Config.DashCooldown)
	body.SetGravity(true)
	body.Velocity = components.Vector{}
}

func deriveState(loco *components.LocomotionData) cfg.StateID {
	switch {
	case loco.Locks&components.LockStun != 0:
		return cfg.Stunned
	case loco.Dashing():
		return cfg.Dashing
	case loco.WallJumping():
		return cfg.WallJumping
	case loco.WallSliding:
		return cfg.WallSliding
	case loco.Grounded:
		return cfg.Grounded
	}
	return cfg.Airborne
}

// SetMoveLock adds or releases one reason voluntary movement is disabled.
// Locking drops horizontal intent and any buffered jump but leaves the
// velocity alone, so an impulse applied by the caller keeps playing out. A
// stun also cuts a running dash short.
func SetMoveLock(loco *components.LocomotionData, body *components.BodyData, lock components.MoveLock, on bool) {
	if !on {
		loco.Locks &^= lock
		return
	}
	loco.Locks |= lock
	loco.Horizontal = 0
	loco.JumpBuffer.Clear()
	if lock == components.LockStun && loco.Dashing() {
		loco.Dash.Clear()
		loco.DashCooldown.Set(loco.Config.DashCooldown)
		body.SetGravity(true)
	}
	if lock == components.LockStun {
		loco.State = cfg.Stunned
	}
}

// SetCanMove enables or disables voluntary movement for damage reactions.
func SetCanMove(e *donburi.Entry, canMove bool) {
	if !e.Valid() || !e.HasComponent(components.Locomotion) {
		return
	}
	SetMoveLock(components.Locomotion.Get(e), components.Body.Get(e), components.LockStun, !canMove)
}

// ManualFlip turns the actor toward dir regardless of wall state.
func ManualFlip(loco *components.LocomotionData, dir float64) {
	if opposes(dir, loco.Facing) {
		loco.Facing = -loco.Facing
	}
}

func opposes(axis, facing float64) bool {
	return (facing > 0 && axis < 0) || (facing < 0 && axis > 0)
}

func clampAxis(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func publishFeedback(w donburi.World, kind components.FeedbackKind, e *donburi.Entry, pos components.Vector) {
	ev := components.FeedbackEvent{Kind: kind, Position: pos, Visible: true}
	if e != nil {
		ev.Entity = e.Entity()
	}
	components.Feedback.Publish(w, ev)
}
