package systems

import (
	"math"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerHurtbox is the player's damage handler.
type PlayerHurtbox struct {
	w donburi.World
	e *donburi.Entry
}

func NewPlayerHurtbox(w donburi.World, e *donburi.Entry) *PlayerHurtbox {
	return &PlayerHurtbox{w: w, e: e}
}

// TakeDamage is ignored while invulnerable. Losing the last life publishes
// the defeat signal and nothing else; any other hit stuns, knocks back and
// starts the invulnerability window.
func (h *PlayerHurtbox) TakeDamage(ev components.DamageEvent) {
	e := h.e
	if !e.Valid() {
		return
	}
	health := components.Health.Get(e)
	if health.Defeated || health.IsInvulnerable() {
		return
	}

	health.Current = max(health.Current-max(ev.Amount, 0), 0)
	pos := components.Object.Get(e).Center()
	publishFeedback(h.w, components.FeedbackPlayerHurt, e, pos)

	if health.Current == 0 {
		health.Defeated = true
		components.Defeated.Publish(h.w, components.DefeatedEvent{})
		return
	}

	c := health.Config
	SetCanMove(e, false)
	applyKnockback(components.Body.Get(e), pos, ev.Source, c.KnockbackForce, c.HorizontalRatio, c.VerticalRatio)

	if ev.Flags&components.FromHazard != 0 {
		health.Stun.Clear()
		health.HazardControl.Clear()
		health.HazardTeleport.Set(c.HazardRespawnDelay)
	} else {
		health.HazardTeleport.Clear()
		health.HazardControl.Clear()
		health.Stun.Set(c.StunTime)
	}

	health.Invulnerable.Set(c.InvulnerableTime)
	health.Visible = false
	health.Flicker.Set(c.FlickerInterval)
	publishFlicker(h.w, e, health)
}

// applyKnockback replaces the velocity with an impulse pointing away from
// source. A source directly above or below pushes toward +X.
func applyKnockback(body *components.BodyData, pos, source components.Vector, force, hRatio, vRatio float64) {
	side := 1.0
	if pos.X-source.X < 0 {
		side = -1
	}
	body.SetVelocity(components.Vector{})
	body.ApplyImpulse(components.Vector{X: side * hRatio * force, Y: vRatio * force})
}

// UpdateHealth advances stun, invulnerability, flicker and hazard recovery
// timers and records safe positions.
func UpdateHealth(ecs *ecs.ECS) {
	dt := tickDt(ecs.World)
	now := elapsed(ecs.World)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		if health.Defeated {
			return
		}

		if health.Stun.Tick(dt) {
			SetCanMove(e, true)
		}
		if health.HazardTeleport.Tick(dt) {
			teleportToSafety(e)
			health.HazardControl.Set(health.Config.HazardControlDelay)
		}
		if health.HazardControl.Tick(dt) {
			SetCanMove(e, true)
		}

		if health.Flicker.Tick(dt) && health.Invulnerable.Active() {
			health.Visible = !health.Visible
			health.Flicker.Set(health.Config.FlickerInterval)
			publishFlicker(ecs.World, e, health)
		}
		if health.Invulnerable.Tick(dt) {
			health.Flicker.Clear()
			health.Visible = true
			publishFlicker(ecs.World, e, health)
		}

		recordSafePosition(e, health, now, dt)
	})
}

// recordSafePosition samples grounded, controllable positions and promotes
// samples older than the lag to the hazard respawn point.
func recordSafePosition(e *donburi.Entry, health *components.HealthData, now, dt float64) {
	safe := components.SafePosition.Get(e)
	loco := components.Locomotion.Get(e)

	if safe.SampleTimer.Tick(dt) || !safe.SampleTimer.Active() {
		if loco.Grounded && loco.CanMove() {
			safe.Samples = append(safe.Samples, components.SafeSample{
				Time:     now,
				Position: components.Object.Get(e).Center(),
			})
		}
		safe.SampleTimer.Set(health.Config.SafeSampleInterval)
	}

	cutoff := now - health.Config.SafePositionLag
	n := 0
	for n < len(safe.Samples) && safe.Samples[n].Time < cutoff {
		safe.Safe = safe.Samples[n].Position
		n++
	}
	safe.Samples = safe.Samples[n:]
}

func teleportToSafety(e *donburi.Entry) {
	obj := components.Object.Get(e)
	components.Body.Get(e).SetVelocity(components.Vector{})
	obj.SetCenter(components.SafePosition.Get(e).Safe)
	SyncObject(obj.Object)
}

func publishFlicker(w donburi.World, e *donburi.Entry, health *components.HealthData) {
	components.Feedback.Publish(w, components.FeedbackEvent{
		Kind:     components.FeedbackFlicker,
		Entity:   e.Entity(),
		Position: components.Object.Get(e).Center(),
		Visible:  health.Visible,
	})
}

// EnemyHurtbox is an enemy's damage handler. Running out of health removes
// the enemy from the world.
type EnemyHurtbox struct {
	w donburi.World
	e *donburi.Entry
}

func NewEnemyHurtbox(w donburi.World, e *donburi.Entry) *EnemyHurtbox {
	return &EnemyHurtbox{w: w, e: e}
}

func (h *EnemyHurtbox) TakeDamage(ev components.DamageEvent) {
	e := h.e
	if !e.Valid() {
		return
	}
	health := components.Health.Get(e)
	enemy := components.Enemy.Get(e)
	t := enemy.TypeConfig
	pos := components.Object.Get(e).Center()

	health.Current = max(health.Current-max(ev.Amount, 0), 0)
	if health.Current == 0 {
		publishFeedback(h.w, components.FeedbackEnemyDefeated, e, pos)
		removeEntity(h.w, e)
		return
	}

	applyKnockback(components.Body.Get(e), pos, ev.Source, t.KnockbackForce, t.HorizontalRatio, t.VerticalRatio)

	// A hit interrupts any attack in progress.
	enemy.Phase = cfg.PhaseNone
	enemy.PhaseTimer.Clear()
	enemy.HitStun.Set(t.HitStun)

	components.Flash.Get(e).Timer.Set(t.FlashTime)
	publishFeedback(h.w, components.FeedbackHitFlash, e, pos)
}

// UpdateFlashes runs hit-flash timers on every entity that has one.
func UpdateFlashes(ecs *ecs.ECS) {
	dt := tickDt(ecs.World)
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		components.Flash.Get(e).Timer.Tick(dt)
	})
}

// sign returns -1, 0 or 1.
func sign(v float64) float64 {
	if v == 0 {
		return 0
	}
	return math.Copysign(1, v)
}
