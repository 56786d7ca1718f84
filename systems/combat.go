package systems

import (
	"math"

	"github.com/automoto/batbounce/components"
	"github.com/automoto/batbounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat runs the player's attack dispatcher: aim, melee swings,
// throws and their cooldowns. It runs before locomotion so holding aim
// suppresses movement on the same tick.
func UpdateCombat(ecs *ecs.ECS) {
	dt := tickDt(ecs.World)

	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})

	for _, e := range players {
		player := components.Player.Get(e)
		player.ThrowCooldown.Tick(dt)
		player.MeleeCooldown.Tick(dt)
		player.PogoRefractory.Tick(dt)
		pruneBalls(player)

		if components.Health.Get(e).Defeated {
			continue
		}

		loco := components.Locomotion.Get(e)
		body := components.Body.Get(e)
		in := components.Intent.Get(e)

		updateAim(player, loco, body, *in)

		// Stunned actors cannot start attacks.
		if loco.Locks&components.LockStun != 0 {
			continue
		}
		if in.AttackPressed && !player.MeleeCooldown.Active() {
			player.MeleeCooldown.Set(player.Combat.MeleeCooldown)
			CreateHitbox(ecs, e, player.Aim)
			publishFeedback(ecs.World, components.FeedbackSwing, e, components.Object.Get(e).Center())
		}
		if in.ThrowPressed && !player.ThrowCooldown.Active() && len(player.ActiveBalls) < player.Combat.MaxBalls {
			throwBall(ecs, e, player, loco)
		}
	}
}

// updateAim derives the aim direction. Holding aim locks movement and only
// directional input changes the aim; otherwise the aim follows input and
// falls back to the facing direction.
func updateAim(player *components.PlayerData, loco *components.LocomotionData, body *components.BodyData, in components.IntentData) {
	dz := player.Combat.AimDeadzone
	dir := components.Vector{X: in.MoveX, Y: in.MoveY}
	hasDir := math.Abs(dir.X) > dz || math.Abs(dir.Y) > dz

	SetMoveLock(loco, body, components.LockAim, in.HoldAim)

	if in.HoldAim {
		if hasDir {
			player.Aim = dir.Normalized()
			if math.Abs(dir.X) > dz {
				ManualFlip(loco, dir.X)
			}
		}
		return
	}
	if hasDir {
		player.Aim = dir.Normalized()
	} else {
		player.Aim = components.Vector{X: loco.Facing}
	}
}

func throwBall(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData, loco *components.LocomotionData) {
	c := player.Combat
	player.ThrowCooldown.Set(c.ThrowCooldown)

	if player.Aim.Y < -c.DownAimThreshold && math.Abs(player.Aim.X) < c.PogoMaxAimX {
		DoPogo(ecs.World, e)
	}

	origin := components.Object.Get(e).Center().Add(components.Vector{
		X: c.ThrowLaunchX * loco.Facing,
		Y: c.ThrowLaunchY,
	})
	ball := CreateBall(ecs, e, origin, player.Aim.Scale(c.ThrowSpeed))
	player.ActiveBalls = append(player.ActiveBalls, ball)
	publishFeedback(ecs.World, components.FeedbackThrow, e, origin)
}

// DoPogo launches the attacker upward, keeping horizontal velocity. Calls
// inside the refractory window are ignored.
func DoPogo(w donburi.World, e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Player) {
		return
	}
	player := components.Player.Get(e)
	if player.PogoRefractory.Active() {
		return
	}
	player.PogoRefractory.Set(player.Combat.PogoRefractory)
	body := components.Body.Get(e)
	body.SetVelocity(components.Vector{X: body.Velocity.X, Y: player.Combat.PogoVelocity})
	publishFeedback(w, components.FeedbackPogo, e, components.Object.Get(e).Center())
}

// pruneBalls forgets projectiles that no longer exist.
func pruneBalls(player *components.PlayerData) {
	live := player.ActiveBalls[:0]
	for _, b := range player.ActiveBalls {
		if b.Valid() {
			live = append(live, b)
		}
	}
	player.ActiveBalls = live
}
