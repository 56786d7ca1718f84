package systems

import (
	"image/color"
	"math"

	"github.com/automoto/batbounce/archetypes"
	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ballBlockers are the surfaces a ball bounces off. The player is not one of
// them; the ball only interacts with its owner through pickup.
var ballBlockers = []string{tags.ResolvSolid, tags.ResolvEnemy, tags.ResolvBreakable, tags.ResolvLever}

// CreateBall spawns a thrown ball centred on origin.
func CreateBall(ecs *ecs.ECS, owner *donburi.Entry, origin, velocity components.Vector) *donburi.Entry {
	c := &cfg.Ball
	b := archetypes.Ball.Spawn(ecs)

	obj := resolv.NewObject(origin.X-c.Size/2, origin.Y-c.Size/2, c.Size, c.Size, tags.ResolvBall)
	obj.SetShape(resolv.NewRectangle(0, 0, c.Size, c.Size))
	obj.Data = b
	components.Object.Set(b, &components.ObjectData{
		Object: obj,
	})

	if space := spaceOf(ecs.World); space != nil {
		AddObject(space, obj)
	}

	components.Body.SetValue(b, components.BodyData{
		Velocity: velocity,
	})

	components.Ball.SetValue(b, components.BallData{
		Config: c,
		Owner:  owner,
		State:  cfg.BallFlying,
		Speed:  velocity.Len(),
		Damage: c.Damage,
	})

	return b
}

// UpdateBalls steers, moves and collides every ball, then handles pickup.
func UpdateBalls(ecs *ecs.ECS) {
	probe := probeOf(ecs.World)
	dt := tickDt(ecs.World)

	var balls []*donburi.Entry
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		balls = append(balls, e)
	})

	for _, e := range balls {
		if !e.Valid() {
			continue
		}
		ball := components.Ball.Get(e)
		body := components.Body.Get(e)
		obj := components.Object.Get(e)

		ball.Age += dt
		if ball.State == cfg.BallFlying && !ball.CanHitPlayer && ball.Bounces == 0 && ball.Age > ball.Config.LatePickupTime {
			ball.CanHitPlayer = true
		}

		steerBall(ball, body, obj.Center(), dt)

		if ball.State != cfg.BallStopped {
			hits := moveBall(probe, body, obj.Object, dt)
			for _, o := range hits {
				if o == ball.Contact {
					continue
				}
				ball.Contact = o
				ball.ContactTime = 0
				onBallContact(ecs.World, e, ball, o)
				if !e.Valid() || ball.State == cfg.BallStopped {
					break
				}
			}
			if e.Valid() {
				watchContact(ecs.World, e, ball, obj.Object, dt)
			}
		}
		if !e.Valid() {
			continue
		}
		SyncObject(obj.Object)

		tryPickup(ecs.World, e, ball, obj.Object)
	}
}

// steerBall applies the state's velocity rule before integration.
func steerBall(ball *components.BallData, body *components.BodyData, pos components.Vector, dt float64) {
	c := ball.Config
	switch ball.State {
	case cfg.BallFlying:
		if body.Velocity.Len() > 0 {
			body.Velocity = body.Velocity.Normalized().Scale(ball.Speed)
		}
	case cfg.BallReturning, cfg.BallPogoSeeking:
		if ball.Owner == nil || !ball.Owner.Valid() {
			return
		}
		target := components.Object.Get(ball.Owner).Center()
		if ball.State == cfg.BallPogoSeeking {
			target = target.Add(components.Vector{X: c.PogoOffsetX, Y: c.PogoOffsetY})
			if pos.DistanceTo(target) < c.PogoPrecision {
				ball.State = cfg.BallReturning
				target = components.Object.Get(ball.Owner).Center()
			}
		}
		want := target.Sub(pos).Normalized().Scale(ball.Speed)
		body.Velocity = body.Velocity.Lerp(want, dt*c.HomingSensitivity)
	case cfg.BallStopped:
		body.Velocity = components.Vector{}
	}
}

// moveBall integrates the ball in sub-steps no longer than half its size,
// pushing it out of and reflecting it off every blocker it enters. It
// returns the blockers touched, in detection order.
func moveBall(probe *SpaceProbe, body *components.BodyData, obj *resolv.Object, dt float64) []*resolv.Object {
	dist := body.Velocity.Len() * dt
	steps := int(math.Ceil(dist / (math.Min(obj.W, obj.H) / 2)))
	if steps < 1 {
		steps = 1
	}
	sub := dt / float64(steps)

	var hits []*resolv.Object
	for i := 0; i < steps; i++ {
		obj.X += body.Velocity.X * sub
		obj.Y += body.Velocity.Y * sub
		for _, o := range probe.Query(boundsRegion(obj), obj, ballBlockers...) {
			push, normal, ok := penetration(obj, o)
			if !ok {
				continue
			}
			obj.X += push.X
			obj.Y += push.Y
			if body.Velocity.Dot(normal) < 0 {
				body.Velocity = body.Velocity.Reflect(normal)
			}
			hits = appendUnique(hits, o)
		}
	}
	return hits
}

// onBallContact runs once when the ball starts touching a surface.
func onBallContact(w donburi.World, e *donburi.Entry, ball *components.BallData, o *resolv.Object) {
	pos := components.Object.Get(e).Center()

	if target, ok := o.Data.(*donburi.Entry); ok && target.Valid() && target.HasComponent(components.Hurtbox) {
		components.Hurtbox.Get(target).Target.TakeDamage(components.DamageEvent{
			Amount: ball.Damage,
			Source: pos,
			Flags:  components.FromProjectile,
		})
	}

	ball.Bounces++
	ball.CanHitPlayer = true
	if ball.WasPogoHit {
		ball.State = cfg.BallPogoSeeking
		ball.WasPogoHit = false
	} else {
		ball.State = cfg.BallReturning
	}
	publishFeedback(w, components.FeedbackBallBounce, e, pos)
}

// watchContact stops a ball that stays against the same surface too long.
func watchContact(w donburi.World, e *donburi.Entry, ball *components.BallData, obj *resolv.Object, dt float64) {
	if ball.Contact == nil {
		return
	}
	if !touching(obj, ball.Contact, ball.Config.ContactSlop) {
		ball.Contact = nil
		ball.ContactTime = 0
		return
	}
	ball.ContactTime += dt
	if ball.ContactTime > ball.Config.MaxContactTime {
		StopBall(w, e)
	}
}

// StopBall zeroes the ball's velocity and makes it collectable.
func StopBall(w donburi.World, e *donburi.Entry) {
	ball := components.Ball.Get(e)
	ball.State = cfg.BallStopped
	ball.CanHitPlayer = true
	ball.Contact = nil
	ball.ContactTime = 0
	components.Body.Get(e).SetVelocity(components.Vector{})
	publishFeedback(w, components.FeedbackBallStopped, e, components.Object.Get(e).Center())
}

// tryPickup removes an eligible ball touching its owner.
func tryPickup(w donburi.World, e *donburi.Entry, ball *components.BallData, obj *resolv.Object) {
	if !ball.CanHitPlayer || ball.Owner == nil || !ball.Owner.Valid() {
		return
	}
	ownerObj := components.Object.Get(ball.Owner).Object
	if !touching(obj, ownerObj, ball.Config.ContactSlop) {
		return
	}
	if ball.Owner.HasComponent(components.Player) {
		player := components.Player.Get(ball.Owner)
		for i, b := range player.ActiveBalls {
			if b == e {
				player.ActiveBalls = append(player.ActiveBalls[:i], player.ActiveBalls[i+1:]...)
				break
			}
		}
	}
	publishFeedback(w, components.FeedbackBallCaught, ball.Owner, components.Object.Get(e).Center())
	removeEntity(w, e)
}

// GetHitByBat redirects the ball along dir and amplifies its speed and
// damage. Damage is truncated to an integer on every hit.
func GetHitByBat(w donburi.World, e *donburi.Entry, dir components.Vector) {
	if !e.Valid() || !e.HasComponent(components.Ball) {
		return
	}
	ball := components.Ball.Get(e)
	body := components.Body.Get(e)
	c := ball.Config

	ball.State = cfg.BallFlying
	ball.Speed *= c.SpeedMultiplier
	ball.Damage = int(float64(ball.Damage) * c.DamageMultiplier)
	ball.Bounces = 0
	ball.CanHitPlayer = false
	ball.WasPogoHit = dir.Y < -c.RedirectDownY
	ball.Age = 0
	ball.Contact = nil
	ball.ContactTime = 0

	n := dir.Normalized()
	if n.Len() == 0 {
		n = body.Velocity.Normalized()
	}
	body.SetVelocity(n.Scale(ball.Speed))
	publishFeedback(w, components.FeedbackBallRedirect, e, components.Object.Get(e).Center())
}

func appendUnique(objs []*resolv.Object, o *resolv.Object) []*resolv.Object {
	for _, x := range objs {
		if x == o {
			return objs
		}
	}
	return append(objs, o)
}

func DrawBalls(ecs *ecs.ECS, screen *ebiten.Image) {
	view := newViewport(ecs, screen)
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		clr := color.RGBA{0, 255, 0, 255}
		if components.Ball.Get(e).CanHitPlayer {
			clr = color.RGBA{255, 255, 255, 255}
		}
		view.fillObject(screen, components.Object.Get(e).Object, clr)
	})
}
