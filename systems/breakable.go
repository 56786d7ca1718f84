package systems

import (
	"image/color"
	"math"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BreakableHurtbox accepts damage only from its weak side.
type BreakableHurtbox struct {
	w donburi.World
	e *donburi.Entry
}

func NewBreakableHurtbox(w donburi.World, e *donburi.Entry) *BreakableHurtbox {
	return &BreakableHurtbox{w: w, e: e}
}

func (h *BreakableHurtbox) TakeDamage(ev components.DamageEvent) {
	e := h.e
	if !e.Valid() {
		return
	}
	b := components.Breakable.Get(e)
	if b.Broken {
		return
	}
	pos := components.Object.Get(e).Center()

	if !weakSideHit(b.WeakSide, ev.Source.Sub(pos)) {
		publishFeedback(h.w, components.FeedbackBlocked, e, pos)
		return
	}

	b.HitPoints -= max(ev.Amount, 0)
	if b.HitPoints > 0 {
		shake := components.Shake.Get(e)
		if !shake.Timer.Active() {
			shake.Timer.Set(b.Config.ShakeTime)
		}
		publishFeedback(h.w, components.FeedbackBreakableDamaged, e, pos)
		return
	}

	b.HitPoints = 0
	b.Broken = true
	publishFeedback(h.w, components.FeedbackBroken, e, pos)
	removeEntity(h.w, e)
}

// weakSideHit reports whether an attacker at offset d from the block
// centre strikes the weak side.
func weakSideHit(side cfg.WeakSide, d components.Vector) bool {
	switch side {
	case cfg.SideLeft:
		return d.X < 0
	case cfg.SideRight:
		return d.X > 0
	case cfg.SideTop:
		return d.Y > 0
	case cfg.SideBottom:
		return d.Y < 0
	}
	return true
}

// UpdateShakes runs the shake timers of damaged blocks.
func UpdateShakes(ecs *ecs.ECS) {
	dt := tickDt(ecs.World)
	components.Shake.Each(ecs.World, func(e *donburi.Entry) {
		components.Shake.Get(e).Timer.Tick(dt)
	})
}

func DrawBreakables(ecs *ecs.ECS, screen *ebiten.Image) {
	view := newViewport(ecs, screen)
	tick := 0
	if entry, ok := components.Clock.First(ecs.World); ok {
		tick = components.Clock.Get(entry).Tick
	}
	tags.Breakable.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		shake := components.Shake.Get(e)
		dx, dy := 0.0, 0.0
		if shake.Timer.Active() {
			dx = math.Sin(float64(tick)*2.1) * shake.Amplitude
			dy = math.Cos(float64(tick)*1.7) * shake.Amplitude
		}
		view.fillRect(screen, obj.X+dx, obj.Y+dy, obj.W, obj.H, color.RGBA{160, 110, 60, 255})
	})
}
