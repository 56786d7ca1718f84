package systems

import (
	"image/color"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LeverHurtbox fires the lever's channel when struck.
type LeverHurtbox struct {
	w donburi.World
	e *donburi.Entry
}

func NewLeverHurtbox(w donburi.World, e *donburi.Entry) *LeverHurtbox {
	return &LeverHurtbox{w: w, e: e}
}

func (h *LeverHurtbox) TakeDamage(ev components.DamageEvent) {
	e := h.e
	if !e.Valid() {
		return
	}
	lever := components.Lever.Get(e)
	if lever.Repeatable {
		if lever.Cooldown.Active() {
			return
		}
		lever.Cooldown.Set(lever.Config.FlashTime)
		components.Flash.Get(e).Timer.Set(lever.Config.FlashTime)
	} else {
		if lever.Activated {
			return
		}
	}
	lever.Activated = true

	publishFeedback(h.w, components.FeedbackLever, e, components.Object.Get(e).Center())
	components.LeverActivated.Publish(h.w, components.LeverActivatedEvent{
		Channel: lever.Channel,
		Top:     lever.Top,
	})
}

// UpdateLevers runs the repeat guard of repeatable levers.
func UpdateLevers(ecs *ecs.ECS) {
	dt := tickDt(ecs.World)
	tags.Lever.Each(ecs.World, func(e *donburi.Entry) {
		components.Lever.Get(e).Cooldown.Tick(dt)
	})
}

func DrawLevers(ecs *ecs.ECS, screen *ebiten.Image) {
	view := newViewport(ecs, screen)
	tags.Lever.Each(ecs.World, func(e *donburi.Entry) {
		lever := components.Lever.Get(e)
		clr := cfg.Gray
		switch {
		case components.Flash.Get(e).Timer.Active():
			clr = color.RGBA{0, 255, 255, 255}
		case lever.Activated && !lever.Repeatable:
			clr = cfg.Green
		}
		view.fillObject(screen, components.Object.Get(e).Object, clr)
	})
}
