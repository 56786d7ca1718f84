package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/shared/leveldata"
	"github.com/automoto/batbounce/systems"
	"github.com/automoto/batbounce/systems/factory"

	"github.com/automoto/batbounce/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// World is one running level. It has no dependency on the host loop, so
// tests drive it tick by tick through Step.
type World struct {
	ecs    *ecs.ECS
	level  *leveldata.LevelData
	player *donburi.Entry

	defeated bool
	levers   []components.LeverActivatedEvent

	// OnFeedback, when set, receives every presentation hook.
	OnFeedback func(components.FeedbackEvent)
}

// NewWorld assembles a world for level.
func NewWorld(level *leveldata.LevelData) *World {
	w := &World{level: level}
	w.configure()
	return w
}

func (w *World) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Simulation, in tick order
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateGravity)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateHitboxes)
	ecs.AddSystem(systems.UpdateBalls)
	ecs.AddSystem(systems.UpdateContacts)
	ecs.AddSystem(systems.UpdateHealth)
	ecs.AddSystem(systems.UpdateFlashes)
	ecs.AddSystem(systems.UpdateShakes)
	ecs.AddSystem(systems.UpdateLevers)
	ecs.AddSystem(processEvents)

	// Presentation only
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateMessage)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawBreakables)
	ecs.AddRenderer(cfg.Default, systems.DrawLevers)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawBalls)
	ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)

	w.ecs = ecs

	components.Defeated.Subscribe(ecs.World, func(_ donburi.World, _ components.DefeatedEvent) {
		w.defeated = true
	})
	components.LeverActivated.Subscribe(ecs.World, func(_ donburi.World, ev components.LeverActivatedEvent) {
		w.levers = append(w.levers, ev)
		systems.ShowMessage(w.ecs, leverMessage(ev))
	})
	components.Feedback.Subscribe(ecs.World, func(_ donburi.World, ev components.FeedbackEvent) {
		if w.OnFeedback != nil {
			w.OnFeedback(ev)
		}
	})

	w.player = factory.BuildLevel(ecs, w.level)
}

func leverMessage(ev components.LeverActivatedEvent) string {
	side := "bottom"
	if ev.Top {
		side = "top"
	}
	return fmt.Sprintf("lever %s: %s", ev.Channel, side)
}

func processEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

// Step advances the simulation by one fixed tick with the given intent.
func (w *World) Step(intent components.IntentData) {
	if w.player.Valid() {
		components.Intent.SetValue(w.player, intent)
	}
	w.ecs.Update()
}

func (w *World) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	w.ecs.Draw(screen)
}

// Defeated reports whether the player has run out of lives.
func (w *World) Defeated() bool {
	return w.defeated
}

// DrainLeverEvents returns and forgets the lever activations seen so far.
func (w *World) DrainLeverEvents() []components.LeverActivatedEvent {
	out := w.levers
	w.levers = nil
	return out
}

func (w *World) Player() *donburi.Entry {
	return w.player
}

func (w *World) ECS() *ecs.ECS {
	return w.ecs
}

func (w *World) Level() *leveldata.LevelData {
	return w.level
}
