package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func debugEnabled() bool {
	return cfg.Debug.Enabled
}

// DrawDebug outlines every object in the collision space and, when enabled,
// the player's probe boxes.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled() {
		return
	}
	view := newViewport(ecs, screen)

	if space := spaceOf(ecs.World); space != nil {
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvBall) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}
			view.strokeObject(screen, obj, c)
		}
	}

	if cfg.Debug.ShowProbes {
		drawProbes(ecs, screen, view)
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	loco := components.Locomotion.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	ebitenutil.DebugPrint(screen, debugLine(loco, health, body))
}

func drawProbes(ecs *ecs.ECS, screen *ebiten.Image, view viewport) {
	p := cfg.Physics
	probeColor := color.RGBA{255, 0, 255, 160}
	components.Locomotion.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		loco := components.Locomotion.Get(e)

		inset := obj.W * p.ProbeInset / 2
		view.fillRect(screen, obj.X+inset, obj.Y-p.GroundProbeDistance, obj.W-2*inset, p.GroundProbeDistance, probeColor)

		wallInset := obj.H * p.ProbeInset
		x := obj.X + obj.W
		if loco.Facing < 0 {
			x = obj.X - p.WallProbeDistance
		}
		view.fillRect(screen, x, obj.Y+wallInset, p.WallProbeDistance, obj.H-2*wallInset, probeColor)
	})
}

func debugLine(loco *components.LocomotionData, health *components.HealthData, body *components.BodyData) string {
	return fmt.Sprintf("state %s  lives %d/%d  vel (%.1f, %.1f)  dash cd %.2f",
		loco.State, health.Current, health.Max, body.Velocity.X, body.Velocity.Y, loco.DashCooldown.Remaining)
}
