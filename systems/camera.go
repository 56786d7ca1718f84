package systems

import (
	"math"

	"github.com/automoto/batbounce/components"
	"github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player, skip camera update
	}
	playerCenter := components.Object.Get(playerEntry).Center()
	body := components.Body.Get(playerEntry)
	loco := components.Locomotion.Get(playerEntry)

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(body.Velocity.X) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := loco.Facing * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerCenter.X + camera.LookAheadX
	targetY := playerCenter.Y

	// Keep the level filling the screen when it is larger than the view.
	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).Data; level != nil {
			halfW := float64(config.C.Width) / config.C.Scale / 2
			halfH := float64(config.C.Height) / config.C.Scale / 2
			targetX = clampView(targetX, halfW, level.Width)
			targetY = clampView(targetY, halfH, level.Height)
		}
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

func clampView(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}
