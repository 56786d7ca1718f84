package factory

import (
	"math"

	"github.com/automoto/batbounce/archetypes"
	"github.com/automoto/batbounce/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceMargin keeps actors knocked past the far level edges in their own
// cells. Anything further out shares the edge cells.
const spaceMargin = 4

// CreateSpace creates the collision space covering a level of the given
// size in world units.
func CreateSpace(ecs *ecs.ECS, width, height float64, cellSize int) *donburi.Entry {
	if cellSize < 1 {
		cellSize = 1
	}
	space := archetypes.Space.Spawn(ecs)
	w := int(math.Ceil(width)) + spaceMargin
	h := int(math.Ceil(height)) + spaceMargin
	components.Space.Set(space, resolv.NewSpace(w, h, cellSize, cellSize))
	return space
}

// CreateClock creates the fixed-step clock.
func CreateClock(ecs *ecs.ECS, dt float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Dt: dt})
	return clock
}

func CreateCamera(ecs *ecs.ECS, at components.Vector) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: at})
	return camera
}
