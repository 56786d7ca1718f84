package systems

import (
	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the fixed-step clock. It runs first every tick.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	if clock.Dt <= 0 {
		clock.Dt = cfg.Sim.Dt()
	}
	clock.Tick++
	clock.Elapsed += clock.Dt
}

// tickDt returns the step for the current tick.
func tickDt(w donburi.World) float64 {
	if entry, ok := components.Clock.First(w); ok {
		if dt := components.Clock.Get(entry).Dt; dt > 0 {
			return dt
		}
	}
	return cfg.Sim.Dt()
}

// elapsed returns simulated seconds since the world started.
func elapsed(w donburi.World) float64 {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry).Elapsed
	}
	return 0
}

func spaceOf(w donburi.World) *resolv.Space {
	if entry, ok := components.Space.First(w); ok {
		return components.Space.Get(entry)
	}
	return nil
}

// probeOf returns a probe over the world's collision space.
func probeOf(w donburi.World) *SpaceProbe {
	return NewSpaceProbe(spaceOf(w))
}

// removeEntity takes an entity out of the world and its object out of the space.
func removeEntity(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			if space := spaceOf(w); space != nil {
				space.Remove(obj.Object)
			}
		}
	}
	w.Remove(e.Entity())
}
