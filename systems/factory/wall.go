package factory

import (
	"github.com/automoto/batbounce/archetypes"
	"github.com/automoto/batbounce/components"
	"github.com/automoto/batbounce/systems"
	"github.com/automoto/batbounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a static solid. (x, y) is the bottom-left corner.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

// CreateHazard adds damaging terrain. Hazards do not block movement.
func CreateHazard(ecs *ecs.ECS, x, y, w, h float64, damage int) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hazard

	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	if damage <= 0 {
		damage = 1
	}
	components.Hazard.SetValue(hazard, components.HazardData{Damage: damage})
	addToSpace(ecs, obj)

	return hazard
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		systems.AddObject(components.Space.Get(spaceEntry), obj)
	}
}
