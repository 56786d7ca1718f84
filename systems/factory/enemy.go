package factory

import (
	"github.com/automoto/batbounce/archetypes"
	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/systems"
	"github.com/automoto/batbounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a ground enemy with its feet centred on (x, y). target
// is the player it hunts; nil leaves it patrolling. A patrolDistance of zero
// uses the type's default.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string, patrolDistance float64, target *donburi.Entry) *donburi.Entry {
	// Unknown names fall back to the default type
	enemyType := cfg.EnemyType(enemyTypeName)

	enemy := archetypes.Enemy.Spawn(ecs)
	w, h := enemyType.Width, enemyType.Height

	obj := resolv.NewObject(x-w/2, y, w, h)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	if patrolDistance <= 0 {
		patrolDistance = enemyType.PatrolDistance
	}
	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:    enemyType.Name,
		TypeConfig:  enemyType,
		Target:      target,
		State:       cfg.StatePatrol,
		Facing:      -1, // Start facing left
		Spawn:       components.Vector{X: x, Y: y + h/2},
		PatrolLeft:  x - patrolDistance,
		PatrolRight: x + patrolDistance,
	})
	components.Body.SetValue(enemy, components.BodyData{
		GravityEnabled: true,
		GravityScale:   1,
		Mass:           1,
		Solid:          true,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
		Visible: true,
	})
	components.Hurtbox.SetValue(enemy, components.HurtboxData{
		Target: systems.NewEnemyHurtbox(ecs.World, enemy),
	})

	return enemy
}
