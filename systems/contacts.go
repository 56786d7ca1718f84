package systems

import (
	"github.com/automoto/batbounce/components"
	"github.com/automoto/batbounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts delivers touch damage from enemies and hazards. Both are
// edge triggered: damage lands when contact begins, never while it lasts.
func UpdateContacts(ecs *ecs.ECS) {
	updateEnemyTouch(ecs)
	updateHazards(ecs)
}

func updateEnemyTouch(ecs *ecs.ECS) {
	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})

	for _, e := range enemies {
		if !e.Valid() {
			continue
		}
		enemy := components.Enemy.Get(e)
		target := enemy.Target
		if target == nil || !target.Valid() {
			enemy.TouchingTarget = false
			continue
		}
		enemyObject := components.Object.Get(e).Object
		touchingNow := boundsRegion(enemyObject).Overlaps(components.Object.Get(target).Object)
		if touchingNow && !enemy.TouchingTarget {
			components.Hurtbox.Get(target).Target.TakeDamage(components.DamageEvent{
				Amount: enemy.TypeConfig.BodyDamage,
				Source: components.Object.Get(e).Center(),
				Flags:  components.FromEnemy,
			})
		}
		enemy.TouchingTarget = touchingNow
	}
}

type hazardHit struct {
	hazard, player *donburi.Entry
}

func updateHazards(ecs *ecs.ECS) {
	probe := probeOf(ecs.World)

	touched := make(map[*donburi.Entry]bool)
	var fresh []hazardHit
	tags.Player.Each(ecs.World, func(player *donburi.Entry) {
		playerObject := components.Object.Get(player).Object
		for _, o := range probe.Query(boundsRegion(playerObject), playerObject, tags.ResolvHazard) {
			hazardEntry, ok := o.Data.(*donburi.Entry)
			if !ok || !hazardEntry.Valid() || touched[hazardEntry] {
				continue
			}
			touched[hazardEntry] = true
			if !components.Hazard.Get(hazardEntry).Touching {
				fresh = append(fresh, hazardHit{hazard: hazardEntry, player: player})
			}
		}
	})

	for _, hit := range fresh {
		hazardEntry, player := hit.hazard, hit.player
		if !player.Valid() {
			continue
		}
		components.Hurtbox.Get(player).Target.TakeDamage(components.DamageEvent{
			Amount: components.Hazard.Get(hazardEntry).Damage,
			Source: components.Object.Get(hazardEntry).Center(),
			Flags:  components.FromHazard,
		})
	}

	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		components.Hazard.Get(e).Touching = touched[e]
	})
}
