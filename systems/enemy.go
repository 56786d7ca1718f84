package systems

import (
	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	probe := probeOf(ecs.World)
	dt := tickDt(ecs.World)

	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})

	for _, e := range enemies {
		if e.Valid() {
			updateEnemyAI(ecs.World, probe, e, dt)
		}
	}
}

func updateEnemyAI(w donburi.World, probe Probe, enemyEntry *donburi.Entry, dt float64) {
	enemy := components.Enemy.Get(enemyEntry)
	body := components.Body.Get(enemyEntry)
	enemyObject := components.Object.Get(enemyEntry)

	enemy.AttackCooldown.Tick(dt)

	// Hit-stun lets the knockback play out untouched.
	if enemy.HitStun.Active() {
		enemy.State = cfg.StateHitStun
		if enemy.HitStun.Tick(dt) {
			enemy.State = cfg.StateChase
		}
		return
	}

	if enemy.Phase != cfg.PhaseNone {
		handleAttackState(w, probe, enemyEntry, enemy, body, dt)
		return
	}

	target := enemy.Target
	if target == nil || !target.Valid() {
		enemy.State = cfg.StatePatrol
		handlePatrolState(probe, enemy, body, enemyObject)
		return
	}

	pos := enemyObject.Center()
	targetPos := components.Object.Get(target).Center()
	distanceToPlayer := pos.DistanceTo(targetPos)
	t := enemy.TypeConfig

	if distanceToPlayer <= t.AttackRange && !enemy.AttackCooldown.Active() {
		startAttack(w, enemyEntry, enemy, body, pos, targetPos)
		return
	}

	// Hysteresis to prevent flapping between patrol and chase
	if distanceToPlayer < t.DetectionRange {
		enemy.State = cfg.StateChase
	} else if distanceToPlayer > t.DetectionRange*cfg.Enemy.HysteresisMultiplier {
		enemy.State = cfg.StatePatrol
	} else if enemy.State != cfg.StateChase {
		enemy.State = cfg.StatePatrol
	}

	if enemy.State == cfg.StateChase {
		handleChaseState(enemy, body, pos, targetPos)
	} else {
		handlePatrolState(probe, enemy, body, enemyObject)
	}
}

// handlePatrolState walks between the patrol bounds, turning at each bound
// or at a wall.
func handlePatrolState(probe Probe, enemy *components.EnemyData, body *components.BodyData, enemyObject *components.ObjectData) {
	x := enemyObject.Center().X
	if enemy.Facing > 0 {
		if x >= enemy.PatrolRight || probe.IsWallAhead(enemyObject.Object, enemy.Facing) {
			enemy.Facing = -1
		}
	} else {
		if x <= enemy.PatrolLeft || probe.IsWallAhead(enemyObject.Object, enemy.Facing) {
			enemy.Facing = 1
		}
	}
	body.Velocity.X = enemy.Facing * enemy.TypeConfig.PatrolSpeed
}

func handleChaseState(enemy *components.EnemyData, body *components.BodyData, pos, targetPos components.Vector) {
	facePlayer(enemy, pos, targetPos)
	body.Velocity.X = enemy.Facing * enemy.TypeConfig.ChaseSpeed
}

func facePlayer(enemy *components.EnemyData, pos, targetPos components.Vector) {
	if s := sign(targetPos.X - pos.X); s != 0 {
		enemy.Facing = s
	}
}

func startAttack(w donburi.World, enemyEntry *donburi.Entry, enemy *components.EnemyData, body *components.BodyData, pos, targetPos components.Vector) {
	enemy.State = cfg.StateAttack
	enemy.Phase = cfg.PhaseWindup
	enemy.PhaseTimer.Set(enemy.TypeConfig.AttackWindup)
	enemy.AttackLanded = false
	facePlayer(enemy, pos, targetPos)
	body.Velocity.X = 0
	publishFeedback(w, components.FeedbackEnemyWindup, enemyEntry, pos)
}

// handleAttackState advances windup, active and recovery. Horizontal
// movement stays suspended for the whole sequence.
func handleAttackState(w donburi.World, probe Probe, enemyEntry *donburi.Entry, enemy *components.EnemyData, body *components.BodyData, dt float64) {
	t := enemy.TypeConfig
	body.Velocity.X = 0
	enemy.State = cfg.StateAttack

	switch enemy.Phase {
	case cfg.PhaseWindup:
		if enemy.PhaseTimer.Tick(dt) {
			enemy.Phase = cfg.PhaseActive
			enemy.PhaseTimer.Set(t.AttackActive)
			enemy.AttackCooldown.Set(t.AttackCooldown)
			applyAttack(probe, enemyEntry, enemy)
		}
	case cfg.PhaseActive:
		applyAttack(probe, enemyEntry, enemy)
		if enemy.PhaseTimer.Tick(dt) {
			enemy.Phase = cfg.PhaseRecovery
			enemy.PhaseTimer.Set(t.AttackRecovery)
		}
	case cfg.PhaseRecovery:
		if enemy.PhaseTimer.Tick(dt) {
			enemy.Phase = cfg.PhaseNone
			enemy.State = cfg.StateChase
		}
	}
}

// applyAttack checks the attack circle for the tracked player. A sequence
// damages at most once.
func applyAttack(probe Probe, enemyEntry *donburi.Entry, enemy *components.EnemyData) {
	if enemy.AttackLanded || enemy.Target == nil || !enemy.Target.Valid() {
		return
	}
	t := enemy.TypeConfig
	pos := components.Object.Get(enemyEntry).Center()
	center := pos.Add(components.Vector{X: enemy.Facing * t.AttackReach})

	for _, hit := range probe.OverlapRegion(CircleRegion(center, t.AttackRadius)) {
		if hit != enemy.Target {
			continue
		}
		enemy.AttackLanded = true
		components.Hurtbox.Get(hit).Target.TakeDamage(components.DamageEvent{
			Amount: t.AttackDamage,
			Source: pos,
			Flags:  components.FromEnemy,
		})
		return
	}
}
