package scenes

import (
	"testing"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/shared/leveldata"
	"github.com/automoto/batbounce/systems"
	"github.com/automoto/batbounce/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatLevel is a 40x12 room with a floor and the player standing at x=5.
func flatLevel() *leveldata.LevelData {
	return &leveldata.LevelData{
		Name:        "flat",
		Width:       40,
		Height:      12,
		Solids:      []leveldata.Rect{{X: 0, Y: 0, W: 40, H: 1}},
		PlayerSpawn: leveldata.Point{X: 5, Y: 1},
	}
}

func stepN(w *World, n int, intent components.IntentData) {
	for i := 0; i < n; i++ {
		w.Step(intent)
	}
}

func hitPlayer(w *World, amount int, source components.Vector, flags components.DamageFlags) {
	components.Hurtbox.Get(w.Player()).Target.TakeDamage(components.DamageEvent{
		Amount: amount,
		Source: source,
		Flags:  flags,
	})
}

func playerCenter(w *World) components.Vector {
	return components.Object.Get(w.Player()).Center()
}

func TestPlayerRestsOnFloor(t *testing.T) {
	w := NewWorld(flatLevel())
	stepN(w, 30, components.IntentData{})

	loco := components.Locomotion.Get(w.Player())
	assert.True(t, loco.Grounded)
	assert.Equal(t, cfg.Grounded, loco.State)
	assert.InDelta(t, 1.0, components.Object.Get(w.Player()).Y, 1e-9)
}

func TestPlayerHitStunAndInvulnerabilityWindows(t *testing.T) {
	w := NewWorld(flatLevel())
	stepN(w, 5, components.IntentData{})
	p := w.Player()
	health := components.Health.Get(p)
	loco := components.Locomotion.Get(p)

	hitPlayer(w, 1, playerCenter(w).Add(components.Vector{X: -1}), components.FromEnemy)

	c := health.Config
	assert.Equal(t, 2, health.Current)
	assert.Equal(t, components.Vector{X: c.HorizontalRatio * c.KnockbackForce, Y: c.VerticalRatio * c.KnockbackForce},
		components.Body.Get(p).Velocity)
	assert.False(t, loco.CanMove())
	assert.False(t, health.Visible)

	// Hits during the window are ignored.
	hitPlayer(w, 1, playerCenter(w), components.FromEnemy)
	assert.Equal(t, 2, health.Current)

	stepN(w, 35, components.IntentData{})
	assert.False(t, loco.CanMove(), "stun lasts 36 ticks")
	w.Step(components.IntentData{})
	assert.True(t, loco.CanMove())

	stepN(w, 83, components.IntentData{})
	assert.True(t, health.IsInvulnerable(), "invulnerability lasts 120 ticks")
	w.Step(components.IntentData{})
	assert.False(t, health.IsInvulnerable())
	assert.True(t, health.Visible)
}

func TestFlickerTogglesWhileInvulnerable(t *testing.T) {
	w := NewWorld(flatLevel())
	var flickers []bool
	w.OnFeedback = func(ev components.FeedbackEvent) {
		if ev.Kind == components.FeedbackFlicker {
			flickers = append(flickers, ev.Visible)
		}
	}
	health := components.Health.Get(w.Player())

	hitPlayer(w, 1, playerCenter(w), components.FromEnemy)
	stepN(w, 6, components.IntentData{})
	assert.True(t, health.Visible)
	stepN(w, 6, components.IntentData{})
	assert.False(t, health.Visible)

	stepN(w, 120, components.IntentData{})
	assert.True(t, health.Visible)
	require.NotEmpty(t, flickers)
	assert.True(t, flickers[len(flickers)-1], "the window ends visible")
}

func TestKnockbackFromTheRightPushesLeft(t *testing.T) {
	w := NewWorld(flatLevel())
	hitPlayer(w, 1, playerCenter(w).Add(components.Vector{X: 2}), components.FromProjectile)

	assert.Less(t, components.Body.Get(w.Player()).Velocity.X, 0.0)
}

func TestDefeatAfterLastLife(t *testing.T) {
	w := NewWorld(flatLevel())
	p := w.Player()
	health := components.Health.Get(p)

	for i := 0; i < cfg.PlayerHealth.MaxLives; i++ {
		health.Invulnerable.Clear()
		hitPlayer(w, 1, playerCenter(w), components.FromEnemy)
	}

	assert.True(t, health.Defeated)
	assert.Zero(t, health.Current)
	assert.False(t, w.Defeated(), "the signal is delivered on the next tick")

	w.Step(components.IntentData{})
	assert.True(t, w.Defeated())
}

func TestHazardTeleportsToSafePosition(t *testing.T) {
	level := flatLevel()
	level.Hazards = []leveldata.HazardSpawn{{Rect: leveldata.Rect{X: 10, Y: 1, W: 3, H: 0.5}, Damage: 1}}
	w := NewWorld(level)
	p := w.Player()
	stepN(w, 5, components.IntentData{})
	spawn := components.SafePosition.Get(p).Safe

	obj := components.Object.Get(p)
	obj.SetCenter(components.Vector{X: 11.5, Y: 1.9})
	systems.SyncObject(obj.Object)

	w.Step(components.IntentData{})
	health := components.Health.Get(p)
	loco := components.Locomotion.Get(p)
	require.Equal(t, 2, health.Current)
	require.True(t, health.HazardTeleport.Active())
	assert.False(t, health.Stun.Active())

	stepN(w, 28, components.IntentData{})
	assert.True(t, health.HazardTeleport.Active())

	w.Step(components.IntentData{})
	assert.InDelta(t, spawn.X, playerCenter(w).X, 1e-9)
	assert.InDelta(t, spawn.Y, playerCenter(w).Y, 1e-9)
	assert.Equal(t, components.Vector{}, components.Body.Get(p).Velocity)
	assert.False(t, loco.CanMove())

	stepN(w, 5, components.IntentData{})
	assert.True(t, loco.CanMove())
	assert.Equal(t, 2, health.Current)
}

func TestEnemyTouchDamageIsEdgeTriggered(t *testing.T) {
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{Point: leveldata.Point{X: 5, Y: 1}, Type: "Grunt"}}
	w := NewWorld(level)
	p := w.Player()
	health := components.Health.Get(p)

	w.Step(components.IntentData{})
	require.Equal(t, 2, health.Current)

	enemyEntry, ok := tags.Enemy.First(w.ECS().World)
	require.True(t, ok)
	enemy := components.Enemy.Get(enemyEntry)
	assert.True(t, enemy.TouchingTarget)

	// Still overlapping and no longer protected: no new damage.
	for i := 0; i < 5; i++ {
		health.Invulnerable.Clear()
		obj := components.Object.Get(p)
		obj.SetCenter(components.Vector{X: components.Object.Get(enemyEntry).Center().X, Y: obj.Center().Y})
		systems.SyncObject(obj.Object)
		components.Body.Get(p).SetVelocity(components.Vector{})
		w.Step(components.IntentData{})
	}
	assert.Equal(t, 2, health.Current)
}

func TestEnemyAttackLandsOncePerSequence(t *testing.T) {
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{Point: leveldata.Point{X: 6.2, Y: 1}, Type: "Grunt"}}
	w := NewWorld(level)
	health := components.Health.Get(w.Player())
	enemyEntry, ok := tags.Enemy.First(w.ECS().World)
	require.True(t, ok)
	enemy := components.Enemy.Get(enemyEntry)

	w.Step(components.IntentData{})
	assert.Equal(t, cfg.StateAttack, enemy.State)
	assert.Equal(t, cfg.PhaseWindup, enemy.Phase)
	assert.Equal(t, -1.0, enemy.Facing)

	stepN(w, 25, components.IntentData{})
	assert.Equal(t, 3, health.Current, "nothing lands during the windup")

	stepN(w, 15, components.IntentData{})
	assert.True(t, enemy.AttackLanded)
	assert.Equal(t, 3-enemy.TypeConfig.AttackDamage, health.Current)
	assert.Zero(t, components.Body.Get(enemyEntry).Velocity.X)
}

func TestEnemyChaseHysteresis(t *testing.T) {
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{Point: leveldata.Point{X: 10, Y: 1}, Type: "Grunt"}}
	w := NewWorld(level)
	enemyEntry, _ := tags.Enemy.First(w.ECS().World)
	enemy := components.Enemy.Get(enemyEntry)
	detect := enemy.TypeConfig.DetectionRange

	moveEnemy := func(x float64) {
		obj := components.Object.Get(enemyEntry)
		obj.SetCenter(components.Vector{X: x, Y: obj.Center().Y})
		systems.SyncObject(obj.Object)
	}
	px := playerCenter(w).X

	moveEnemy(px + detect - 0.5)
	w.Step(components.IntentData{})
	require.Equal(t, cfg.StateChase, enemy.State)

	// Between the detection range and its hysteresis band: keep chasing.
	moveEnemy(px + detect*1.2)
	w.Step(components.IntentData{})
	assert.Equal(t, cfg.StateChase, enemy.State)

	moveEnemy(px + detect*cfg.Enemy.HysteresisMultiplier + 1)
	w.Step(components.IntentData{})
	assert.Equal(t, cfg.StatePatrol, enemy.State)

	// Re-entering the band from outside does not start a chase.
	moveEnemy(px + detect*1.2)
	w.Step(components.IntentData{})
	assert.Equal(t, cfg.StatePatrol, enemy.State)
}

func TestMeleeDamagesAndStunsEnemy(t *testing.T) {
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{Point: leveldata.Point{X: 6.5, Y: 1}, Type: "Grunt"}}
	w := NewWorld(level)
	enemyEntry, _ := tags.Enemy.First(w.ECS().World)

	w.Step(components.IntentData{AttackPressed: true})

	require.True(t, enemyEntry.Valid())
	health := components.Health.Get(enemyEntry)
	enemy := components.Enemy.Get(enemyEntry)
	assert.Equal(t, enemy.TypeConfig.Health-cfg.Combat.MeleeDamage, health.Current)
	assert.True(t, enemy.HitStun.Active())
	assert.Equal(t, cfg.PhaseNone, enemy.Phase, "the hit cancels the windup")
	assert.True(t, components.Flash.Get(enemyEntry).Timer.Active())
	assert.Greater(t, components.Body.Get(enemyEntry).Velocity.X, 0.0)

	// The same swing never hits twice.
	stepN(w, 5, components.IntentData{})
	assert.Equal(t, enemy.TypeConfig.Health-cfg.Combat.MeleeDamage, health.Current)
}

func TestMeleeKillsEnemy(t *testing.T) {
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{Point: leveldata.Point{X: 6.5, Y: 1}, Type: "Grunt"}}
	w := NewWorld(level)
	enemyEntry, _ := tags.Enemy.First(w.ECS().World)
	components.Health.Get(enemyEntry).Current = 1

	w.Step(components.IntentData{AttackPressed: true})

	assert.False(t, enemyEntry.Valid())
	_, ok := tags.Enemy.First(w.ECS().World)
	assert.False(t, ok)
}

func TestHitboxExpires(t *testing.T) {
	w := NewWorld(flatLevel())
	player := components.Player.Get(w.Player())

	w.Step(components.IntentData{AttackPressed: true})
	require.NotNil(t, player.ActiveHitbox)

	stepN(w, 12, components.IntentData{})
	assert.Nil(t, player.ActiveHitbox)
	_, ok := tags.Hitbox.First(w.ECS().World)
	assert.False(t, ok)
}

func TestThrowSpawnsOneBall(t *testing.T) {
	w := NewWorld(flatLevel())
	player := components.Player.Get(w.Player())

	w.Step(components.IntentData{ThrowPressed: true})
	require.Len(t, player.ActiveBalls, 1)
	ball := components.Ball.Get(player.ActiveBalls[0])
	assert.Equal(t, cfg.BallFlying, ball.State)
	assert.InDelta(t, cfg.Combat.ThrowSpeed, components.Body.Get(player.ActiveBalls[0]).Velocity.X, 1e-9)

	player.ThrowCooldown.Clear()
	w.Step(components.IntentData{ThrowPressed: true})
	assert.Len(t, player.ActiveBalls, 1, "only one ball may be live")
}

func TestThrownBallReturnsToOwner(t *testing.T) {
	level := flatLevel()
	level.Solids = append(level.Solids, leveldata.Rect{X: 12, Y: 1, W: 1, H: 6})
	w := NewWorld(level)
	player := components.Player.Get(w.Player())

	var caught bool
	w.OnFeedback = func(ev components.FeedbackEvent) {
		if ev.Kind == components.FeedbackBallCaught {
			caught = true
		}
	}

	w.Step(components.IntentData{ThrowPressed: true})
	require.Len(t, player.ActiveBalls, 1)
	for i := 0; i < 300 && !caught; i++ {
		w.Step(components.IntentData{})
	}

	assert.True(t, caught)
	assert.Empty(t, player.ActiveBalls)
	_, ok := tags.Ball.First(w.ECS().World)
	assert.False(t, ok)
}

func TestDownwardThrowPogos(t *testing.T) {
	w := NewWorld(flatLevel())
	stepN(w, 3, components.IntentData{})

	w.Step(components.IntentData{ThrowPressed: true, MoveY: -1})

	assert.Equal(t, cfg.Combat.PogoVelocity, components.Body.Get(w.Player()).Velocity.Y)
}

func TestPogoRefractory(t *testing.T) {
	w := NewWorld(flatLevel())
	p := w.Player()
	body := components.Body.Get(p)

	systems.DoPogo(w.ECS().World, p)
	require.Equal(t, cfg.Combat.PogoVelocity, body.Velocity.Y)

	body.SetVelocity(components.Vector{})
	systems.DoPogo(w.ECS().World, p)
	assert.Zero(t, body.Velocity.Y)

	stepN(w, 7, components.IntentData{})
	body.SetVelocity(components.Vector{})
	systems.DoPogo(w.ECS().World, p)
	assert.Equal(t, cfg.Combat.PogoVelocity, body.Velocity.Y)
}

func TestHoldAimLocksMovement(t *testing.T) {
	w := NewWorld(flatLevel())
	stepN(w, 3, components.IntentData{})
	p := w.Player()

	w.Step(components.IntentData{HoldAim: true, MoveX: -1, MoveY: 1})

	loco := components.Locomotion.Get(p)
	player := components.Player.Get(p)
	assert.Zero(t, components.Body.Get(p).Velocity.X)
	assert.Equal(t, -1.0, loco.Facing)
	assert.InDelta(t, -1/1.4142135623730951, player.Aim.X, 1e-9)

	w.Step(components.IntentData{MoveX: 1})
	assert.True(t, loco.CanMove())
	assert.Equal(t, cfg.Locomotion.MoveSpeed, components.Body.Get(p).Velocity.X)
}

func TestHoldAimStopsRunningPlayer(t *testing.T) {
	w := NewWorld(flatLevel())
	stepN(w, 3, components.IntentData{})
	p := w.Player()
	obj := components.Object.Get(p)

	stepN(w, 10, components.IntentData{MoveX: 1})
	require.Equal(t, cfg.Locomotion.MoveSpeed, components.Body.Get(p).Velocity.X)

	w.Step(components.IntentData{HoldAim: true, MoveX: 1})
	x := obj.X
	assert.Zero(t, components.Body.Get(p).Velocity.X)

	stepN(w, 29, components.IntentData{HoldAim: true, MoveX: 1})
	assert.InDelta(t, x, obj.X, 1e-9)
	assert.Zero(t, components.Body.Get(p).Velocity.X)
}

func TestDownwardSwingPogoesOffEnemy(t *testing.T) {
	level := flatLevel()
	level.Enemies = []leveldata.EnemySpawn{{Point: leveldata.Point{X: 5, Y: 1}, Type: "Grunt"}}
	w := NewWorld(level)
	p := w.Player()
	enemyEntry, ok := tags.Enemy.First(w.ECS().World)
	require.True(t, ok)
	enemyObj := components.Object.Get(enemyEntry)

	// Hover just above the enemy's head, inside the reach of a downward swing.
	obj := components.Object.Get(p)
	obj.X = enemyObj.Center().X - obj.W/2
	obj.Y = enemyObj.Y + enemyObj.H + 0.2
	systems.SyncObject(obj.Object)

	w.Step(components.IntentData{AttackPressed: true, MoveY: -1})

	require.True(t, enemyEntry.Valid())
	enemy := components.Enemy.Get(enemyEntry)
	assert.Equal(t, enemy.TypeConfig.Health-cfg.Combat.MeleeDamage, components.Health.Get(enemyEntry).Current)
	assert.Equal(t, cfg.Combat.PogoVelocity, components.Body.Get(p).Velocity.Y)
	assert.True(t, components.Player.Get(p).PogoRefractory.Active())
	assert.Equal(t, 3, components.Health.Get(p).Current, "the hover gap keeps the player clear of contact damage")
}

func TestBreakableWeakSide(t *testing.T) {
	tests := []struct {
		name     string
		weakSide string
		wantHP   int
	}{
		{"weak side faces the attacker", "left", 20},
		{"any side", "", 20},
		{"struck from the armoured side", "right", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := flatLevel()
			level.Breakables = []leveldata.BreakableSpawn{{
				Rect:      leveldata.Rect{X: 6.5, Y: 1, W: 1, H: 2},
				HitPoints: 30,
				WeakSide:  tt.weakSide,
			}}
			w := NewWorld(level)

			w.Step(components.IntentData{AttackPressed: true})

			blockEntry, ok := tags.Breakable.First(w.ECS().World)
			require.True(t, ok)
			assert.Equal(t, tt.wantHP, components.Breakable.Get(blockEntry).HitPoints)
			assert.Equal(t, tt.wantHP < 30, components.Shake.Get(blockEntry).Timer.Active())
		})
	}
}

func TestBreakableBreaks(t *testing.T) {
	level := flatLevel()
	level.Breakables = []leveldata.BreakableSpawn{{Rect: leveldata.Rect{X: 6.5, Y: 1, W: 1, H: 2}, HitPoints: 3}}
	w := NewWorld(level)
	var broken bool
	w.OnFeedback = func(ev components.FeedbackEvent) {
		if ev.Kind == components.FeedbackBroken {
			broken = true
		}
	}

	w.Step(components.IntentData{AttackPressed: true})

	_, ok := tags.Breakable.First(w.ECS().World)
	assert.False(t, ok)
	assert.True(t, broken)
}

func TestLeverActivation(t *testing.T) {
	tests := []struct {
		name       string
		repeatable bool
		wantFires  int
	}{
		{"one-shot", false, 1},
		{"repeatable", true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := flatLevel()
			level.Levers = []leveldata.LeverSpawn{{
				Rect:       leveldata.Rect{X: 6.5, Y: 1, W: 0.5, H: 1},
				Channel:    "door",
				Top:        true,
				Repeatable: tt.repeatable,
			}}
			w := NewWorld(level)

			w.Step(components.IntentData{AttackPressed: true})
			// A second swing inside the flash window is ignored.
			stepN(w, 20, components.IntentData{})
			w.Step(components.IntentData{AttackPressed: true})
			stepN(w, 40, components.IntentData{})
			w.Step(components.IntentData{AttackPressed: true})
			w.Step(components.IntentData{})

			fired := w.DrainLeverEvents()
			require.Len(t, fired, tt.wantFires)
			assert.Equal(t, components.LeverActivatedEvent{Channel: "door", Top: true}, fired[0])
			assert.Empty(t, w.DrainLeverEvents())
		})
	}
}

func TestDefaultRoomRuns(t *testing.T) {
	w := NewWorld(leveldata.DefaultRoom())
	stepN(w, 120, components.IntentData{MoveX: 1})

	assert.True(t, w.Player().Valid())
	assert.False(t, w.Defeated())
}

func TestLeverShowsBanner(t *testing.T) {
	level := flatLevel()
	level.Levers = []leveldata.LeverSpawn{{
		Rect:    leveldata.Rect{X: 6.5, Y: 1, W: 0.5, H: 1},
		Channel: "door",
	}}
	w := NewWorld(level)

	w.Step(components.IntentData{AttackPressed: true})
	w.Step(components.IntentData{})

	entry, ok := components.Message.First(w.ECS().World)
	require.True(t, ok)
	msg := components.Message.Get(entry)
	assert.Equal(t, "lever door: bottom", msg.Text)

	stepN(w, 130, components.IntentData{})
	assert.Empty(t, msg.Text)
}
