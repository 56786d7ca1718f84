package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepTuning restores the package tuning blocks when the test ends.
func keepTuning(t *testing.T) {
	t.Helper()
	sim, physics, loco, combat := Sim, Physics, Locomotion, Combat
	ball, health, enemy, breakable, lever := Ball, PlayerHealth, Enemy, Breakable, Lever
	t.Cleanup(func() {
		Sim, Physics, Locomotion, Combat = sim, physics, loco, combat
		Ball, PlayerHealth, Enemy, Breakable, Lever = ball, health, enemy, breakable, lever
	})
}

func TestApplyTuningMergesPartialSections(t *testing.T) {
	keepTuning(t)
	moveSpeed := Locomotion.MoveSpeed
	gravity := Physics.Gravity

	err := ApplyTuning([]byte(`
locomotion:
  jump_height: 5
  dash_enabled: false
ball:
  damage: 7
`))
	require.NoError(t, err)

	assert.Equal(t, 5.0, Locomotion.JumpHeight)
	assert.False(t, Locomotion.DashEnabled)
	assert.Equal(t, moveSpeed, Locomotion.MoveSpeed, "untouched keys keep their values")
	assert.Equal(t, 7, Ball.Damage)
	assert.Equal(t, gravity, Physics.Gravity, "absent sections keep their values")
}

func TestApplyTuningEnemyTypes(t *testing.T) {
	keepTuning(t)
	original := Enemy.Types["Grunt"]

	err := ApplyTuning([]byte(`
enemy:
  hysteresis_multiplier: 2
  types:
    Grunt:
      health: 80
    Scout:
      chase_speed: 9
`))
	require.NoError(t, err)

	assert.Equal(t, 2.0, Enemy.HysteresisMultiplier)
	assert.Equal(t, 80, Enemy.Types["Grunt"].Health)
	assert.Equal(t, original.ChaseSpeed, Enemy.Types["Grunt"].ChaseSpeed)

	scout, ok := Enemy.Types["Scout"]
	require.True(t, ok)
	assert.Equal(t, "Scout", scout.Name)
	assert.Equal(t, 9.0, scout.ChaseSpeed)
	assert.Equal(t, original.Health, scout.Health, "new types start from the default type")
}

func TestApplyTuningErrorsLeaveValuesUntouched(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "locomotion: [1, 2"},
		{"wrong type", "locomotion:\n  move_speed: fast\n"},
		{"unknown default type", "ball:\n  damage: 99\nenemy:\n  default_type: Ghost\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keepTuning(t)
			loco, ball, enemyDefault := Locomotion, Ball, Enemy.DefaultType

			assert.Error(t, ApplyTuning([]byte(tt.yaml)))

			assert.Equal(t, loco, Locomotion)
			assert.Equal(t, ball, Ball)
			assert.Equal(t, enemyDefault, Enemy.DefaultType)
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadTuningFromFile(t *testing.T) {
	keepTuning(t)
	path := filepath.Join(t.TempDir(), "tune.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player_health:\n  max_lives: 5\n"), 0o644))

	require.NoError(t, LoadTuning(path))
	assert.Equal(t, 5, PlayerHealth.MaxLives)
}

func TestWatchTuningReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tune.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim:\n  tick_rate: 60\n"), 0o644))

	w, err := WatchTuning(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("sim:\n  tick_rate: 30\n"), 0o644))

	select {
	case got := <-w.Events:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no change event for the tuning file")
	}

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "closing twice is harmless")
}
