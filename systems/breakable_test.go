package systems

import (
	"testing"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestLeverUsesItsOwnFlashTime(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Lever, components.Flash, components.Object))
	components.Object.Set(e, &components.ObjectData{Object: resolv.NewObject(0, 0, 1, 1)})
	c := cfg.Lever
	c.FlashTime = 0.05
	components.Lever.SetValue(e, components.LeverData{Config: &c, Channel: "door", Repeatable: true})
	lever := components.Lever.Get(e)
	hurtbox := NewLeverHurtbox(w, e)

	hurtbox.TakeDamage(components.DamageEvent{Amount: 1})
	require.True(t, lever.Activated)
	assert.Equal(t, 0.05, lever.Cooldown.Remaining)
	assert.Equal(t, 0.05, components.Flash.Get(e).Timer.Remaining)

	for i := 0; i < 3; i++ {
		lever.Cooldown.Tick(testDt)
	}
	assert.False(t, lever.Cooldown.Active(), "shorter than the shared default")
	assert.Equal(t, 0.5, cfg.Lever.FlashTime)
}

func TestBreakableUsesItsOwnShakeTime(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Breakable, components.Shake, components.Object))
	components.Object.Set(e, &components.ObjectData{Object: resolv.NewObject(0, 0, 1, 1)})
	c := cfg.Breakable
	c.ShakeTime = 1
	components.Breakable.SetValue(e, components.BreakableData{Config: &c, HitPoints: 3})

	NewBreakableHurtbox(w, e).TakeDamage(components.DamageEvent{Amount: 1, Source: components.Vector{X: -2}})

	assert.Equal(t, 2, components.Breakable.Get(e).HitPoints)
	assert.Equal(t, 1.0, components.Shake.Get(e).Timer.Remaining)
}
