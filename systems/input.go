package systems

import (
	"math"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput reads the keyboard and every standard-layout gamepad into input.
// Call once per host frame before building the intent.
func PollInput(input *components.InputData) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.AxisX, input.AxisY = 0, 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.AxisX, input.AxisY = readLeftStick(gamepadIDs)
}

// readLeftStick returns the strongest left-stick deflection past the
// deadzone. Screen-down stick values are flipped so Y is up.
func readLeftStick(gamepads []ebiten.GamepadID) (x, y float64) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(h) > deadzone && math.Abs(h) > math.Abs(x) {
			x = h
		}
		if math.Abs(v) > deadzone && math.Abs(v) > math.Abs(y) {
			y = v
		}
	}
	return x, y
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// IntentFromInput turns polled actions into one tick of intent. Digital
// directions win over the stick.
func IntentFromInput(input *components.InputData) components.IntentData {
	axis := func(neg, pos cfg.ActionID, analog float64) float64 {
		v := 0.0
		if input.Current[neg] {
			v--
		}
		if input.Current[pos] {
			v++
		}
		if v == 0 {
			v = analog
		}
		return v
	}

	return components.IntentData{
		MoveX:         axis(cfg.ActionMoveLeft, cfg.ActionMoveRight, input.AxisX),
		MoveY:         axis(cfg.ActionMoveDown, cfg.ActionMoveUp, input.AxisY),
		JumpPressed:   GetAction(input, cfg.ActionJump).JustPressed,
		JumpReleased:  GetAction(input, cfg.ActionJump).JustReleased,
		DashPressed:   GetAction(input, cfg.ActionDash).JustPressed,
		AttackPressed: GetAction(input, cfg.ActionAttack).JustPressed,
		ThrowPressed:  GetAction(input, cfg.ActionThrow).JustPressed,
		HoldAim:       input.Current[cfg.ActionHoldAim],
	}
}
