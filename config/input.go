package config

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID is a logical sandbox action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionDash
	ActionAttack
	ActionThrow
	ActionHoldAim
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[string]ActionID{
	"left":     ActionMoveLeft,
	"right":    ActionMoveRight,
	"up":       ActionMoveUp,
	"down":     ActionMoveDown,
	"jump":     ActionJump,
	"dash":     ActionDash,
	"attack":   ActionAttack,
	"throw":    ActionThrow,
	"hold_aim": ActionHoldAim,
	"restart":  ActionRestart,
}

// InputBinding lists the keys and standard-layout gamepad buttons that
// trigger one action.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64 // 0..1
}

var Input InputConfig

func bind(keys []ebiten.Key, buttons ...ebiten.StandardGamepadButton) InputBinding {
	return InputBinding{Keys: keys, StandardGamepadButtons: buttons}
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  bind([]ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, ebiten.StandardGamepadButtonLeftLeft),
			ActionMoveRight: bind([]ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, ebiten.StandardGamepadButtonLeftRight),
			ActionMoveUp:    bind([]ebiten.Key{ebiten.KeyUp, ebiten.KeyW}, ebiten.StandardGamepadButtonLeftTop),
			ActionMoveDown:  bind([]ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, ebiten.StandardGamepadButtonLeftBottom),

			// Face buttons: A jumps, X swings, B throws.
			ActionJump:   bind([]ebiten.Key{ebiten.KeySpace, ebiten.KeyX}, ebiten.StandardGamepadButtonRightBottom),
			ActionAttack: bind([]ebiten.Key{ebiten.KeyZ, ebiten.KeyJ}, ebiten.StandardGamepadButtonRightLeft),
			ActionThrow:  bind([]ebiten.Key{ebiten.KeyV, ebiten.KeyK}, ebiten.StandardGamepadButtonRightRight),

			ActionDash:    bind([]ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyC}, ebiten.StandardGamepadButtonFrontBottomRight),
			ActionHoldAim: bind([]ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyL}, ebiten.StandardGamepadButtonFrontBottomLeft),
			ActionRestart: bind([]ebiten.Key{ebiten.KeyR}, ebiten.StandardGamepadButtonCenterRight),
		},
	}
}

// RebindKeys replaces the keyboard keys of the named actions, e.g.
// {"jump": ["W", "Space"]}. Gamepad buttons are kept. Nothing changes when
// any action or key name is unknown.
func RebindKeys(overrides map[string][]string) error {
	parsed := make(map[ActionID][]ebiten.Key, len(overrides))
	for name, keyNames := range overrides {
		id, ok := actionNames[name]
		if !ok {
			return fmt.Errorf("unknown action %q", name)
		}
		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, kn := range keyNames {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(kn)); err != nil {
				return fmt.Errorf("action %s: %w", name, err)
			}
			keys = append(keys, k)
		}
		parsed[id] = keys
	}

	for id, keys := range parsed {
		b := Input.Bindings[id]
		b.Keys = keys
		Input.Bindings[id] = b
	}
	return nil
}
