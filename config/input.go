package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionPlacePortalA
	ActionPlacePortalB
	ActionClearPortalA
	ActionClearPortalB
	ActionDebugPrint
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp: {
				Keys:                   []ebiten.Key{ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMoveDown: {
				Keys:                   []ebiten.Key{ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionFire: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// Right trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
			},
			ActionPlacePortalA: {Keys: []ebiten.Key{ebiten.KeyQ}},
			ActionPlacePortalB: {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionClearPortalA: {Keys: []ebiten.Key{ebiten.KeyZ}},
			ActionClearPortalB: {Keys: []ebiten.Key{ebiten.KeyX}},
			ActionDebugPrint:   {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionToggleDebug:  {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionQuit:         {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}
