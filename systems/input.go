package systems

import (
	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reused every frame
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateControls in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Only pads with the standard layout have known buttons and axes
	all := ebiten.AppendGamepadIDs(gamepadIDs[:0])
	gamepadIDs = all[:0]
	for _, id := range all {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			gamepadIDs = append(gamepadIDs, id)
		}
	}

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		kb, pad := bindingPressed(binding, gamepadIDs)
		input.Current[actionID] = kb || pad
		keyboardUsed = keyboardUsed || kb
		gamepadUsed = gamepadUsed || pad
	}
	for _, id := range gamepadIDs {
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if applyStick(input, h, v, cfg.Input.AnalogDeadzone) {
			gamepadUsed = true
		}
	}

	// Cursor is reported in layout units, which are arena units
	mx, my := ebiten.CursorPosition()
	input.Mouse = geom.V(float64(mx), float64(my))
	_, input.Wheel = ebiten.Wheel()
	input.CloseRequested = ebiten.IsWindowBeingClosed()

	// Gamepad wins when both were used this frame
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// bindingPressed reports whether any key or mouse button, and separately any
// gamepad button, of binding is held.
func bindingPressed(binding cfg.InputBinding, pads []ebiten.GamepadID) (keyboard, gamepad bool) {
	for _, key := range binding.Keys {
		keyboard = keyboard || ebiten.IsKeyPressed(key)
	}
	for _, btn := range binding.MouseButtons {
		keyboard = keyboard || ebiten.IsMouseButtonPressed(btn)
	}
	for _, id := range pads {
		for _, btn := range binding.StandardGamepadButtons {
			gamepad = gamepad || ebiten.IsStandardGamepadButtonPressed(id, btn)
		}
	}
	return keyboard, gamepad
}

// applyStick maps a left stick reading onto the move actions. It reports
// whether the stick left the deadzone.
func applyStick(input *components.InputData, h, v, deadzone float64) bool {
	used := false
	if h < -deadzone {
		input.Current[cfg.ActionMoveLeft] = true
		used = true
	}
	if h > deadzone {
		input.Current[cfg.ActionMoveRight] = true
		used = true
	}
	if v < -deadzone {
		input.Current[cfg.ActionMoveUp] = true
		used = true
	}
	if v > deadzone {
		input.Current[cfg.ActionMoveDown] = true
		used = true
	}
	return used
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
