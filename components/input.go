package components

import (
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

func (m InputMethod) String() string {
	if m == InputGamepad {
		return "gamepad"
	}
	return "keyboard"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the pointer. JustPressed/JustReleased are computed on-demand
// by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Mouse           geom.Vec2 // cursor in arena units
	Wheel           float64   // vertical wheel notches this frame
	CloseRequested  bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
