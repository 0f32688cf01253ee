package components

import "github.com/yohamta/donburi"

// LifetimeData counts down the seconds an entity has left.
type LifetimeData struct {
	Life float64
	Max  float64
}

// DragData slows a body by Rate of its speed per second.
type DragData struct {
	Rate float64
}

// SpinData drives the tumbling of a shell casing as it slows down.
type SpinData struct {
	Rate      float64
	BaseSpeed float64
}

var Lifetime = donburi.NewComponentType[LifetimeData]()
var Drag = donburi.NewComponentType[DragData]()
var Spin = donburi.NewComponentType[SpinData]()
