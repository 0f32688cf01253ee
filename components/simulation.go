package components

import (
	"math/rand"

	"github.com/automoto/playground/geom"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SimulationData is the per-world frame state (singleton component).
type SimulationData struct {
	// TimeScale multiplies the wall clock delta. Recovery tweens it back to 1.
	TimeScale float64
	Recovery  *gween.Tween

	FrameDelta float64 // unscaled seconds per tick
	Delta      float64 // FrameDelta * TimeScale

	ScreenShake geom.Vec2
	ShotTimer   float64
	FireRate    float64

	// Arena is the playable extent in simulation units
	Arena geom.Vec2

	Ticks int
	Quit  bool
	Rand  *rand.Rand
}

var Simulation = donburi.NewComponentType[SimulationData]()
