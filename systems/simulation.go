package systems

import (
	"math"

	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/systems/factory"
	"github.com/automoto/playground/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock. It recovers the time scale while the
// player lives, decays screen shake and derives the scaled delta every other
// gameplay system steps with.
func UpdateClock(ecs *ecs.ECS) {
	sim := GetOrCreateSimulation(ecs)

	if playerAlive(ecs) {
		recoverTimeScale(sim)
	}

	sim.ScreenShake = sim.ScreenShake.Scale(cfg.Sim.ShakeDecay)
	sim.Delta = sim.FrameDelta * sim.TimeScale
	sim.ShotTimer = math.Max(0, sim.ShotTimer-sim.Delta)

	if entry, ok := tags.Player.First(ecs.World); ok {
		components.Player.Get(entry).WalkTimer += sim.Delta
	}

	sim.Ticks++
}

// recoverTimeScale eases the time scale linearly back to 1 at RecoveryRate
// per second of wall time.
func recoverTimeScale(sim *components.SimulationData) {
	if sim.TimeScale >= 1 {
		sim.TimeScale = 1
		sim.Recovery = nil
		return
	}

	if sim.Recovery == nil {
		duration := (1 - sim.TimeScale) / cfg.Sim.RecoveryRate
		sim.Recovery = gween.New(float32(sim.TimeScale), 1, float32(duration), ease.Linear)
	}

	scale, done := sim.Recovery.Update(float32(sim.FrameDelta))
	sim.TimeScale = float64(scale)
	if done {
		sim.TimeScale = 1
		sim.Recovery = nil
	}
}

// SetTimeScale sets the simulation speed. Recovery restarts from the new value.
func SetTimeScale(ecs *ecs.ECS, scale float64) {
	sim := GetOrCreateSimulation(ecs)
	sim.TimeScale = scale
	sim.Recovery = nil
}

// SetScreenScale changes the zoom and with it the arena extent.
func SetScreenScale(ecs *ecs.ECS, scale float64) {
	settings := GetOrCreateSettings(ecs)
	settings.ScreenScale = geom.Clamp(scale, cfg.C.MinScale, cfg.C.MaxScale)
	GetOrCreateSimulation(ecs).Arena = ArenaFor(settings.ScreenScale)
}

// ArenaFor returns the arena extent for a screen scale, truncated to whole
// pixels.
func ArenaFor(scale float64) geom.Vec2 {
	return geom.V(
		math.Floor(float64(cfg.C.Width)/scale),
		math.Floor(float64(cfg.C.Height)/scale),
	)
}

func playerAlive(ecs *ecs.ECS) bool {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	return components.Health.Get(entry).Current > 0
}

// QuitRequested reports whether the loop should stop after this frame.
func QuitRequested(ecs *ecs.ECS) bool {
	entry, ok := components.Simulation.First(ecs.World)
	return ok && components.Simulation.Get(entry).Quit
}

// GetOrCreateSimulation returns the singleton Simulation component for this ECS, creating it if needed
func GetOrCreateSimulation(ecs *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		arena := ArenaFor(GetOrCreateSettings(ecs).ScreenScale)
		entry = factory.CreateSimulation(ecs, arena, cfg.Sim.Seed)
	}
	return components.Simulation.Get(entry)
}
