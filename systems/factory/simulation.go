package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/playground/archetypes"
	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSimulation spawns the frame state singleton for an arena of the
// given extent. A zero seed uses the current time.
func CreateSimulation(ecs *ecs.ECS, arena geom.Vec2, seed int64) *donburi.Entry {
	sim := archetypes.Simulation.Spawn(ecs)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	components.Simulation.SetValue(sim, components.SimulationData{
		TimeScale:  1,
		FrameDelta: 1 / float64(cfg.C.TPS),
		FireRate:   cfg.Sim.FireRate,
		Arena:      arena,
		Rand:       rand.New(rand.NewSource(seed)),
	})
	return sim
}
