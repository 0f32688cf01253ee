package systems

import (
	"math"
	"testing"

	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testArena = 240

// newTestWorld builds a world with a collision space and a seeded
// simulation stepping at the normal frame delta.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, testArena, testArena, 16, 16)
	sim := components.Simulation.Get(factory.CreateSimulation(e, geom.V(testArena, testArena), 1))
	sim.Delta = sim.FrameDelta
	return e
}

func addPlayer(e *ecs.ECS, pos geom.Vec2) *donburi.Entry {
	return factory.CreatePlayer(e, pos, GetOrCreateSimulation(e).Rand)
}

type eachable interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

func countEntries(w donburi.World, c eachable) int {
	n := 0
	c.Each(w, func(*donburi.Entry) {
		n++
	})
	return n
}

func queuedSounds(e *ecs.ECS) []cfg.SoundID {
	var ids []cfg.SoundID
	for _, req := range GetOrCreateAudio(e).PendingSFX {
		ids = append(ids, req.ID)
	}
	return ids
}

func hasSound(e *ecs.ECS, id cfg.SoundID) bool {
	for _, got := range queuedSounds(e) {
		if got == id {
			return true
		}
	}
	return false
}

func approxVec(a, b geom.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
