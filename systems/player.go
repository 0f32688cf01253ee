package systems

import (
	"github.com/automoto/playground/components"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player, keeps it inside the arena, sends it
// through the portals and steps its particle emitter.
func UpdatePlayer(ecs *ecs.ECS) {
	sim := GetOrCreateSimulation(ecs)
	GetOrCreateAudio(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)

		// Player velocity already carries its speed
		body.Pos = body.Pos.Add(body.Vel.Scale(sim.Delta))
		body.Pos = clampToArena(body.Pos, sim.Arena)

		transitPortal(ecs, body)

		emitter := components.Emitter.Get(e)
		emitter.Pos = body.Pos
		emitter.Update(sim.Delta)
	})
}

func clampToArena(p, arena geom.Vec2) geom.Vec2 {
	return geom.V(geom.Clamp(p.X, 0, arena.X), geom.Clamp(p.Y, 0, arena.Y))
}
