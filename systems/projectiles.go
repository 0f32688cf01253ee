package systems

import (
	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles steps bullets and shells: movement, drag, expiry,
// ricochets off the arena edges and portal transit.
func UpdateProjectiles(ecs *ecs.ECS) {
	sim := GetOrCreateSimulation(ecs)
	GetOrCreateAudio(ecs)

	var toRemove []*donburi.Entry
	components.Lifetime.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		life := components.Lifetime.Get(e)

		body.Pos = body.Pos.Add(body.Vel.Scale(body.Speed * sim.Delta))
		life.Life -= sim.Delta
		if e.HasComponent(components.Drag) {
			body.Speed *= 1 - sim.Delta*components.Drag.Get(e).Rate
		}

		if life.Life < 0 {
			toRemove = append(toRemove, e)
			return
		}

		if bounceOffArena(body, sim.Arena) {
			playPositional(ecs, cfg.SoundRicochet, body.Pos)
		}

		transitPortal(ecs, body)
	})

	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}

// bounceOffArena clamps a body that left the arena back onto the edge and
// inverts the velocity component that carried it out.
func bounceOffArena(body *components.BodyData, arena geom.Vec2) bool {
	bounced := false
	if body.Pos.X < 0 || body.Pos.X > arena.X {
		body.Pos.X = geom.Clamp(body.Pos.X, 0, arena.X)
		body.Vel.X = -body.Vel.X
		bounced = true
	}
	if body.Pos.Y < 0 || body.Pos.Y > arena.Y {
		body.Pos.Y = geom.Clamp(body.Pos.Y, 0, arena.Y)
		body.Vel.Y = -body.Vel.Y
		bounced = true
	}
	return bounced
}

// playPositional queues a sound whose volume falls off with the distance
// from the player.
func playPositional(ecs *ecs.ECS, sound cfg.SoundID, pos geom.Vec2) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	dist := components.Body.Get(entry).Pos.Distance(pos)
	volume := geom.Remap(dist, cfg.Sim.SoundFalloff, 0, 0, 1, true)
	if volume > 0 {
		PlaySFX(ecs, sound, volume)
	}
}
