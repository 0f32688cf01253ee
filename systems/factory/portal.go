package factory

import (
	"math/rand"

	"github.com/automoto/playground/archetypes"
	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/particles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePortal spawns a portal in slot at pos facing against aim. It returns
// nil when aim is the zero vector since no facing can be derived from it.
func CreatePortal(ecs *ecs.ECS, slot int, pos, aim geom.Vec2, rng *rand.Rand) *donburi.Entry {
	if aim.IsZero() {
		return nil
	}

	data := components.PortalData{
		Slot:   slot,
		Pos:    pos,
		Normal: aim.Scale(-1).Normalize(),
		Width:  cfg.Portal.Width,
		Color:  cfg.Portal.Colors[slot],
	}

	portal := archetypes.Portal.Spawn(ecs)
	components.Portal.SetValue(portal, data)

	emitter := particles.NewEmitter(pos, particles.EmitterConfig{
		Direction: data.Normal,
		SpawnRate: cfg.Portal.SpawnRate,
		Shape:     particles.Line(data.Perp().Scale(data.Width - cfg.Portal.EmitterInset)),
		Particle:  particles.FadeOut(data.Color),
		Debug:     cfg.Particle.DebugShapes,
	}, rng)
	components.Emitter.SetValue(portal, components.EmitterData{Emitter: emitter})

	return portal
}
