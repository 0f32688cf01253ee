package factory

import (
	"math/rand"

	"github.com/automoto/playground/archetypes"
	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/particles"
	"github.com/automoto/playground/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, pos geom.Vec2, rng *rand.Rand) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.HitSize
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Body.SetValue(player, components.BodyData{
		Pos:   pos,
		Speed: cfg.Player.Speed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Player.SetValue(player, components.PlayerData{})

	// Manual-only emitter used for hit and death feedback
	emitter := particles.NewEmitter(pos, particles.EmitterConfig{
		Shape:    particles.Point(cfg.Player.ParticleSpread),
		Particle: particles.FadeOut(cfg.Player.ParticleColor),
		Debug:    cfg.Particle.DebugShapes,
	}, rng)
	components.Emitter.SetValue(player, components.EmitterData{Emitter: emitter})

	return player
}
