package archetypes

import (
	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Health,
		components.Emitter,
		components.Object,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Body,
		components.Lifetime,
		components.Object,
	)
	Shell = newArchetype(
		tags.Shell,
		components.Body,
		components.Lifetime,
		components.Drag,
		components.Spin,
	)
	Portal = newArchetype(
		tags.Portal,
		components.Portal,
		components.Emitter,
	)
	Space = newArchetype(
		components.Space,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
