package systems

import (
	"errors"

	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrInvalidEntity is returned when collisions are requested for an entity
// without a hit region.
var ErrInvalidEntity = errors.New("entity has no hit region")

// Collisions returns the live entities whose hit regions overlap e's and
// carry any of resolvTags. The space only narrows the candidates down; the
// overlap itself is an exact box test.
func Collisions(e *donburi.Entry, resolvTags ...string) ([]*donburi.Entry, error) {
	if !e.Valid() || !e.HasComponent(components.Object) {
		return nil, ErrInvalidEntity
	}
	obj := components.Object.Get(e).Object
	if obj == nil {
		return nil, ErrInvalidEntity
	}

	check := obj.Check(0, 0, resolvTags...)
	if check == nil {
		return nil, nil
	}

	var hits []*donburi.Entry
	for _, other := range check.Objects {
		if !objectRect(obj).Overlaps(objectRect(other)) {
			continue
		}
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		hits = append(hits, entry)
	}
	return hits, nil
}

func objectRect(o *resolv.Object) geom.Rect {
	return geom.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// UpdateCollisions applies bullet hits to the player. Each overlapping
// bullet costs health and is consumed in the same frame.
func UpdateCollisions(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	GetOrCreateAudio(ecs)

	hits, err := Collisions(playerEntry, tags.ResolvBullet)
	if err != nil {
		panic(err)
	}

	health := components.Health.Get(playerEntry)
	emitter := components.Emitter.Get(playerEntry)
	for _, bullet := range hits {
		vel := components.Body.Get(bullet).Vel
		health.Current -= cfg.Bullet.Damage
		destroyEntity(ecs, bullet)

		if health.Current > 0 {
			// Spray out sideways from the bullet's path
			emitter.SetDirection(vel.Perp())
			emitter.Burst(0, false)
			PlaySFX(ecs, cfg.SoundHurt, 1)
			continue
		}

		emitter.ClearDirection()
		emitter.Burst(cfg.Player.DeathBurst, false)
		PlaySFX(ecs, cfg.SoundDeath, 1)
		SetTimeScale(ecs, cfg.Sim.DeathTimeScale)
	}
}
