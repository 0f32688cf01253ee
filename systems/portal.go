package systems

import (
	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/systems/factory"
	"github.com/automoto/playground/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlacePortal puts a portal into slot at pos, facing against aim, replacing
// whatever occupied the slot. A zero aim leaves the slot unchanged.
func PlacePortal(ecs *ecs.ECS, slot int, pos, aim geom.Vec2) *donburi.Entry {
	if aim.IsZero() {
		return nil
	}
	ClearPortal(ecs, slot)
	sim := GetOrCreateSimulation(ecs)
	return factory.CreatePortal(ecs, slot, pos, aim, sim.Rand)
}

// ClearPortal removes the portal in slot, if any.
func ClearPortal(ecs *ecs.ECS, slot int) {
	if e := portalPair(ecs.World)[slot]; e != nil {
		ecs.World.Remove(e.Entity())
	}
}

// portalPair returns the portals indexed by slot. Empty slots are nil.
func portalPair(w donburi.World) [2]*donburi.Entry {
	var pair [2]*donburi.Entry
	tags.Portal.Each(w, func(e *donburi.Entry) {
		slot := components.Portal.Get(e).Slot
		if slot >= 0 && slot < len(pair) {
			pair[slot] = e
		}
	})
	return pair
}

// UpdatePortals re-evaluates whether the pair is complete and steps the
// emitters of active portals.
func UpdatePortals(ecs *ecs.ECS) {
	sim := GetOrCreateSimulation(ecs)
	pair := portalPair(ecs.World)
	active := pair[0] != nil && pair[1] != nil

	for _, e := range pair {
		if e == nil {
			continue
		}
		components.Portal.Get(e).Active = active
		if active {
			components.Emitter.Get(e).Update(sim.Delta)
		}
	}
}

// transitPortal teleports body when it is about to cross either portal of a
// complete pair. It lands on the other portal's exit heading out of it, and
// at most one transit happens per call.
func transitPortal(ecs *ecs.ECS, body *components.BodyData) bool {
	pair := portalPair(ecs.World)
	if pair[0] == nil || pair[1] == nil || body.Vel.IsZero() {
		return false
	}

	probe := geom.Segment{A: body.Pos, B: body.Pos.Add(body.Vel.Normalize().Scale(cfg.Portal.ProbeLength))}
	for i, srcEntry := range pair {
		src := components.Portal.Get(srcEntry)
		seg := src.Segment()
		if !probe.Crosses(seg) {
			continue
		}
		if geom.PointSegmentDistance(body.Pos, seg) > cfg.Portal.TriggerDistance {
			continue
		}

		destEntry := pair[(i+1)%len(pair)]
		dest := components.Portal.Get(destEntry)

		body.Pos = dest.Exit(cfg.Portal.ExitOffset)
		body.Vel = body.Vel.Add(src.Normal).Add(dest.Normal).Normalize()

		components.Emitter.Get(srcEntry).Burst(0, false)
		components.Emitter.Get(destEntry).Burst(0, false)
		playPositional(ecs, cfg.SoundPortal, body.Pos)
		return true
	}
	return false
}
