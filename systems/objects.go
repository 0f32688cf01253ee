package systems

import (
	"github.com/automoto/playground/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects centres every hit region on its body and refreshes its
// placement in the collision space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if e.HasComponent(components.Body) {
			pos := components.Body.Get(e).Pos
			obj.X = pos.X - obj.W/2
			obj.Y = pos.Y - obj.H/2
		}
		obj.Update()
	}
}

// destroyEntity removes e from the world and its hit region from the space.
func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			if obj := components.Object.Get(e); obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
