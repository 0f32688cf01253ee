package components

import (
	"github.com/automoto/playground/geom"
	"github.com/yohamta/donburi"
)

// BodyData is the kinematic state of anything that moves through the arena.
// For the player Vel already includes the walking speed; projectiles keep a
// unit-ish direction in Vel and scale it by Speed.
type BodyData struct {
	Pos   geom.Vec2
	Vel   geom.Vec2
	Speed float64
}

var Body = donburi.NewComponentType[BodyData]()
