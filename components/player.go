package components

import (
	"github.com/automoto/playground/geom"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	WalkTimer float64   // seconds since the last footstep sound
	Aim       geom.Vec2 // arena position the gun points at
}

var Player = donburi.NewComponentType[PlayerData]()
