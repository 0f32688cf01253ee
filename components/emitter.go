package components

import (
	"github.com/automoto/playground/particles"
	"github.com/yohamta/donburi"
)

type EmitterData struct {
	*particles.Emitter
}

var Emitter = donburi.NewComponentType[EmitterData]()
