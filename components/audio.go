package components

import (
	cfg "github.com/automoto/playground/config"
	"github.com/yohamta/donburi"
)

// SoundRequest is a queued sound effect with its playback volume.
type SoundRequest struct {
	ID     cfg.SoundID
	Volume float64
}

// AudioData stores the queued sound effects (singleton component)
type AudioData struct {
	PendingSFX []SoundRequest
}

var Audio = donburi.NewComponentType[AudioData]()
