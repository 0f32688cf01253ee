package systems

import (
	"log"
	"os"
	"sync"

	"github.com/automoto/playground/assets"
	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once at startup and shared by every world.
// Worlds without it (tests, headless runs) still queue and drain sounds.
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// InitAudio opens the audio device and loads the sound effects found in dir.
func InitAudio(dir string) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, os.DirFS(dir))
	})
	PreloadAllSFX()
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
// Missing or broken files only disable that sound.
func PreloadAllSFX() {
	if globalAudioLoader == nil {
		return
	}
	for _, name := range cfg.Sound.Names {
		if err := globalAudioLoader.PreloadSFX(sfxPath(name)); err != nil {
			log.Printf("Warning: Could not load sound %s: %v", name, err)
		}
	}
}

func sfxPath(name string) string {
	return name + cfg.Audio.Extension
}

// UpdateAudio plays and clears the queued sound effects
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	master := GetOrCreateSettings(e).SFXVolume
	for _, req := range audioData.PendingSFX {
		playSFX(req, master)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(req components.SoundRequest, master float64) {
	if globalAudioLoader == nil || master <= 0 || req.Volume <= 0 {
		return
	}

	name, ok := cfg.Sound.Names[req.ID]
	if !ok {
		return
	}
	path := sfxPath(name)
	if !globalAudioLoader.Cached(path) {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := master * req.Volume
	if mult, ok := cfg.Sound.VolumeMultipliers[req.ID]; ok {
		volume *= mult
	}

	player.SetVolume(geom.Clamp(volume, 0, 1))
	player.Play()
}

// PlaySFX queues a sound effect at the given volume (0.0 - 1.0)
func PlaySFX(e *ecs.ECS, sound cfg.SoundID, volume float64) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SoundRequest{
		ID:     sound,
		Volume: volume,
	})
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	GetOrCreateSettings(e).SFXVolume = geom.Clamp(volume, 0, 1)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]components.SoundRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
