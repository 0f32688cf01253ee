package systems

import (
	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component for this ECS, creating it if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			SFXVolume:   cfg.Audio.DefaultSFXVol,
			ScreenScale: cfg.C.DefaultScale,
			Debug:       cfg.UI.Debug,
		})
	}
	return components.Settings.Get(entry)
}
