package components

import "github.com/yohamta/donburi"

// SettingsData holds user preferences (singleton component)
type SettingsData struct {
	SFXVolume   float64
	ScreenScale float64
	Debug       bool
}

var Settings = donburi.NewComponentType[SettingsData]()
