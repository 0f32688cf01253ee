package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/playground/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume   float64 `json:"sfxVolume"`
	ScreenScale float64 `json:"screenScale"`
	Debug       bool    `json:"debug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil without error when
// nothing was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the Settings component for saving
func CurrentSettings(e *ecs.ECS) *SavedSettings {
	s := GetOrCreateSettings(e)
	return &SavedSettings{
		SFXVolume:   s.SFXVolume,
		ScreenScale: s.ScreenScale,
		Debug:       s.Debug,
	}
}

// SaveCurrentSettings saves the current settings of this ECS
func SaveCurrentSettings(e *ecs.ECS) {
	// SaveSettings logs its own failures and quitting goes ahead regardless
	SaveSettings(CurrentSettings(e)) //nolint:errcheck
}

// ApplySavedSettings applies loaded settings to the world
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetSFXVolume(e, saved.SFXVolume)
	GetOrCreateSettings(e).Debug = saved.Debug
	if saved.ScreenScale > 0 {
		SetScreenScale(e, saved.ScreenScale)
	}
}
