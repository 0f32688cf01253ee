package config

// SettingsConfig controls where user preferences are stored
type SettingsConfig struct {
	AppName string
	ItemKey string
}

// Settings is the global settings storage configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "playground",
		ItemKey: "settings",
	}
}
