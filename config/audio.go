package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShoot
	SoundStep
	SoundRicochet
	SoundPortal
	SoundHurt
	SoundDeath
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	SoundDir      string // directory scanned for sound files at startup
	Extension     string
}

// SoundConfig maps sound IDs to file names (without extension) in SoundDir
type SoundConfig struct {
	Names             map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		SoundDir:      "assets/sounds",
		Extension:     ".wav",
	}

	Sound = SoundConfig{
		Names: map[SoundID]string{
			SoundShoot:    "Shoot1",
			SoundStep:     "Step1",
			SoundRicochet: "Ricochet1",
			SoundPortal:   "Portal1",
			SoundHurt:     "Hurt1",
			SoundDeath:    "Death1",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundDeath: 1.5,
		},
	}
}
