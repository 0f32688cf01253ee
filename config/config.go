package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	LayerHUD
)

// WindowConfig describes the window and the arena mapped onto it.
// The arena extent is the window size divided by the screen scale.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int

	DefaultScale float64
	MinScale     float64
	MaxScale     float64
	ScaleStep    float64 // per mouse wheel notch

	Background color.RGBA

	// Collision space grid
	SpaceCellSize int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed   float64
	Health  int
	HitSize float64 // side of the square hit region

	// Feedback
	ParticleSpread float64 // degrees
	ParticleColor  color.RGBA
	DeathBurst     int

	// Shooting
	MuzzleOffset   float64
	EjectOffset    float64
	RecoilMin      float64
	RecoilRange    float64
	RecoilVelocity float64 // player velocity multiplier for recoil

	// Footsteps
	StepInterval float64
	StepVolume   float64

	// Visual
	BodyRadius float64
	BodyColor  color.RGBA
	GunStart   float64
	GunEnd     float64
	GunColor   color.RGBA
}

// BulletConfig contains bullet configuration
type BulletConfig struct {
	Speed   float64
	Life    float64
	HitSize float64
	Damage  int

	Width  int
	Height int
	Color  color.RGBA
}

// ShellConfig contains spent shell casing configuration
type ShellConfig struct {
	MinSpeed int
	MaxSpeed int
	Life     float64
	Drag     float64 // fraction of speed lost per second

	Width     int
	Height    int
	RimColor  color.RGBA
	BodyColor color.RGBA
}

// PortalConfig contains portal pair configuration
type PortalConfig struct {
	Width           float64
	ExitOffset      float64
	SpawnRate       float64
	EmitterInset    float64 // emitter line is Width minus this
	ProbeLength     float64 // look-ahead along the velocity
	TriggerDistance float64

	Colors        [2]color.RGBA
	InactiveAlpha uint8
	ActiveAlpha   uint8
}

// ParticleConfig contains particle rendering configuration
type ParticleConfig struct {
	Size        float32
	DebugColor  color.RGBA
	DebugShapes bool
}

// SimConfig contains frame stepping and game feel values
type SimConfig struct {
	FireRate       float64 // seconds between shots
	ShotTimeScale  float64
	DeathTimeScale float64
	RecoveryRate   float64 // time scale regained per second
	ShakeDecay     float64 // multiplier applied each frame
	SoundFalloff   float64 // distance at which positional sounds go silent
	Seed           int64   // zero seeds from the clock
}

// UIConfig contains debug overlay configuration
type UIConfig struct {
	Debug     bool
	FontSize  float64
	TextColor color.RGBA
	LineStep  int
	Margin    int
}

var C WindowConfig
var Player PlayerConfig
var Bullet BulletConfig
var Shell ShellConfig
var Portal PortalConfig
var Particle ParticleConfig
var Sim SimConfig
var UI UIConfig

func init() {
	C = WindowConfig{
		Width:  720,
		Height: 720,
		Title:  "playground",
		TPS:    60,

		DefaultScale: 3,
		MinScale:     1,
		MaxScale:     6,
		ScaleStep:    0.05,

		Background:    color.RGBA{60, 50, 60, 255},
		SpaceCellSize: 16,
	}

	Player = PlayerConfig{
		Speed:   50,
		Health:  100,
		HitSize: 4,

		ParticleSpread: 30,
		ParticleColor:  color.RGBA{200, 0, 0, 255},
		DeathBurst:     50,

		MuzzleOffset:   15,
		EjectOffset:    4,
		RecoilMin:      4,
		RecoilRange:    4,
		RecoilVelocity: 10,

		StepInterval: 0.1,
		StepVolume:   0.2,

		BodyRadius: 2,
		BodyColor:  color.RGBA{0, 200, 0, 255},
		GunStart:   4,
		GunEnd:     10,
		GunColor:   color.RGBA{0, 200, 200, 255},
	}

	Bullet = BulletConfig{
		Speed:   100,
		Life:    5,
		HitSize: 2,
		Damage:  10,
		Width:   4,
		Height:  2,
		Color:   color.RGBA{100, 100, 100, 255},
	}

	Shell = ShellConfig{
		MinSpeed:  20,
		MaxSpeed:  40,
		Life:      5,
		Drag:      1.8,
		Width:     4,
		Height:    2,
		RimColor:  color.RGBA{200, 200, 0, 255},
		BodyColor: color.RGBA{200, 0, 0, 255},
	}

	Portal = PortalConfig{
		Width:           12,
		ExitOffset:      2,
		SpawnRate:       10,
		EmitterInset:    4,
		ProbeLength:     10,
		TriggerDistance: 3,
		Colors: [2]color.RGBA{
			{255, 127, 0, 255},
			{41, 174, 255, 255},
		},
		InactiveAlpha: 100,
		ActiveAlpha:   200,
	}

	Particle = ParticleConfig{
		Size:       1,
		DebugColor: color.RGBA{0, 200, 200, 255},
	}

	Sim = SimConfig{
		FireRate:       1.0 / 40,
		ShotTimeScale:  0.2,
		DeathTimeScale: 0.05,
		RecoveryRate:   2,
		ShakeDecay:     0.9,
		SoundFalloff:   200,
	}

	UI = UIConfig{
		FontSize:  10,
		TextColor: color.RGBA{230, 230, 230, 255},
		LineStep:  12,
		Margin:    4,
	}
}
