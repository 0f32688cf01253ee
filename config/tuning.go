package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of gameplay values that can be overridden from a
// YAML file. Keys left out of the file keep their built-in values.
type Tuning struct {
	Player struct {
		Speed      float64 `yaml:"speed"`
		Health     int     `yaml:"health"`
		DeathBurst int     `yaml:"death_burst"`
	} `yaml:"player"`
	Bullet struct {
		Speed  float64 `yaml:"speed"`
		Life   float64 `yaml:"life"`
		Damage int     `yaml:"damage"`
	} `yaml:"bullet"`
	Shell struct {
		MinSpeed int     `yaml:"min_speed"`
		MaxSpeed int     `yaml:"max_speed"`
		Drag     float64 `yaml:"drag"`
	} `yaml:"shell"`
	Portal struct {
		Width     float64 `yaml:"width"`
		SpawnRate float64 `yaml:"spawn_rate"`
	} `yaml:"portal"`
	Sim struct {
		FireRate       float64 `yaml:"fire_rate"`
		ShotTimeScale  float64 `yaml:"shot_time_scale"`
		DeathTimeScale float64 `yaml:"death_time_scale"`
		RecoveryRate   float64 `yaml:"recovery_rate"`
		Seed           int64   `yaml:"seed"`
	} `yaml:"sim"`
}

// CurrentTuning captures the values in effect.
func CurrentTuning() Tuning {
	var t Tuning
	t.Player.Speed = Player.Speed
	t.Player.Health = Player.Health
	t.Player.DeathBurst = Player.DeathBurst
	t.Bullet.Speed = Bullet.Speed
	t.Bullet.Life = Bullet.Life
	t.Bullet.Damage = Bullet.Damage
	t.Shell.MinSpeed = Shell.MinSpeed
	t.Shell.MaxSpeed = Shell.MaxSpeed
	t.Shell.Drag = Shell.Drag
	t.Portal.Width = Portal.Width
	t.Portal.SpawnRate = Portal.SpawnRate
	t.Sim.FireRate = Sim.FireRate
	t.Sim.ShotTimeScale = Sim.ShotTimeScale
	t.Sim.DeathTimeScale = Sim.DeathTimeScale
	t.Sim.RecoveryRate = Sim.RecoveryRate
	t.Sim.Seed = Sim.Seed
	return t
}

// Validate rejects values the simulation cannot run with.
func (t *Tuning) Validate() error {
	switch {
	case t.Player.Health <= 0:
		return fmt.Errorf("player.health must be positive, got %d", t.Player.Health)
	case t.Bullet.Life <= 0:
		return fmt.Errorf("bullet.life must be positive, got %v", t.Bullet.Life)
	case t.Shell.MinSpeed < 0:
		return fmt.Errorf("shell.min_speed must not be negative, got %d", t.Shell.MinSpeed)
	case t.Shell.MinSpeed > t.Shell.MaxSpeed:
		return fmt.Errorf("shell.min_speed %d exceeds shell.max_speed %d", t.Shell.MinSpeed, t.Shell.MaxSpeed)
	case t.Shell.Drag < 0 || t.Shell.Drag >= float64(C.TPS):
		// speed *= 1 - drag/TPS each tick must stay positive
		return fmt.Errorf("shell.drag must be within [0, %d), got %v", C.TPS, t.Shell.Drag)
	case t.Portal.Width <= 0:
		return fmt.Errorf("portal.width must be positive, got %v", t.Portal.Width)
	case t.Sim.FireRate < 0:
		return fmt.Errorf("sim.fire_rate must not be negative, got %v", t.Sim.FireRate)
	case t.Sim.ShotTimeScale <= 0 || t.Sim.DeathTimeScale <= 0:
		return fmt.Errorf("time scales must be positive")
	case t.Sim.RecoveryRate <= 0:
		return fmt.Errorf("sim.recovery_rate must be positive, got %v", t.Sim.RecoveryRate)
	}
	return nil
}

// Apply writes the tuning back into the package configuration.
func (t *Tuning) Apply() {
	Player.Speed = t.Player.Speed
	Player.Health = t.Player.Health
	Player.DeathBurst = t.Player.DeathBurst
	Bullet.Speed = t.Bullet.Speed
	Bullet.Life = t.Bullet.Life
	Bullet.Damage = t.Bullet.Damage
	Shell.MinSpeed = t.Shell.MinSpeed
	Shell.MaxSpeed = t.Shell.MaxSpeed
	Shell.Drag = t.Shell.Drag
	Portal.Width = t.Portal.Width
	Portal.SpawnRate = t.Portal.SpawnRate
	Sim.FireRate = t.Sim.FireRate
	Sim.ShotTimeScale = t.Sim.ShotTimeScale
	Sim.DeathTimeScale = t.Sim.DeathTimeScale
	Sim.RecoveryRate = t.Sim.RecoveryRate
	Sim.Seed = t.Sim.Seed
}

// ParseTuning decodes YAML on top of the values in effect.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file and applies it. Nothing changes when
// the file is unreadable or invalid.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning: %w", err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}

// MarshalTuning encodes the values in effect, used to write a starting file.
func MarshalTuning() ([]byte, error) {
	t := CurrentTuning()
	return yaml.Marshal(&t)
}
