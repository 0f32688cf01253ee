package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// restoreTuning puts the built-in values back after a test applies a file.
func restoreTuning(t *testing.T) {
	t.Helper()
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)
}

func TestParseTuningKeepsMissingKeys(t *testing.T) {
	tun, err := ParseTuning([]byte("bullet:\n  speed: 150\nsim:\n  seed: 42\n"))
	if err != nil {
		t.Fatal(err)
	}
	if tun.Bullet.Speed != 150 || tun.Sim.Seed != 42 {
		t.Errorf("overrides not applied: %+v", tun)
	}
	if tun.Player.Speed != Player.Speed || tun.Bullet.Damage != Bullet.Damage {
		t.Errorf("missing keys lost their values: %+v", tun)
	}
}

func TestParseTuningRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "player: [", "parse tuning"},
		{"dead player", "player:\n  health: 0\n", "player.health"},
		{"shell range", "shell:\n  min_speed: 50\n  max_speed: 10\n", "shell.min_speed"},
		{"frozen time", "sim:\n  shot_time_scale: 0\n", "time scales"},
		{"instant bullets", "bullet:\n  life: 0\n", "bullet.life"},
		{"negative shell speed", "shell:\n  min_speed: -5\n", "shell.min_speed"},
		{"negative drag", "shell:\n  drag: -1\n", "shell.drag"},
		{"drag reverses shells", "shell:\n  drag: 60\n", "shell.drag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadTuning(t *testing.T) {
	restoreTuning(t)
	path := filepath.Join(t.TempDir(), "tuning.yml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 80\nportal:\n  width: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadTuning(path); err != nil {
		t.Fatal(err)
	}
	if Player.Speed != 80 || Portal.Width != 20 {
		t.Errorf("player speed %v, portal width %v", Player.Speed, Portal.Width)
	}
}

func TestLoadTuningInvalidLeavesConfig(t *testing.T) {
	restoreTuning(t)
	before := CurrentTuning()
	path := filepath.Join(t.TempDir(), "tuning.yml")
	if err := os.WriteFile(path, []byte("bullet:\n  speed: 1\nplayer:\n  health: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadTuning(path); err == nil {
		t.Fatal("expected an error")
	}
	if CurrentTuning() != before {
		t.Error("invalid file changed the configuration")
	}
	if err := LoadTuning(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestMarshalTuningRoundTrips(t *testing.T) {
	data, err := MarshalTuning()
	if err != nil {
		t.Fatal(err)
	}
	tun, err := ParseTuning(data)
	if err != nil {
		t.Fatal(err)
	}
	if tun != CurrentTuning() {
		t.Errorf("round trip changed values: %+v", tun)
	}
}
