package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/automoto/playground/config"
	"github.com/automoto/playground/fonts"
	"github.com/automoto/playground/scenes"
	"github.com/automoto/playground/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

type Game struct {
	scene Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, config.UI.FontSize); err != nil {
		log.Printf("Warning: Could not load debug font: %v", err)
	}

	return &Game{
		scene: scenes.NewPlaygroundScene(saved),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout(width, height)
}

func main() {
	debug := flag.Bool("debug", config.UI.Debug, "show the debug overlay and emitter shapes")
	soundDir := flag.String("sounds", config.Audio.SoundDir, "directory holding the sound effects")
	scale := flag.Float64("scale", config.C.DefaultScale, "initial screen scale (zoom)")
	shapes := flag.Bool("shapes", config.Particle.DebugShapes, "always outline particle emitter shapes")
	tuning := flag.String("tuning", "", "YAML file overriding gameplay values")
	dumpTuning := flag.Bool("dump-tuning", false, "print the gameplay values as YAML and exit")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Could not load tuning: %v", err)
		}
	}
	if *dumpTuning {
		data, err := config.MarshalTuning()
		if err != nil {
			log.Fatalf("Could not encode tuning: %v", err)
		}
		os.Stdout.Write(data)
		return
	}

	config.UI.Debug = *debug
	config.Particle.DebugShapes = *shapes
	config.Audio.SoundDir = *soundDir

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowClosingHandled(true)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil || saved == nil {
		saved = &systems.SavedSettings{
			SFXVolume:   config.Audio.DefaultSFXVol,
			ScreenScale: config.C.DefaultScale,
		}
	}

	// Flags given on the command line win over saved settings
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			saved.Debug = *debug
		case "scale":
			saved.ScreenScale = *scale
		}
	})

	systems.InitAudio(config.Audio.SoundDir)

	if err := ebiten.RunGame(NewGame(saved)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited with error: %v", err)
	}
}
