package systems

import (
	"fmt"

	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/fonts"
	"github.com/automoto/playground/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the debug text overlay in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).Debug || !fonts.Loaded(fonts.Small) {
		return
	}

	face := fonts.Small.Get()
	y := cfg.UI.Margin + cfg.UI.LineStep
	for _, line := range debugLines(ecs) {
		text.Draw(screen, line, face, cfg.UI.Margin, y, cfg.UI.TextColor)
		y += cfg.UI.LineStep
	}
}

// debugLines collects the overlay text for the current frame.
func debugLines(ecs *ecs.ECS) []string {
	sim := GetOrCreateSimulation(ecs)
	settings := GetOrCreateSettings(ecs)

	lines := []string{
		fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		"input " + getOrCreateInput(ecs).LastInputMethod.String(),
	}

	if entry, ok := tags.Player.First(ecs.World); ok {
		hp := components.Health.Get(entry)
		lines = append(lines, fmt.Sprintf("health %d/%d", hp.Current, hp.Max))
	}

	projectiles, particleCount := 0, 0
	components.Lifetime.Each(ecs.World, func(e *donburi.Entry) {
		projectiles++
	})
	components.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		particleCount += len(components.Emitter.Get(e).Particles)
	})

	lines = append(lines,
		fmt.Sprintf("time %.2f  zoom %.2f", sim.TimeScale, settings.ScreenScale),
		fmt.Sprintf("projectiles %d  particles %d", projectiles, particleCount),
	)
	return lines
}
