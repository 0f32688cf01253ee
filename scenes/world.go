package scenes

import (
	"sync"

	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/systems"
	factory2 "github.com/automoto/playground/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaygroundScene is the arena: one player, its projectiles and the portal pair.
type PlaygroundScene struct {
	ecs   *ecs.ECS
	saved *systems.SavedSettings
	once  sync.Once
}

// NewPlaygroundScene creates the arena scene. saved may be nil.
func NewPlaygroundScene(saved *systems.SavedSettings) *PlaygroundScene {
	return &PlaygroundScene{saved: saved}
}

func (ps *PlaygroundScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.QuitRequested(ps.ecs) {
		systems.SaveCurrentSettings(ps.ecs)
		return ebiten.Termination
	}
	return nil
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.C.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Layout maps the window onto the arena so one layout pixel is one arena unit.
func (ps *PlaygroundScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	ps.once.Do(ps.configure)
	arena := systems.GetOrCreateSimulation(ps.ecs).Arena
	return int(arena.X), int(arena.Y)
}

func (ps *PlaygroundScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	configureSystems(ecs)
	ps.ecs = ecs

	systems.ApplySavedSettings(ps.ecs, ps.saved)
	arena := systems.GetOrCreateSimulation(ps.ecs).Arena

	// The space covers the largest arena, reached at the minimum zoom
	factory2.CreateSpace(ps.ecs, cfg.C.Width, cfg.C.Height, cfg.C.SpaceCellSize, cfg.C.SpaceCellSize)

	sim := systems.GetOrCreateSimulation(ps.ecs)
	factory2.CreatePlayer(ps.ecs, arena.Scale(0.5), sim.Rand)
}

// configureSystems registers the frame pipeline in execution order.
func configureSystems(ecs *ecs.ECS) {
	// Audio drains last frame's queue first
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdatePortals)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
}
