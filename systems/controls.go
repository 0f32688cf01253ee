package systems

import (
	"log"

	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/systems/factory"
	"github.com/automoto/playground/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls turns the polled input into game actions: walking,
// shooting, portal placement, zoom and the debug toggles.
// Must run AFTER UpdateInput and BEFORE UpdateClock.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	sim := GetOrCreateSimulation(ecs)
	settings := GetOrCreateSettings(ecs)
	GetOrCreateAudio(ecs)

	if GetAction(input, cfg.ActionQuit).JustPressed || input.CloseRequested {
		sim.Quit = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if input.Wheel != 0 {
		SetScreenScale(ecs, settings.ScreenScale+input.Wheel*cfg.C.ScaleStep)
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	player.Aim = input.Mouse

	body.Vel = geom.Vec2{}
	moving := false
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		body.Vel.Y -= body.Speed
		moving = true
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		body.Vel.Y += body.Speed
		moving = true
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		body.Vel.X -= body.Speed
		moving = true
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		body.Vel.X += body.Speed
		moving = true
	}
	if moving && player.WalkTimer >= cfg.Player.StepInterval {
		PlaySFX(ecs, cfg.SoundStep, cfg.Player.StepVolume)
		player.WalkTimer = 0
	}

	if GetAction(input, cfg.ActionFire).Pressed && sim.ShotTimer == 0 {
		fire(ecs, sim, body, input.Mouse)
	}

	// Portals face away from the player
	aim := input.Mouse.Sub(body.Pos)
	if GetAction(input, cfg.ActionPlacePortalA).JustPressed {
		PlacePortal(ecs, 0, input.Mouse, aim)
	}
	if GetAction(input, cfg.ActionPlacePortalB).JustPressed {
		PlacePortal(ecs, 1, input.Mouse, aim)
	}
	if GetAction(input, cfg.ActionClearPortalA).JustPressed {
		ClearPortal(ecs, 0)
	}
	if GetAction(input, cfg.ActionClearPortalB).JustPressed {
		ClearPortal(ecs, 1)
	}

	if GetAction(input, cfg.ActionDebugPrint).JustPressed {
		health := components.Health.Get(playerEntry)
		log.Printf("health=%d fps=%.1f tps=%.1f", health.Current, ebiten.ActualFPS(), ebiten.ActualTPS())
	}
}

// fire shoots a bullet toward target, ejects a shell sideways and applies
// recoil, screen shake and a short slow motion.
func fire(ecs *ecs.ECS, sim *components.SimulationData, body *components.BodyData, target geom.Vec2) {
	aim := target.Sub(body.Pos).Normalize()
	if aim.IsZero() {
		return
	}

	factory.CreateBullet(ecs, body.Pos.Add(aim.Scale(cfg.Player.MuzzleOffset)), aim)

	eject := aim.Perp()
	shellPos := body.Pos.Add(aim.Scale(cfg.Player.EjectOffset)).Add(eject.Scale(cfg.Player.EjectOffset))
	factory.CreateShell(ecs, shellPos, eject, sim.Rand)

	shake := aim.Scale(-(sim.Rand.Float64()*cfg.Player.RecoilRange + cfg.Player.RecoilMin))
	body.Vel = shake.Scale(cfg.Player.RecoilVelocity)
	PlaySFX(ecs, cfg.SoundShoot, 1)

	sim.ScreenShake = shake
	sim.ShotTimer = sim.FireRate
	SetTimeScale(ecs, cfg.Sim.ShotTimeScale)
}
