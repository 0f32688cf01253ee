package systems

import (
	"testing"

	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// press sets the held state of actions for the next UpdateControls call,
// as UpdateInput would after polling.
func press(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

func TestFire(t *testing.T) {
	e := newTestWorld(t)
	player := addPlayer(e, geom.V(100, 100))
	getOrCreateInput(e).Mouse = geom.V(200, 100)
	press(e, cfg.ActionFire)

	UpdateControls(e)

	var bullets, shells []*donburi.Entry
	tags.Bullet.Each(e.World, func(b *donburi.Entry) { bullets = append(bullets, b) })
	tags.Shell.Each(e.World, func(s *donburi.Entry) { shells = append(shells, s) })
	if len(bullets) != 1 || len(shells) != 1 {
		t.Fatalf("spawned %d bullets and %d shells, want one of each", len(bullets), len(shells))
	}

	bullet := components.Body.Get(bullets[0])
	if !approxVec(bullet.Pos, geom.V(100+cfg.Player.MuzzleOffset, 100)) {
		t.Errorf("bullet at %v, want at the muzzle", bullet.Pos)
	}
	if !approxVec(bullet.Vel, geom.V(1, 0)) {
		t.Errorf("bullet vel = %v, want (1, 0)", bullet.Vel)
	}

	shell := components.Body.Get(shells[0])
	off := cfg.Player.EjectOffset
	if !approxVec(shell.Pos, geom.V(100+off, 100+off)) {
		t.Errorf("shell at %v, want (%v, %v)", shell.Pos, 100+off, 100+off)
	}
	if shell.Speed < float64(cfg.Shell.MinSpeed) || shell.Speed > float64(cfg.Shell.MaxSpeed) {
		t.Errorf("shell speed = %v", shell.Speed)
	}

	// Recoil pushes the player away from the target
	body := components.Body.Get(player)
	lo := -(cfg.Player.RecoilMin + cfg.Player.RecoilRange) * cfg.Player.RecoilVelocity
	hi := -cfg.Player.RecoilMin * cfg.Player.RecoilVelocity
	if body.Vel.X < lo || body.Vel.X > hi || body.Vel.Y != 0 {
		t.Errorf("recoil vel = %v, want x within [%v, %v]", body.Vel, lo, hi)
	}

	sim := GetOrCreateSimulation(e)
	if sim.ShotTimer != sim.FireRate {
		t.Errorf("shot timer = %v, want %v", sim.ShotTimer, sim.FireRate)
	}
	if sim.TimeScale != cfg.Sim.ShotTimeScale {
		t.Errorf("time scale = %v, want %v", sim.TimeScale, cfg.Sim.ShotTimeScale)
	}
	if sim.ScreenShake.IsZero() {
		t.Error("expected screen shake")
	}
	if !hasSound(e, cfg.SoundShoot) {
		t.Error("expected a shoot sound")
	}

	// Holding fire does nothing until the shot timer runs out
	press(e, cfg.ActionFire)
	UpdateControls(e)
	if n := countEntries(e.World, tags.Bullet); n != 1 {
		t.Errorf("%d bullets while the shot timer runs, want 1", n)
	}
}

func TestFireAtPlayerDoesNothing(t *testing.T) {
	e := newTestWorld(t)
	addPlayer(e, geom.V(100, 100))
	getOrCreateInput(e).Mouse = geom.V(100, 100)
	press(e, cfg.ActionFire)

	UpdateControls(e)

	if n := countEntries(e.World, tags.Bullet); n != 0 {
		t.Errorf("%d bullets fired without an aim, want 0", n)
	}
}

func TestWalking(t *testing.T) {
	e := newTestWorld(t)
	player := addPlayer(e, geom.V(100, 100))
	press(e, cfg.ActionMoveRight, cfg.ActionMoveUp)

	UpdateControls(e)

	body := components.Body.Get(player)
	if body.Vel != geom.V(cfg.Player.Speed, -cfg.Player.Speed) {
		t.Errorf("vel = %v", body.Vel)
	}
	if hasSound(e, cfg.SoundStep) {
		t.Error("footstep before the step interval elapsed")
	}

	components.Player.Get(player).WalkTimer = cfg.Player.StepInterval
	press(e, cfg.ActionMoveRight)
	UpdateControls(e)

	var step *components.SoundRequest
	for i, req := range GetOrCreateAudio(e).PendingSFX {
		if req.ID == cfg.SoundStep {
			step = &GetOrCreateAudio(e).PendingSFX[i]
		}
	}
	if step == nil {
		t.Fatal("expected a footstep")
	}
	if step.Volume != cfg.Player.StepVolume {
		t.Errorf("footstep volume = %v, want %v", step.Volume, cfg.Player.StepVolume)
	}
	if got := components.Player.Get(player).WalkTimer; got != 0 {
		t.Errorf("walk timer = %v, want reset", got)
	}

	press(e)
	UpdateControls(e)
	if !body.Vel.IsZero() {
		t.Errorf("vel = %v after releasing keys, want zero", body.Vel)
	}
}

func TestPortalKeys(t *testing.T) {
	e := newTestWorld(t)
	addPlayer(e, geom.V(100, 100))
	getOrCreateInput(e).Mouse = geom.V(150, 100)

	press(e, cfg.ActionPlacePortalA)
	UpdateControls(e)

	a := portalPair(e.World)[0]
	if a == nil {
		t.Fatal("portal A not placed")
	}
	p := components.Portal.Get(a)
	if p.Pos != geom.V(150, 100) || !approxVec(p.Normal, geom.V(-1, 0)) {
		t.Errorf("portal A at %v facing %v", p.Pos, p.Normal)
	}

	// Held keys do not place again
	press(e, cfg.ActionPlacePortalA)
	UpdateControls(e)
	if portalPair(e.World)[0] != a {
		t.Error("holding the key replaced the portal")
	}

	press(e, cfg.ActionPlacePortalB)
	UpdateControls(e)
	if portalPair(e.World)[1] == nil {
		t.Fatal("portal B not placed")
	}

	press(e, cfg.ActionClearPortalA)
	UpdateControls(e)
	if pair := portalPair(e.World); pair[0] != nil || pair[1] == nil {
		t.Errorf("clearing A left pair %v", pair)
	}
}

func TestWheelZoom(t *testing.T) {
	e := newTestWorld(t)
	input := getOrCreateInput(e)

	input.Wheel = 20
	UpdateControls(e)
	if got := GetOrCreateSimulation(e).Arena; got != geom.V(180, 180) {
		t.Errorf("arena = %v after zooming in, want (180, 180)", got)
	}

	input.Wheel = 100
	UpdateControls(e)
	if got := GetOrCreateSettings(e).ScreenScale; got != cfg.C.MaxScale {
		t.Errorf("scale = %v, want %v", got, cfg.C.MaxScale)
	}
}

func TestQuitAndDebugToggle(t *testing.T) {
	e := newTestWorld(t)

	press(e, cfg.ActionToggleDebug)
	UpdateControls(e)
	if GetOrCreateSettings(e).Debug == cfg.UI.Debug {
		t.Error("debug toggle had no effect")
	}
	if QuitRequested(e) {
		t.Fatal("quit without a request")
	}

	press(e, cfg.ActionQuit)
	UpdateControls(e)
	if !QuitRequested(e) {
		t.Error("quit key ignored")
	}
}

func TestWindowCloseQuits(t *testing.T) {
	e := newTestWorld(t)
	getOrCreateInput(e).CloseRequested = true

	UpdateControls(e)

	if !QuitRequested(e) {
		t.Error("window close ignored")
	}
}
