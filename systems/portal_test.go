package systems

import (
	"testing"

	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/systems/factory"
	"github.com/automoto/playground/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// placePair puts portal A at (50, 50) facing left and portal B at
// (150, 100) facing down.
func placePair(t *testing.T, e *ecs.ECS) (a, b *donburi.Entry) {
	t.Helper()
	a = PlacePortal(e, 0, geom.V(50, 50), geom.V(1, 0))
	b = PlacePortal(e, 1, geom.V(150, 100), geom.V(0, -1))
	if a == nil || b == nil {
		t.Fatal("PlacePortal returned nil")
	}
	return a, b
}

func TestPortalGeometry(t *testing.T) {
	e := newTestWorld(t)
	a, _ := placePair(t, e)
	p := components.Portal.Get(a)

	if !approxVec(p.Normal, geom.V(-1, 0)) {
		t.Errorf("normal = %v, want (-1, 0)", p.Normal)
	}
	if !approxVec(p.Exit(cfg.Portal.ExitOffset), geom.V(48, 50)) {
		t.Errorf("exit = %v, want (48, 50)", p.Exit(cfg.Portal.ExitOffset))
	}
	seg := p.Segment()
	if seg.A.Distance(seg.B) != cfg.Portal.Width {
		t.Errorf("segment length = %v, want %v", seg.A.Distance(seg.B), cfg.Portal.Width)
	}
	if p.Color != cfg.Portal.Colors[0] {
		t.Errorf("slot 0 colour = %v", p.Color)
	}
}

func TestPortalTransit(t *testing.T) {
	e := newTestWorld(t)
	a, b := placePair(t, e)
	addPlayer(e, geom.V(120, 120))
	bullet := factory.CreateBullet(e, geom.V(47, 50), geom.V(1, 0))

	UpdateProjectiles(e)

	body := components.Body.Get(bullet)
	if !approxVec(body.Pos, geom.V(150, 102)) {
		t.Fatalf("bullet at %v, want portal B exit (150, 102)", body.Pos)
	}
	if !approxVec(body.Vel, geom.V(0, 1)) {
		t.Errorf("vel = %v, want (0, 1)", body.Vel)
	}
	for _, p := range []*donburi.Entry{a, b} {
		if n := len(components.Emitter.Get(p).Particles); n < 5 || n > 10 {
			t.Errorf("portal burst spawned %d particles, want within [5, 10]", n)
		}
	}
	if !hasSound(e, cfg.SoundPortal) {
		t.Error("expected a portal sound")
	}

	// Leaving the exit must not bounce straight back
	UpdateProjectiles(e)
	if body.Pos.Y <= 102 || body.Pos.X != 150 {
		t.Errorf("bullet re-triggered the portal, now at %v", body.Pos)
	}
}

func TestPortalTransitReverse(t *testing.T) {
	e := newTestWorld(t)
	placePair(t, e)
	bullet := factory.CreateBullet(e, geom.V(150, 103), geom.V(0, -1))

	UpdateProjectiles(e)

	body := components.Body.Get(bullet)
	if !approxVec(body.Pos, geom.V(48, 50)) {
		t.Fatalf("bullet at %v, want portal A exit (48, 50)", body.Pos)
	}
	if !approxVec(body.Vel, geom.V(-1, 0)) {
		t.Errorf("vel = %v, want (-1, 0)", body.Vel)
	}
}

func TestPortalTransitNeedsBothPortals(t *testing.T) {
	e := newTestWorld(t)
	PlacePortal(e, 0, geom.V(50, 50), geom.V(1, 0))
	bullet := factory.CreateBullet(e, geom.V(47, 50), geom.V(1, 0))

	UpdateProjectiles(e)
	UpdateProjectiles(e)

	body := components.Body.Get(bullet)
	if body.Pos.Y != 50 || body.Pos.X <= 50 {
		t.Errorf("bullet should pass a lone portal, now at %v", body.Pos)
	}
}

func TestPortalTransitPlayer(t *testing.T) {
	e := newTestWorld(t)
	placePair(t, e)
	player := addPlayer(e, geom.V(47, 50))
	components.Body.Get(player).Vel = geom.V(cfg.Player.Speed*2, 0)

	UpdatePlayer(e)

	body := components.Body.Get(player)
	if !approxVec(body.Pos, geom.V(150, 102)) {
		t.Fatalf("player at %v, want (150, 102)", body.Pos)
	}
	if em := components.Emitter.Get(player); em.Pos != body.Pos {
		t.Errorf("player emitter at %v, want %v", em.Pos, body.Pos)
	}
}

func TestPlacePortalReplacesSlot(t *testing.T) {
	e := newTestWorld(t)
	PlacePortal(e, 0, geom.V(50, 50), geom.V(1, 0))
	PlacePortal(e, 0, geom.V(80, 80), geom.V(0, 1))

	if n := countEntries(e.World, tags.Portal); n != 1 {
		t.Fatalf("%d portals, want 1", n)
	}
	p := components.Portal.Get(portalPair(e.World)[0])
	if p.Pos != geom.V(80, 80) {
		t.Errorf("slot 0 at %v, want (80, 80)", p.Pos)
	}

	// Zero aim keeps the current portal
	if got := PlacePortal(e, 0, geom.V(10, 10), geom.Vec2{}); got != nil {
		t.Error("zero aim placed a portal")
	}
	if p := components.Portal.Get(portalPair(e.World)[0]); p.Pos != geom.V(80, 80) {
		t.Errorf("zero aim moved slot 0 to %v", p.Pos)
	}

	ClearPortal(e, 0)
	ClearPortal(e, 1)
	if n := countEntries(e.World, tags.Portal); n != 0 {
		t.Errorf("%d portals after clearing, want 0", n)
	}
}

func TestUpdatePortalsActivation(t *testing.T) {
	e := newTestWorld(t)
	GetOrCreateSimulation(e).Delta = 0.25
	a := PlacePortal(e, 0, geom.V(50, 50), geom.V(1, 0))

	UpdatePortals(e)
	if components.Portal.Get(a).Active {
		t.Fatal("lone portal is active")
	}
	if n := len(components.Emitter.Get(a).Particles); n != 0 {
		t.Fatalf("inactive portal emitted %d particles", n)
	}

	b := PlacePortal(e, 1, geom.V(150, 100), geom.V(0, -1))
	UpdatePortals(e)
	for _, p := range []*donburi.Entry{a, b} {
		if !components.Portal.Get(p).Active {
			t.Error("portal of a complete pair is inactive")
		}
		if n := len(components.Emitter.Get(p).Particles); n < 2 {
			t.Errorf("active portal emitted %d particles, want at least 2", n)
		}
	}

	ClearPortal(e, 1)
	UpdatePortals(e)
	if components.Portal.Get(a).Active {
		t.Error("portal stayed active after its partner was cleared")
	}
}
