package systems

import (
	"errors"
	"testing"

	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/systems/factory"
	"github.com/automoto/playground/tags"
)

func TestBulletHitDamagesPlayer(t *testing.T) {
	e := newTestWorld(t)
	player := addPlayer(e, geom.V(100, 100))
	factory.CreateBullet(e, geom.V(100, 100), geom.V(1, 0))

	UpdateCollisions(e)

	health := components.Health.Get(player)
	if want := cfg.Player.Health - cfg.Bullet.Damage; health.Current != want {
		t.Errorf("health = %d, want %d", health.Current, want)
	}
	if n := countEntries(e.World, tags.Bullet); n != 0 {
		t.Errorf("%d bullets left, want the hit bullet consumed", n)
	}

	em := components.Emitter.Get(player)
	dir, ok := em.Direction()
	if !ok || !approxVec(dir, geom.V(0, 1)) {
		t.Errorf("hit spray direction = %v (%v), want (0, 1)", dir, ok)
	}
	if n := len(em.Particles); n < 5 || n > 10 {
		t.Errorf("hit burst spawned %d particles, want within [5, 10]", n)
	}
	if !hasSound(e, cfg.SoundHurt) {
		t.Error("expected a hurt sound")
	}
	if sim := GetOrCreateSimulation(e); sim.TimeScale != 1 {
		t.Errorf("time scale = %v after a survivable hit, want 1", sim.TimeScale)
	}
}

func TestEveryOverlappingBulletCounts(t *testing.T) {
	e := newTestWorld(t)
	player := addPlayer(e, geom.V(100, 100))
	factory.CreateBullet(e, geom.V(100, 100), geom.V(1, 0))
	factory.CreateBullet(e, geom.V(101, 99), geom.V(0, 1))

	UpdateCollisions(e)

	if got, want := components.Health.Get(player).Current, cfg.Player.Health-2*cfg.Bullet.Damage; got != want {
		t.Errorf("health = %d, want %d", got, want)
	}
}

func TestBulletTouchingEdgeMisses(t *testing.T) {
	e := newTestWorld(t)
	player := addPlayer(e, geom.V(100, 100))
	factory.CreateBullet(e, geom.V(103, 100), geom.V(1, 0))
	factory.CreateBullet(e, geom.V(180, 40), geom.V(1, 0))

	UpdateCollisions(e)

	if got := components.Health.Get(player).Current; got != cfg.Player.Health {
		t.Errorf("health = %d, want untouched %d", got, cfg.Player.Health)
	}
	if n := countEntries(e.World, tags.Bullet); n != 2 {
		t.Errorf("%d bullets left, want 2", n)
	}
}

func TestLethalHit(t *testing.T) {
	e := newTestWorld(t)
	player := addPlayer(e, geom.V(100, 100))
	components.Health.Get(player).Current = cfg.Bullet.Damage
	em := components.Emitter.Get(player)
	em.SetDirection(geom.V(1, 0))
	factory.CreateBullet(e, geom.V(100, 100), geom.V(1, 0))

	UpdateCollisions(e)

	if got := components.Health.Get(player).Current; got > 0 {
		t.Fatalf("health = %d, want dead", got)
	}
	if n := len(em.Particles); n != cfg.Player.DeathBurst {
		t.Errorf("death burst spawned %d particles, want %d", n, cfg.Player.DeathBurst)
	}
	if _, ok := em.Direction(); ok {
		t.Error("death burst should spray in every direction")
	}
	if !hasSound(e, cfg.SoundDeath) {
		t.Error("expected a death sound")
	}

	sim := GetOrCreateSimulation(e)
	if sim.TimeScale != cfg.Sim.DeathTimeScale {
		t.Fatalf("time scale = %v, want %v", sim.TimeScale, cfg.Sim.DeathTimeScale)
	}

	// Slow motion holds while the player is dead
	for i := 0; i < 30; i++ {
		UpdateClock(e)
	}
	if sim.TimeScale != cfg.Sim.DeathTimeScale {
		t.Errorf("time scale recovered to %v after death", sim.TimeScale)
	}
}

func TestCollisionsInvalidEntity(t *testing.T) {
	e := newTestWorld(t)
	entry := e.World.Entry(e.World.Create(components.Body))

	if _, err := Collisions(entry, tags.ResolvBullet); !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("err = %v, want ErrInvalidEntity", err)
	}
}

func TestUpdateCollisionsPanicsWithoutHitRegion(t *testing.T) {
	e := newTestWorld(t)
	player := addPlayer(e, geom.V(100, 100))
	components.Object.SetValue(player, components.ObjectData{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a player without a hit region")
		}
	}()
	UpdateCollisions(e)
}
