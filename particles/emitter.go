package particles

import (
	"math"
	"math/rand"

	"github.com/automoto/playground/geom"
)

// EmitterConfig holds the construction options of an Emitter.
type EmitterConfig struct {
	// Direction is normalized on use; zero means a random direction per particle.
	Direction geom.Vec2
	// Speed is the initial particle speed; zero picks a random int in [5, 10].
	Speed float64
	// SpawnRate is particles per second; zero disables continuous spawning.
	SpawnRate float64
	Shape     Shape
	Particle  Config
	Debug     bool
}

// Emitter spawns, updates and owns a set of particles.
type Emitter struct {
	Pos       geom.Vec2
	Speed     float64
	SpawnRate float64
	Shape     Shape
	Particle  Config
	Particles []Particle

	Active               bool
	DeactivateAfterBurst bool
	Debug                bool

	dir       geom.Vec2
	hasDir    bool
	sinceLast float64
	rng       *rand.Rand
}

// NewEmitter creates an active emitter at pos. rng drives every random draw.
func NewEmitter(pos geom.Vec2, cfg EmitterConfig, rng *rand.Rand) *Emitter {
	e := &Emitter{
		Pos:       pos,
		Speed:     cfg.Speed,
		SpawnRate: cfg.SpawnRate,
		Shape:     cfg.Shape,
		Particle:  cfg.Particle,
		Active:    true,
		Debug:     cfg.Debug,
		rng:       rng,
	}
	e.SetDirection(cfg.Direction)
	return e
}

// SetDirection fixes the base particle direction. A zero vector clears it.
func (e *Emitter) SetDirection(v geom.Vec2) {
	if v.IsZero() {
		e.ClearDirection()
		return
	}
	e.dir = v.Normalize()
	e.hasDir = true
}

func (e *Emitter) ClearDirection() {
	e.dir = geom.Vec2{}
	e.hasDir = false
}

// Direction returns the fixed base direction, if one is set.
func (e *Emitter) Direction() (geom.Vec2, bool) {
	return e.dir, e.hasDir
}

// Update advances the emitter by dt seconds.
//
// Continuous spawning is batched: once at least one period has accumulated,
// max(1, floor(dt*rate)) particles are created and the accumulator resets.
// Leftover time is dropped, so low frame rates under-spawn slightly.
func (e *Emitter) Update(dt float64) {
	e.sinceLast += dt

	if e.SpawnRate > 0 && e.sinceLast*e.SpawnRate >= 1 {
		n := int(dt * e.SpawnRate)
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			e.SpawnOne()
		}
		e.sinceLast = 0
	}

	alive := e.Particles[:0]
	for i := range e.Particles {
		p := &e.Particles[i]
		p.Update(dt)
		if p.Alive() {
			alive = append(alive, *p)
		}
	}
	// clear the tail so dropped particles are not retained
	for i := len(alive); i < len(e.Particles); i++ {
		e.Particles[i] = Particle{}
	}
	e.Particles = alive

	if e.DeactivateAfterBurst && len(e.Particles) == 0 {
		e.Active = false
	}
}

// SpawnOne creates a single particle according to the emitter shape.
func (e *Emitter) SpawnOne() {
	dir := e.dir
	if !e.hasDir {
		dir = e.randomUnit()
	}
	speed := e.Speed
	if speed == 0 {
		speed = float64(randInt(e.rng, 5, 10))
	}

	pos := e.Pos
	switch e.Shape.Kind() {
	case KindPoint:
		spread := e.Shape.Spread()
		dir = dir.Rotate(e.uniform(-spread, spread))
	case KindLine:
		ext := e.Shape.Extent()
		along := ext.Normalize().Scale(e.rng.Float64() * ext.Len())
		pos = pos.Sub(ext.Scale(0.5)).Add(along)
	case KindCircle:
		pos = pos.Add(e.randomUnit().Scale(e.rng.Float64() * e.Shape.Radius()))
	case KindRect:
		size := e.Shape.Size()
		pos = pos.Sub(size.Scale(0.5)).Add(geom.V(e.rng.Float64()*size.X, e.rng.Float64()*size.Y))
	default:
		panic("particles: unknown shape " + e.Shape.Kind().String())
	}

	e.Particles = append(e.Particles, e.Particle.New(pos, dir.Scale(speed), e.rng))
}

// Burst spawns count particles at once, ignoring the spawn rate. A count of
// zero or less picks a random count in [5, 10]. It returns the number spawned.
func (e *Emitter) Burst(count int, deactivateAfter bool) int {
	if count <= 0 {
		count = randInt(e.rng, 5, 10)
	}
	for i := 0; i < count; i++ {
		e.SpawnOne()
	}
	if deactivateAfter {
		e.DeactivateAfterBurst = true
	}
	return count
}

func (e *Emitter) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

// randomUnit returns a unit vector with a uniformly distributed heading.
func (e *Emitter) randomUnit() geom.Vec2 {
	a := e.rng.Float64() * 2 * math.Pi
	return geom.V(math.Cos(a), math.Sin(a))
}
