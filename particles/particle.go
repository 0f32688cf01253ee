package particles

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/playground/geom"
)

// Particle is a short lived visual point owned by an Emitter.
type Particle struct {
	Pos      geom.Vec2
	Vel      geom.Vec2
	Speed    float64
	Age      float64
	Lifetime float64
	Color    color.RGBA
	// Weight scales the render alpha, 1 is fully opaque.
	Weight float64
	Fade   bool
}

// Alive reports whether the particle is younger than its lifetime.
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}

func (p *Particle) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(p.Speed * dt))
	p.Age += dt
	if p.Fade {
		p.Weight = math.Max(0, 1-p.Age/p.Lifetime)
	}
}

// RenderColor returns the particle colour with alpha premultiplied by Weight.
func (p *Particle) RenderColor() color.RGBA {
	w := p.Weight
	return color.RGBA{
		R: uint8(float64(p.Color.R) * w),
		G: uint8(float64(p.Color.G) * w),
		B: uint8(float64(p.Color.B) * w),
		A: uint8(float64(p.Color.A) * w),
	}
}

// Config describes the particles an emitter produces.
type Config struct {
	Color    color.RGBA
	Lifetime float64
	MinSpeed int
	MaxSpeed int
	Fade     bool
}

// Plain is the default green particle.
func Plain() Config {
	return Config{
		Color:    color.RGBA{0, 200, 0, 255},
		Lifetime: 3,
		MinSpeed: 5,
		MaxSpeed: 10,
	}
}

// FadeOut is a quick particle that fades to transparent over its lifetime.
func FadeOut(c color.RGBA) Config {
	c.A = 255
	return Config{
		Color:    c,
		Lifetime: 0.5,
		MinSpeed: 1,
		MaxSpeed: 3,
		Fade:     true,
	}
}

// New creates a particle at pos moving along vel.
func (c Config) New(pos, vel geom.Vec2, rng *rand.Rand) Particle {
	return Particle{
		Pos:      pos,
		Vel:      vel,
		Speed:    float64(randInt(rng, c.MinSpeed, c.MaxSpeed)),
		Lifetime: c.Lifetime,
		Color:    c.Color,
		Weight:   1,
		Fade:     c.Fade,
	}
}

// randInt returns a uniform int in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
