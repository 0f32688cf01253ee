package systems

import (
	"image/color"

	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/particles"
	"github.com/automoto/playground/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// drawDebugShapes outlines emitter spawn regions and, when all is set, every
// hit region in the collision space. Emitters flagged Debug are always drawn.
func drawDebugShapes(ecs *ecs.ECS, dst *ebiten.Image, all bool) {
	components.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		em := components.Emitter.Get(e).Emitter
		if all || em.Debug {
			drawEmitterShape(dst, em, cfg.Particle.DebugColor)
		}
	})
	if !all {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvBullet) {
			c = color.RGBA{255, 0, 0, 255}
		}
		vector.StrokeRect(dst, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}

func drawEmitterShape(dst *ebiten.Image, em *particles.Emitter, c color.RGBA) {
	x, y := float32(em.Pos.X), float32(em.Pos.Y)

	switch em.Shape.Kind() {
	case particles.KindPoint:
		vector.FillRect(dst, x, y, 1, 1, c, false)
	case particles.KindLine:
		half := em.Shape.Extent().Scale(0.5)
		from, to := em.Pos.Sub(half), em.Pos.Add(half)
		vector.StrokeLine(dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, c, false)
	case particles.KindCircle:
		vector.StrokeCircle(dst, x, y, float32(em.Shape.Radius()), 1, c, false)
	case particles.KindRect:
		size := em.Shape.Size()
		vector.StrokeRect(dst, x-float32(size.X/2), y-float32(size.Y/2), float32(size.X), float32(size.Y), 1, c, false)
	default:
		panic("systems: no debug outline for shape " + em.Shape.Kind().String())
	}
}
