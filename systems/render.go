package systems

import (
	"image/color"
	"math"

	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/particles"
	"github.com/automoto/playground/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// World layer, blitted at the screen shake offset
	worldLayer *ebiten.Image

	bulletImage *ebiten.Image
	shellImage  *ebiten.Image
)

// DrawWorld renders projectiles, the player and the portals onto an
// offscreen layer and blits it with the current screen shake.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	sim := GetOrCreateSimulation(ecs)
	settings := GetOrCreateSettings(ecs)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if worldLayer == nil || worldLayer.Bounds().Dx() != w || worldLayer.Bounds().Dy() != h {
		if worldLayer != nil {
			worldLayer.Deallocate()
		}
		worldLayer = ebiten.NewImage(w, h)
	}
	worldLayer.Clear()

	drawProjectiles(ecs, worldLayer)
	drawPlayer(ecs, worldLayer)
	drawPortals(ecs, worldLayer)
	drawDebugShapes(ecs, worldLayer, settings.Debug)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(sim.ScreenShake.X, sim.ScreenShake.Y)
	screen.DrawImage(worldLayer, drawOp)
}

func drawProjectiles(ecs *ecs.ECS, dst *ebiten.Image) {
	if bulletImage == nil {
		bulletImage = ebiten.NewImage(cfg.Bullet.Width, cfg.Bullet.Height)
		bulletImage.Fill(cfg.Bullet.Color)

		shellImage = ebiten.NewImage(cfg.Shell.Width, cfg.Shell.Height)
		vector.FillRect(shellImage, 0, 0, 1, float32(cfg.Shell.Height), cfg.Shell.RimColor, false)
		vector.FillRect(shellImage, 1, 0, float32(cfg.Shell.Width-1), float32(cfg.Shell.Height), cfg.Shell.BodyColor, false)
	}

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		life := components.Lifetime.Get(e)
		drawBar(dst, bulletImage, body, body.Vel.Angle(), life.Life/life.Max)
	})

	tags.Shell.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		life := components.Lifetime.Get(e)
		spin := components.Spin.Get(e)

		// Tumble faster while the casing is still moving quickly
		turns := 0.0
		if spin.BaseSpeed > 0 {
			turns = body.Speed / spin.BaseSpeed * spin.Rate
		}
		angle := body.Vel.Angle() - math.Pi/2 - 2*math.Pi*turns
		drawBar(dst, shellImage, body, angle, life.Life/life.Max)
	})
}

// drawBar draws img centred on the body, rotated and shrunk with its remaining life.
func drawBar(dst, img *ebiten.Image, body *components.BodyData, angle, scale float64) {
	if scale <= 0 {
		return
	}
	bw, bh := img.Bounds().Dx(), img.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(bw)/2, -float64(bh)/2)
	drawOp.GeoM.Scale(scale, scale)
	if !body.Vel.IsZero() {
		drawOp.GeoM.Rotate(angle)
	}
	drawOp.GeoM.Translate(body.Pos.X, body.Pos.Y)
	dst.DrawImage(img, drawOp)
}

func drawPlayer(ecs *ecs.ECS, dst *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		player := components.Player.Get(e)

		drawParticles(dst, components.Emitter.Get(e).Emitter)

		aim := player.Aim.Sub(body.Pos).Normalize()
		if !aim.IsZero() {
			from := body.Pos.Add(aim.Scale(cfg.Player.GunStart))
			to := body.Pos.Add(aim.Scale(cfg.Player.GunEnd))
			vector.StrokeLine(dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, cfg.Player.GunColor, false)
		}

		vector.FillCircle(dst, float32(body.Pos.X), float32(body.Pos.Y), float32(cfg.Player.BodyRadius), cfg.Player.BodyColor, false)
	})
}

func drawPortals(ecs *ecs.ECS, dst *ebiten.Image) {
	tags.Portal.Each(ecs.World, func(e *donburi.Entry) {
		portal := components.Portal.Get(e)
		drawParticles(dst, components.Emitter.Get(e).Emitter)

		alpha := cfg.Portal.InactiveAlpha
		if portal.Active {
			alpha = cfg.Portal.ActiveAlpha
		}
		c := color.NRGBA{R: portal.Color.R, G: portal.Color.G, B: portal.Color.B, A: alpha}

		seg := portal.Segment()
		vector.StrokeLine(dst, float32(seg.A.X), float32(seg.A.Y), float32(seg.B.X), float32(seg.B.Y), 1, c, false)
	})
}

func drawParticles(dst *ebiten.Image, em *particles.Emitter) {
	size := cfg.Particle.Size
	for i := range em.Particles {
		p := &em.Particles[i]
		vector.FillRect(dst, float32(math.Floor(p.Pos.X)), float32(math.Floor(p.Pos.Y)), size, size, p.RenderColor(), false)
	}
}
