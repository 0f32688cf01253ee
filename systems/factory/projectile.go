package factory

import (
	"math/rand"

	"github.com/automoto/playground/archetypes"
	"github.com/automoto/playground/components"
	cfg "github.com/automoto/playground/config"
	"github.com/automoto/playground/geom"
	"github.com/automoto/playground/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a bullet at pos travelling along dir.
func CreateBullet(ecs *ecs.ECS, pos, dir geom.Vec2) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	size := cfg.Bullet.HitSize
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvBullet)
	obj.Data = bullet
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Body.SetValue(bullet, components.BodyData{
		Pos:   pos,
		Vel:   dir,
		Speed: cfg.Bullet.Speed,
	})
	components.Lifetime.SetValue(bullet, components.LifetimeData{
		Life: cfg.Bullet.Life,
		Max:  cfg.Bullet.Life,
	})

	return bullet
}

// CreateShell spawns a spent casing ejected along dir with a random speed
// and spin.
func CreateShell(ecs *ecs.ECS, pos, dir geom.Vec2, rng *rand.Rand) *donburi.Entry {
	shell := archetypes.Shell.Spawn(ecs)

	speed := float64(cfg.Shell.MinSpeed + rng.Intn(cfg.Shell.MaxSpeed-cfg.Shell.MinSpeed+1))
	components.Body.SetValue(shell, components.BodyData{
		Pos:   pos,
		Vel:   dir,
		Speed: speed,
	})
	components.Lifetime.SetValue(shell, components.LifetimeData{
		Life: cfg.Shell.Life,
		Max:  cfg.Shell.Life,
	})
	components.Drag.SetValue(shell, components.DragData{Rate: cfg.Shell.Drag})
	components.Spin.SetValue(shell, components.SpinData{
		Rate:      rng.Float64(),
		BaseSpeed: speed,
	})

	return shell
}
