package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Bullet = donburi.NewTag().SetName("Bullet")
	Shell  = donburi.NewTag().SetName("Shell")
	Portal = donburi.NewTag().SetName("Portal")
)

// Resolv tags for hit regions
const (
	ResolvPlayer = "Player"
	ResolvBullet = "Bullet"
)
