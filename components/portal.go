package components

import (
	"image/color"

	"github.com/automoto/playground/geom"
	"github.com/yohamta/donburi"
)

// PortalData is one end of the portal pair. The portal is a segment of
// Width centred on Pos, perpendicular to Normal.
type PortalData struct {
	Slot   int
	Pos    geom.Vec2
	Normal geom.Vec2
	Width  float64
	Color  color.RGBA
	Active bool
}

// Perp is the direction along the portal segment.
func (p *PortalData) Perp() geom.Vec2 {
	return p.Normal.Perp().Normalize()
}

// Exit is where a body lands when it arrives through this portal.
func (p *PortalData) Exit(offset float64) geom.Vec2 {
	return p.Pos.Add(p.Normal.Scale(offset))
}

func (p *PortalData) Segment() geom.Segment {
	half := p.Perp().Scale(p.Width / 2)
	return geom.Segment{A: p.Pos.Sub(half), B: p.Pos.Add(half)}
}

var Portal = donburi.NewComponentType[PortalData]()
