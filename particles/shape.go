package particles

import (
	"fmt"

	"github.com/automoto/playground/geom"
)

// ShapeKind identifies the spawn region of an emitter.
type ShapeKind int

const (
	KindPoint ShapeKind = iota
	KindLine
	KindCircle
	KindRect
)

func (k ShapeKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape is an immutable spawn region. Build one with Point, Line, Circle
// or Rectangle.
type Shape struct {
	kind   ShapeKind
	spread float64
	extent geom.Vec2
	radius float64
}

// Point spawns at the emitter position and rotates the direction by up to
// spread degrees either way.
func Point(spread float64) Shape {
	return Shape{kind: KindPoint, spread: spread}
}

// Line spawns along extent, centred on the emitter position.
func Line(extent geom.Vec2) Shape {
	return Shape{kind: KindLine, extent: extent}
}

// Circle spawns inside a disc of the given radius.
func Circle(radius float64) Shape {
	return Shape{kind: KindCircle, radius: radius}
}

// Rectangle spawns inside a box of the given size centred on the emitter.
func Rectangle(size geom.Vec2) Shape {
	return Shape{kind: KindRect, extent: size}
}

func (s Shape) Kind() ShapeKind   { return s.kind }
func (s Shape) Spread() float64   { return s.spread }
func (s Shape) Extent() geom.Vec2 { return s.extent }
func (s Shape) Radius() float64   { return s.radius }
func (s Shape) Size() geom.Vec2   { return s.extent }
