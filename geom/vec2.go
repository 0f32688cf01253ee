package geom

import "math"

// Vec2 is a 2D vector in simulation space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) LenSq() float64       { return a.X*a.X + a.Y*a.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) IsZero() bool         { return a.X == 0 && a.Y == 0 }

// Distance returns the euclidean distance between a and b.
func (a Vec2) Distance(b Vec2) float64 {
	return a.Sub(b).Len()
}

// Cross returns the z component of the 3D cross product of a and b.
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Normalize returns the unit vector in the direction of a.
// The zero vector normalizes to the zero vector.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Perp returns a rotated a quarter turn: (-y, x).
func (a Vec2) Perp() Vec2 {
	return Vec2{-a.Y, a.X}
}

// Rotate returns a rotated by the given angle in degrees.
func (a Vec2) Rotate(degrees float64) Vec2 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vec2{a.X*cos - a.Y*sin, a.X*sin + a.Y*cos}
}

// Angle returns the heading of a in radians.
func (a Vec2) Angle() float64 {
	return math.Atan2(a.Y, a.X)
}

// Lerp interpolates between a and b by t.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}
