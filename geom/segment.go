package geom

// Segment is a line segment from A to B.
type Segment struct {
	A, B Vec2
}

// direction returns the signed area of the turn a->b->c.
func direction(a, b, c Vec2) float64 {
	return c.Sub(a).Cross(b.Sub(a))
}

// Intersect reports whether segment p1-p2 properly crosses segment p3-p4.
// Both segments must straddle each other; touching or collinear segments
// do not count.
func Intersect(p1, p2, p3, p4 Vec2) bool {
	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// Crosses reports whether s properly crosses other.
func (s Segment) Crosses(other Segment) bool {
	return Intersect(s.A, s.B, other.A, other.B)
}

// PointSegmentDistance returns the distance from p to the closest point on s.
// s must have non-zero length.
func PointSegmentDistance(p Vec2, s Segment) float64 {
	v1 := s.B.Sub(s.A)
	lenSq := v1.LenSq()
	if lenSq == 0 {
		panic("geom: distance to a zero-length segment")
	}
	t := p.Sub(s.A).Dot(v1) / lenSq
	if t < 0 {
		return s.A.Distance(p)
	}
	if t > 1 {
		return s.B.Distance(p)
	}
	return s.A.Add(v1.Scale(t)).Distance(p)
}

// Rect is an axis-aligned box with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the box of the given size centred on c.
func RectAround(c Vec2, size float64) Rect {
	return Rect{X: c.X - size/2, Y: c.Y - size/2, W: size, H: size}
}

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
