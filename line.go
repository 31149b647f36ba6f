package polyclip

import "math"

// epsilon is the tolerance used for half-plane classification and for
// detecting parallel lines. Boundary points within this tolerance count as
// inside, so polygons that exactly share an edge keep it after clipping.
const epsilon = 1e-9

// EdgeVector returns the displacement from a to b.
func EdgeVector(a, b Point) Vec2 {
	return Vec2{X: b.X - a.X, Y: b.Y - a.Y}
}

// Normal returns the left perpendicular (-y, x) of the edge vector.
// For the clockwise edge order used throughout this package, this is the
// outward-facing normal of the edge.
func Normal(v Vec2) Vec2 {
	return v.Perp()
}

// Line is a directed line through two endpoints. During clipping each clip
// edge is treated as a Line whose right half-plane is the kept region.
type Line struct {
	Start, End Point
}

// Direction returns the displacement from Start to End.
func (l Line) Direction() Vec2 {
	return EdgeVector(l.Start, l.End)
}

// InRightHalfPlane reports whether p lies in the closed right half-plane of
// the directed line. Points on the line itself count as inside, which keeps
// shared boundary vertices between clip and subject instead of dropping them.
func (l Line) InRightHalfPlane(p Point) bool {
	return l.Direction().Cross(EdgeVector(l.Start, p)) <= epsilon
}

// Intersect solves the 2x2 linear system for the intersection of the two
// infinite lines, returning the parametric distance t along the receiver so
// that l.At(t) is the intersection point. ok is false when the lines are
// parallel or either is degenerate; no division happens in that case.
func (l Line) Intersect(other Line) (t float64, ok bool) {
	d := l.Direction()
	e := other.Direction()
	denom := d.Cross(e)
	if math.Abs(denom) < epsilon {
		return 0, false
	}
	return EdgeVector(l.Start, other.Start).Cross(e) / denom, true
}

// At evaluates the parametric point Start + t*(End-Start).
func (l Line) At(t float64) Point {
	return l.Start.Lerp(l.End, t)
}
