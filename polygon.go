package polyclip

// Polygon is an ordered sequence of at least 3 vertices describing a closed,
// non-self-intersecting region. The kernel treats the returned slice as
// read-only and never mutates it. No particular winding order is required;
// the clippers normalize internally.
type Polygon interface {
	Vertices() []Point
}

// ConvexPolygon is a Polygon whose implementor asserts that every interior
// angle is at most 180 degrees. The assertion is not verified: passing a
// non-convex polygon through this interface produces incorrect clipping
// results, not an error.
type ConvexPolygon interface {
	Polygon

	// Convex is a marker method carrying the convexity assertion.
	Convex()
}

// Simple is a polygon with no convexity guarantee.
type Simple struct {
	verts []Point
}

// NewSimple creates a polygon from vertices in order. The slice is retained,
// not copied.
func NewSimple(verts ...Point) Simple {
	return Simple{verts: verts}
}

// Vertices returns the polygon's vertices in order.
func (p Simple) Vertices() []Point { return p.verts }

// Convex is a polygon the caller asserts to be convex.
type Convex struct {
	verts []Point
}

// NewConvex creates a convex polygon from vertices in order. The slice is
// retained, not copied. Convexity is the caller's responsibility.
func NewConvex(verts ...Point) Convex {
	return Convex{verts: verts}
}

// Vertices returns the polygon's vertices in order.
func (p Convex) Vertices() []Point { return p.verts }

// Convex marks the convexity assertion.
func (Convex) Convex() {}

// SignedArea returns the signed area enclosed by the vertices using the
// shoelace formula with wrap-around. Negative area means clockwise order,
// the canonical orientation of this package; positive means
// counter-clockwise. Fewer than 3 vertices yield 0.
func SignedArea(verts []Point) float64 {
	n := len(verts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
	}
	return sum / 2
}

// IsClockwise reports whether the vertices are in clockwise order.
// A degenerate (zero-area) sequence counts as clockwise.
func IsClockwise(verts []Point) bool {
	return SignedArea(verts) <= 0
}

// SortClockwise reorders the vertices in place so that their signed area is
// negative (clockwise). Already-clockwise input is left untouched, so the
// operation is idempotent.
func SortClockwise(verts []Point) {
	if IsClockwise(verts) {
		return
	}
	for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}
}

// BoundingBox returns the axis-aligned bounding box of the vertices.
// Both return values are zero for an empty slice.
func BoundingBox(verts []Point) (min, max Point) {
	if len(verts) == 0 {
		return Point{}, Point{}
	}
	min, max = verts[0], verts[0]
	for _, v := range verts[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max
}

// validatePolygon rejects vertex sequences that cannot form a polygon.
func validatePolygon(verts []Point) error {
	if len(verts) < 3 {
		return &DegeneratePolygonError{N: len(verts)}
	}
	return nil
}
