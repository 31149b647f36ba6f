package polyclip

// ClipConvex intersects two convex polygons. It has the same contract as
// Clip but exploits convexity of both operands:
//
//   - a separating-axis pre-check detects disjoint polygons and returns a
//     zero-length result without running the half-plane filter;
//   - full containment either way returns a clockwise-normalized copy of the
//     contained polygon immediately.
//
// The general case runs the same half-plane filter as Clip and produces
// vertex-identical results (up to rotation offset); the fast path exists
// purely for performance. Output length is bounded by 2*len(subject)
// vertices per RequiredClipBufferSize when the subject is at least as dense
// as the clip; a denser clip can yield up to len(clip)+len(subject)
// vertices, and a result that outgrows buf fails with an
// *InsufficientBufferError carrying the true size.
func ClipConvex(clip, subject ConvexPolygon, buf []Point) ([]Point, error) {
	cv := clip.Vertices()
	sv := subject.Vertices()
	if err := validatePolygon(cv); err != nil {
		return nil, err
	}
	if err := validatePolygon(sv); err != nil {
		return nil, err
	}
	buf, err := ensureClipBuffer(buf, 2*len(sv))
	if err != nil {
		return nil, err
	}

	if convexDisjoint(cv, sv) {
		return buf[:0], nil
	}
	if convexContains(cv, sv) {
		count := copy(buf, sv)
		SortClockwise(buf[:count])
		return buf[:count], nil
	}
	if convexContains(sv, cv) {
		if len(cv) > len(buf) {
			return nil, &InsufficientBufferError{Required: len(cv), Actual: len(buf)}
		}
		count := copy(buf, cv)
		SortClockwise(buf[:count])
		return buf[:count], nil
	}

	count := copy(buf, sv)
	SortClockwise(buf[:count])
	count, err = clipAgainst(cv, buf, count)
	if err != nil {
		return nil, err
	}
	return buf[:count], nil
}

// convexDisjoint reports whether two convex polygons are strictly separated
// along some edge normal of either polygon. Touching polygons are not
// treated as disjoint, so tangent configurations fall through to the
// half-plane filter and agree with the general clipper.
func convexDisjoint(a, b []Point) bool {
	return separatedOnAxes(a, b) || separatedOnAxes(b, a)
}

// separatedOnAxes projects both polygons onto every edge normal of a and
// looks for a strict gap between the projection intervals.
func separatedOnAxes(a, b []Point) bool {
	n := len(a)
	for i := 0; i < n; i++ {
		axis := Normal(EdgeVector(a[i], a[(i+1)%n]))
		minA, maxA := projectOnto(a, axis)
		minB, maxB := projectOnto(b, axis)
		if minA > maxB+epsilon || minB > maxA+epsilon {
			return true
		}
	}
	return false
}

// projectOnto returns the interval covered by the vertices projected onto
// the (not necessarily unit) axis.
func projectOnto(verts []Point, axis Vec2) (min, max float64) {
	min = axis.Dot(Vec2{X: verts[0].X, Y: verts[0].Y})
	max = min
	for _, v := range verts[1:] {
		d := axis.Dot(Vec2{X: v.X, Y: v.Y})
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// convexContains reports whether every vertex of inner lies in the closed
// interior of the convex polygon outer.
func convexContains(outer, inner []Point) bool {
	cw := IsClockwise(outer)
	for i := range outer {
		edge := clipEdge(outer, i, cw)
		for _, p := range inner {
			if !edge.InRightHalfPlane(p) {
				return false
			}
		}
	}
	return true
}
