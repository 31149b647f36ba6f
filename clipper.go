package polyclip

// RequiredClipBufferSize returns the minimum buffer length for clipping
// subject against clip. When both polygons assert convexity the bound is
// 2*len(subject) vertices: a convex clip region can cut each subject edge at
// most twice. Otherwise every pair of edges may contribute an intersection
// vertex, so the bound is len(clip)*len(subject).
//
// The result depends only on the vertex counts, never on the geometry, so
// a buffer sized once can be reused for any polygons of the same counts.
//
// The convex bound assumes the subject has at least as many vertices as the
// clip, which is the usual masking setup. A denser clip polygon can produce
// an intersection of up to len(clip)+len(subject) vertices; when the result
// outgrows the buffer, clipping fails with an *InsufficientBufferError
// carrying the true size instead of truncating, so either pass the denser
// polygon as the subject or size the buffer for the sum.
func RequiredClipBufferSize(clip, subject Polygon) int {
	if bothConvex(clip, subject) {
		return 2 * len(subject.Vertices())
	}
	return len(clip.Vertices()) * len(subject.Vertices())
}

// Clip intersects subject with clip and returns the resulting polygon as a
// clockwise-ordered prefix sub-slice of buf. A zero-length result means the
// polygons do not overlap.
//
// buf must be at least RequiredClipBufferSize(clip, subject) long or nil, in
// which case a buffer of exactly that size is allocated. Ownership of buf
// stays with the caller; the kernel only writes to it for the duration of
// the call and keeps no reference afterwards.
//
// When both operands implement ConvexPolygon the call is dispatched to
// ClipConvex. Either input may be wound in either direction; the output is
// always clockwise.
func Clip(clip, subject Polygon, buf []Point) ([]Point, error) {
	if bothConvex(clip, subject) {
		return ClipConvex(clip.(ConvexPolygon), subject.(ConvexPolygon), buf)
	}
	cv := clip.Vertices()
	sv := subject.Vertices()
	if err := validatePolygon(cv); err != nil {
		return nil, err
	}
	if err := validatePolygon(sv); err != nil {
		return nil, err
	}
	buf, err := ensureClipBuffer(buf, len(cv)*len(sv))
	if err != nil {
		return nil, err
	}

	count := copy(buf, sv)
	SortClockwise(buf[:count])
	count, err = clipAgainst(cv, buf, count)
	if err != nil {
		return nil, err
	}
	return buf[:count], nil
}

// bothConvex reports whether both polygons carry the convexity assertion.
func bothConvex(clip, subject Polygon) bool {
	if _, ok := clip.(ConvexPolygon); !ok {
		return false
	}
	_, ok := subject.(ConvexPolygon)
	return ok
}

// ensureClipBuffer validates or allocates the output buffer.
func ensureClipBuffer(buf []Point, required int) ([]Point, error) {
	if buf == nil {
		Logger().Debug("polyclip: allocating clip buffer", "size", required)
		return make([]Point, required), nil
	}
	if len(buf) < required {
		return nil, &InsufficientBufferError{Required: required, Actual: len(buf)}
	}
	return buf, nil
}

// scratchSize is the largest per-call vertex count served from the stack.
// Larger buffers fall back to one heap allocation for the scratch copy.
const scratchSize = 64

// clipAgainst filters the count vertices at the front of buf against every
// edge of the clip polygon in turn, leaving the surviving polygon at the
// front of buf and returning its length.
//
// Edges are walked in clockwise-consistent direction regardless of the clip
// polygon's own winding, so the kept region is always the right half-plane.
// Each edge pass re-filters the intermediate polygon left by the previous
// pass; once the count drops to zero the polygons are disjoint and the
// remaining edges are skipped.
//
// Each edge pass can add at most one vertex, so the result never exceeds
// count+len(clipVerts) vertices, but that bound can exceed len(buf) when the
// clip polygon is denser than the subject. Filtering therefore happens in
// working storage sized for the geometric bound; the result is copied back
// into buf only when it fits, otherwise an *InsufficientBufferError carrying
// the true size is returned and buf holds its original contents.
func clipAgainst(clipVerts []Point, buf []Point, count int) (int, error) {
	cw := IsClockwise(clipVerts)

	workSize := len(buf)
	if grown := count + len(clipVerts); grown > workSize {
		workSize = grown
	}

	out := buf
	spilled := workSize > len(buf)
	if spilled {
		out = make([]Point, workSize)
		copy(out, buf[:count])
	}

	var scratchArr [scratchSize]Point
	scratch := scratchArr[:]
	if workSize > scratchSize {
		scratch = make([]Point, workSize)
	}

	for i := 0; i < len(clipVerts) && count > 0; i++ {
		edge := clipEdge(clipVerts, i, cw)
		in := scratch[:count]
		copy(in, out[:count])
		count = 0
		for j := range in {
			start := in[j]
			end := in[(j+1)%len(in)]
			startInside := edge.InRightHalfPlane(start)
			endInside := edge.InRightHalfPlane(end)
			switch {
			case endInside && startInside:
				out[count] = end
				count++
			case endInside:
				out[count] = intersectSegment(start, end, edge)
				count++
				out[count] = end
				count++
			case startInside:
				out[count] = intersectSegment(start, end, edge)
				count++
			}
		}
	}

	if spilled {
		if count > len(buf) {
			return 0, &InsufficientBufferError{Required: count, Actual: len(buf)}
		}
		copy(buf, out[:count])
	}
	return count, nil
}

// clipEdge returns the i-th boundary edge of the clip polygon in
// clockwise-consistent direction: for clockwise input the edge runs
// vertex i to vertex i+1, for counter-clockwise input it runs reversed.
func clipEdge(verts []Point, i int, cw bool) Line {
	n := len(verts)
	if cw {
		return Line{Start: verts[i], End: verts[(i+1)%n]}
	}
	return Line{Start: verts[(i+1)%n], End: verts[i]}
}

// intersectSegment returns the point where the subject segment crosses the
// clip edge's line. Callers only invoke this after observing that the
// segment straddles the edge, so a well-defined intersection exists; if the
// half-plane test straddled only within tolerance the lines can still be
// near-parallel, and the segment midpoint is the closest sensible answer.
func intersectSegment(start, end Point, edge Line) Point {
	seg := Line{Start: start, End: end}
	t, ok := seg.Intersect(edge)
	if !ok {
		return start.Lerp(end, 0.5)
	}
	return seg.At(t)
}
