package polyclip

// RequiredAxisBufferSize returns the minimum buffer length for Axes: one
// axis per edge, which is the polygon's vertex count.
func RequiredAxisBufferSize(p Polygon) int {
	return len(p.Vertices())
}

// Axes computes the outward normal of every edge (wrapping from the last
// vertex back to the first), in input order. Separating-axis collision tests
// project both shapes onto these.
//
// When normalize is true each axis is unit length. buf may be nil, in which
// case a buffer of exactly RequiredAxisBufferSize(p) is allocated; a
// non-nil buffer shorter than that fails with ErrInsufficientBuffer.
func Axes(p Polygon, normalize bool, buf []Vec2) ([]Vec2, error) {
	verts := p.Vertices()
	if err := validatePolygon(verts); err != nil {
		return nil, err
	}
	required := len(verts)
	switch {
	case buf == nil:
		buf = make([]Vec2, required)
	case len(buf) < required:
		return nil, &InsufficientBufferError{Required: required, Actual: len(buf)}
	}
	for i := range verts {
		axis := Normal(EdgeVector(verts[i], verts[(i+1)%required]))
		if normalize {
			axis = axis.Normalize()
		}
		buf[i] = axis
	}
	return buf[:required], nil
}
