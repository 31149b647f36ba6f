// Package polyclip is the polygon-clipping kernel used by the drawable
// rendering pipeline to compute the visible region produced when one polygon
// masks another, e.g. the stencil region of a masking shape overlapping a
// content shape.
//
// # Overview
//
// The kernel provides exact 2D geometric primitives (half-plane tests,
// line-line intersection, winding-order normalization, per-edge outward
// normals) and two clipping algorithms on top of them:
//
//   - [Clip]: a Sutherland-Hodgman style clipper for arbitrary polygons.
//   - [ClipConvex]: a specialized fast path for convex-against-convex
//     clipping with separating-axis and containment early exits.
//
// Both return the intersection of the clip and subject regions as a
// clockwise-ordered vertex sequence.
//
// # Buffers
//
// All clipping writes into caller-owned storage. Callers ask
// [RequiredClipBufferSize] (or [RequiredAxisBufferSize] for [Axes]) for the
// worst-case vertex count, allocate once, and reuse the buffer across calls
// for zero-allocation per-frame masking:
//
//	buf := make([]polyclip.Point, polyclip.RequiredClipBufferSize(mask, content))
//	for frame() {
//	    out, err := polyclip.Clip(mask, content, buf)
//	    ...
//	}
//
// Passing nil allocates a buffer of exactly the required size. Passing a
// shorter buffer fails with [ErrInsufficientBuffer]; results are never
// silently truncated.
//
// # Polygons
//
// Anything implementing [Polygon] can be clipped. Types that additionally
// implement [ConvexPolygon] assert convexity and are dispatched to the fast
// path; the assertion is not verified, and asserting it falsely produces
// incorrect results rather than an error. [Simple] and [Convex] are the
// ready-made value types.
//
// # Concurrency
//
// Every operation is a synchronous pure function over its inputs, except for
// writing into the supplied buffer. Concurrent calls are safe as long as
// each call uses a distinct buffer; the kernel holds no state between calls.
//
// # Coordinate System
//
// Coordinates are plain float64 pairs. The canonical output orientation is
// clockwise, defined as negative signed (shoelace) area.
package polyclip
