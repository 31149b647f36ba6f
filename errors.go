package polyclip

import (
	"errors"
	"fmt"
)

// ErrInsufficientBuffer reports a caller-supplied buffer too short for the
// result: either shorter than the size returned by the corresponding
// capacity calculator, or outgrown by a convex intersection denser than the
// capacity formula assumes. Match with errors.Is; the concrete
// *InsufficientBufferError carries the sizes.
var ErrInsufficientBuffer = errors.New("polyclip: insufficient buffer")

// ErrDegeneratePolygon reports an input with fewer than 3 vertices.
// The kernel rejects such input up front rather than producing an
// undefined result.
var ErrDegeneratePolygon = errors.New("polyclip: degenerate polygon")

// InsufficientBufferError carries the required and actual buffer sizes of a
// rejected call. It unwraps to ErrInsufficientBuffer.
type InsufficientBufferError struct {
	Required int
	Actual   int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("polyclip: insufficient buffer: need %d vertices, have %d", e.Required, e.Actual)
}

func (e *InsufficientBufferError) Unwrap() error { return ErrInsufficientBuffer }

// DegeneratePolygonError carries the offending vertex count.
// It unwraps to ErrDegeneratePolygon.
type DegeneratePolygonError struct {
	N int
}

func (e *DegeneratePolygonError) Error() string {
	return fmt.Sprintf("polyclip: degenerate polygon: %d vertices, need at least 3", e.N)
}

func (e *DegeneratePolygonError) Unwrap() error { return ErrDegeneratePolygon }
