// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package stencil turns clipped polygon outlines into coverage masks and
// scissor state for the draw pipeline.
//
// The package sits on the consumer side of the polyclip kernel: a masking
// stage clips its shape against the content shape, hands the resulting
// clockwise vertex sequence to Rasterize, and uploads the returned 8-bit
// coverage mask as an R8Unorm texture restricted to the scissor rectangle.
package stencil

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/vector"

	"github.com/gogpu/polyclip"
)

// Mask is an 8-bit coverage mask for a clipped region. Each pixel holds the
// anti-aliased coverage of the polygon (0 = outside, 255 = fully inside).
// Alpha is addressed locally from (0,0); Rect places it in device space.
type Mask struct {
	Alpha *image.Alpha
	Rect  image.Rectangle
}

// Empty reports whether the mask covers no pixels, which is the case when
// the clipped region was empty or degenerate.
func (m *Mask) Empty() bool {
	return m.Alpha == nil || m.Rect.Empty()
}

// TextureDescriptor describes the GPU upload of a mask.
// Masks are single-channel, so the format is always R8Unorm.
type TextureDescriptor struct {
	Width  uint32
	Height uint32
	Format gputypes.TextureFormat
}

// Descriptor returns the texture descriptor for uploading the mask.
func (m *Mask) Descriptor() TextureDescriptor {
	if m.Empty() {
		return TextureDescriptor{Format: gputypes.TextureFormatUndefined}
	}
	return TextureDescriptor{
		Width:  uint32(m.Rect.Dx()),
		Height: uint32(m.Rect.Dy()),
		Format: gputypes.TextureFormatR8Unorm,
	}
}

// ScissorRect returns the integer pixel rectangle covering the vertices,
// expanded outward to whole pixels. The zero rectangle is returned for
// fewer than 3 vertices.
func ScissorRect(verts []polyclip.Point) image.Rectangle {
	if len(verts) < 3 {
		return image.Rectangle{}
	}
	min, max := polyclip.BoundingBox(verts)
	return image.Rect(
		int(math.Floor(min.X)), int(math.Floor(min.Y)),
		int(math.Ceil(max.X)), int(math.Ceil(max.Y)),
	)
}

// Rasterize fills the polygon into a coverage mask sized to its scissor
// rectangle. The vertices are taken as a single closed loop, the way the
// polyclip clippers emit them.
//
// A zero-length or degenerate vertex sequence (no overlap between the
// clipped shapes) rasterizes to an empty mask rather than an error, so
// callers can feed clip results through unconditionally.
func Rasterize(verts []polyclip.Point) *Mask {
	rect := ScissorRect(verts)
	if rect.Empty() {
		return &Mask{}
	}

	w, h := rect.Dx(), rect.Dy()
	polyclip.Logger().Debug("stencil: rasterizing mask", "width", w, "height", h)

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)
	r.MoveTo(float32(verts[0].X-ox), float32(verts[0].Y-oy))
	for _, v := range verts[1:] {
		r.LineTo(float32(v.X-ox), float32(v.Y-oy))
	}
	r.ClosePath()

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	return &Mask{Alpha: alpha, Rect: rect}
}
