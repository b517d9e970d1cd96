// Package control runs pointer gestures against boxes and carries them over the wire.
package control

import (
	"github.com/frudas24/rotabox/internal/geom"
	"github.com/frudas24/rotabox/internal/transform"
)

// ClampDrag keeps a dragged box inside container. Positions are relative to
// the container, so only its size is read. A box larger than the container
// on an axis is pinned to 0 on that axis.
func ClampDrag(left, top, width, height float64, container geom.Rect) (float64, float64) {
	return clampAxis(left, container.W-width), clampAxis(top, container.H-height)
}

// ClampResize truncates a resized box at the container edges. Only the
// edges handle h drags are cut; the opposite edges and the untouched axis
// keep their place. A cut never leaves a side below its minimum: the dragged
// edge is pinned at the minimum distance from the fixed one instead.
func ClampResize(r geom.Rect, h transform.Handle, minWidth, minHeight float64, container geom.Rect) geom.Rect {
	sx, sy, ok := h.Axes()
	if !ok {
		return r
	}
	r.X, r.W = clampEdge(r.X, r.W, sx, minWidth, container.W)
	r.Y, r.H = clampEdge(r.Y, r.H, sy, minHeight, container.H)
	return r
}

// clampEdge cuts one axis of a resize. side is -1 when the low edge moves,
// 1 when the high edge moves and 0 when the axis is not being resized.
func clampEdge(pos, size float64, side int, minSize, limit float64) (float64, float64) {
	switch side {
	case -1:
		far := pos + size
		if pos < 0 {
			pos, size = 0, far
		}
		if size < minSize {
			pos, size = far-minSize, minSize
		}
	case 1:
		if pos+size > limit {
			size = limit - pos
		}
		size = max(size, minSize)
	}
	return pos, size
}

// clampAxis bounds v to [0, hi], preferring 0 when hi is negative.
func clampAxis(v, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}
