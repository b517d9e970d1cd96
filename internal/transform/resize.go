// Package transform solves resize and rotate gestures on center-based rects.
package transform

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/frudas24/rotabox/internal/geom"
)

// ErrUnknownHandle is returned by ParseHandle for unrecognised handle ids.
var ErrUnknownHandle = errors.New("unknown resize handle")

// Handle identifies one of the eight resize handles by compass direction.
type Handle string

const (
	HandleN  Handle = "n"
	HandleS  Handle = "s"
	HandleE  Handle = "e"
	HandleW  Handle = "w"
	HandleNE Handle = "ne"
	HandleNW Handle = "nw"
	HandleSE Handle = "se"
	HandleSW Handle = "sw"
)

// Handles lists every resize handle.
var Handles = []Handle{HandleN, HandleS, HandleE, HandleW, HandleNE, HandleNW, HandleSE, HandleSW}

var handleAliases = map[string]Handle{
	"t": HandleN, "b": HandleS, "r": HandleE, "l": HandleW,
	"tr": HandleNE, "tl": HandleNW, "br": HandleSE, "bl": HandleSW,
}

// ParseHandle accepts compass ids (n, se, ...), edge ids (t, br, ...) and
// element ids with a "resize-" prefix.
func ParseHandle(s string) (Handle, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	id = strings.TrimPrefix(id, "resize-")
	for _, h := range Handles {
		if Handle(id) == h {
			return h, nil
		}
	}
	if h, ok := handleAliases[id]; ok {
		return h, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownHandle, s)
}

// Valid reports whether h is one of the eight handles.
func (h Handle) Valid() bool {
	_, _, ok := h.Axes()
	return ok
}

// Axes returns which side of each local axis the handle sits on: -1 for
// west/north, 1 for east/south, 0 when the handle does not touch that axis.
func (h Handle) Axes() (sx, sy int, ok bool) {
	switch h {
	case HandleN:
		return 0, -1, true
	case HandleS:
		return 0, 1, true
	case HandleE:
		return 1, 0, true
	case HandleW:
		return -1, 0, true
	case HandleNE:
		return 1, -1, true
	case HandleNW:
		return -1, -1, true
	case HandleSE:
		return 1, 1, true
	case HandleSW:
		return -1, 1, true
	}
	return 0, 0, false
}

// LocalDelta projects a screen-space pointer delta onto the axes of a box
// rotated by rotateAngle degrees.
func LocalDelta(dx, dy, rotateAngle float64) (dw, dh float64) {
	alpha := math.Atan2(dy, dx)
	length := geom.Length(dx, dy)
	beta := alpha - geom.DegToRadian(rotateAngle)
	return length * math.Cos(beta), length * math.Sin(beta)
}

// SolveResize returns rect after dragging handle h by the screen delta
// (dx, dy). The edges opposite the handle stay fixed, sizes never drop below
// the minimums and the rotation is unchanged. An unknown handle returns rect.
func SolveResize(h Handle, rect geom.CenterRect, dx, dy, minWidth, minHeight float64) geom.CenterRect {
	sx, sy, ok := h.Axes()
	if !ok {
		return rect
	}
	dw, dh := LocalDelta(dx, dy, rect.RotateAngle)

	// Unit vectors of the box's local x and y axes in screen space.
	sin, cos := math.Sincos(geom.DegToRadian(rect.RotateAngle))
	ux, uy := cos, sin
	vx, vy := -sin, cos

	if sx != 0 {
		grow := growBy(rect.Width, float64(sx)*dw, minWidth)
		rect.Width += grow
		shift := float64(sx) * grow / 2
		rect.CX += shift * ux
		rect.CY += shift * uy
	}
	if sy != 0 {
		grow := growBy(rect.Height, float64(sy)*dh, minHeight)
		rect.Height += grow
		shift := float64(sy) * grow / 2
		rect.CX += shift * vx
		rect.CY += shift * vy
	}
	return rect
}

// growBy returns the size change actually applied so that size+change never
// drops below min.
func growBy(size, change, min float64) float64 {
	if size+change > min {
		return change
	}
	return min - size
}
