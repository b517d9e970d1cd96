package control

import (
	"github.com/frudas24/rotabox/internal/box"
	"github.com/frudas24/rotabox/internal/geom"
)

// NormToClient maps normalized container coordinates to client coordinates.
func NormToClient(xn, yn float64, container geom.Rect) (float64, float64) {
	xn = clamp01(xn)
	yn = clamp01(yn)
	return container.X + xn*container.W, container.Y + yn*container.H
}

// LogicalToClient maps coordinates in the container's logical resolution to
// client coordinates. An unset resolution treats logical units as pixels.
func LogicalToClient(x, y float64, res box.Resolution, container geom.Rect) (float64, float64) {
	fx, fy := box.ScaleFactors(res, container)
	return container.X + x/fx, container.Y + y/fy
}

// toClient converts a pointer message into client coordinates. Units other
// than pixels need a container; ok is false without one.
func toClient(msg Message, res box.Resolution, container geom.Rect, hasContainer bool) (x, y float64, ok bool) {
	switch msg.Units {
	case "", UnitsPixels:
		return msg.X, msg.Y, true
	case UnitsNorm:
		if !hasContainer {
			return 0, 0, false
		}
		x, y = NormToClient(msg.X, msg.Y, container)
		return x, y, true
	case UnitsLogical:
		if !hasContainer {
			return 0, 0, false
		}
		x, y = LogicalToClient(msg.X, msg.Y, res, container)
		return x, y, true
	default:
		return 0, 0, false
	}
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
