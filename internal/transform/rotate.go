package transform

import "github.com/frudas24/rotabox/internal/geom"

// snapWindow is the half-width in degrees of the magnetic zone around each
// cardinal angle.
const snapWindow = 4

// SolveRotate returns the box angle after the pointer moved from start to
// current, both measured from the box center, for a gesture that began at
// startAngle. The result is rounded, folded into [0, 360) and snapped.
func SolveRotate(start, current geom.Point, startAngle float64) float64 {
	delta := geom.Angle(start, current)
	angle := geom.NormalizeAngle(geom.RoundHalfUp(startAngle + delta))
	return Snap(angle)
}

// Snap pulls angles within snapWindow degrees of 0, 90, 180 or 270 onto
// that cardinal angle. The windows are open intervals.
func Snap(angle float64) float64 {
	switch {
	case angle > 360-snapWindow || angle < snapWindow:
		return 0
	case angle > 90-snapWindow && angle < 90+snapWindow:
		return 90
	case angle > 180-snapWindow && angle < 180+snapWindow:
		return 180
	case angle > 270-snapWindow && angle < 270+snapWindow:
		return 270
	}
	return angle
}
