package geom

import "math"

// Point is a position or a vector in container space (y grows downward).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// CenterRect describes a rectangle by its center. Width and height are the
// unrotated extents; RotateAngle is clockwise degrees about the center.
type CenterRect struct {
	CX          float64
	CY          float64
	Width       float64
	Height      float64
	RotateAngle float64
}

// TopLeftToCenter converts an unrotated top-left rect into center form.
// Rotation happens about the center, so the angle is carried through as is.
func TopLeftToCenter(r Rect, rotateAngle float64) CenterRect {
	return CenterRect{
		CX:          r.X + r.W/2,
		CY:          r.Y + r.H/2,
		Width:       r.W,
		Height:      r.H,
		RotateAngle: rotateAngle,
	}
}

// CenterToTopLeft is the inverse of TopLeftToCenter.
func CenterToTopLeft(c CenterRect) Rect {
	return Rect{
		X: c.CX - c.Width/2,
		Y: c.CY - c.Height/2,
		W: c.Width,
		H: c.Height,
	}
}

// RotatedTopLeft returns where the top-left corner of r is drawn once r is
// rotated by rotateAngle degrees about its own center.
func RotatedTopLeft(r Rect, rotateAngle float64) Point {
	c := r.Center()
	v := Point{X: r.X, Y: r.Y}.Sub(c)
	return c.Add(Rotate(v, rotateAngle))
}

// Rotate turns v clockwise (on screen) by deg degrees.
func Rotate(v Point, deg float64) Point {
	sin, cos := math.Sincos(DegToRadian(deg))
	return Point{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the signed angle in degrees that turns v1 onto v2.
// Positive values are clockwise on screen.
func Angle(v1, v2 Point) float64 {
	dot := v1.X*v2.X + v1.Y*v2.Y
	cross := v1.X*v2.Y - v1.Y*v2.X
	return math.Atan2(cross, dot) * 180 / math.Pi
}

// Length returns the euclidean length of (dx, dy).
func Length(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// DegToRadian converts degrees to radians.
func DegToRadian(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeAngle folds deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// RoundHalfUp rounds x to the nearest integer, ties toward +Inf.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
