package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// TestCenterRoundTrip verifies the center conversion inverts exactly.
func TestCenterRoundTrip(t *testing.T) {
	cases := []struct {
		r     Rect
		angle float64
	}{
		{Rect{X: 100, Y: 50, W: 200, H: 100}, 0},
		{Rect{X: -30.5, Y: 12.25, W: 10, H: 10}, 45},
		{Rect{X: 1e6, Y: -1e6, W: 0.5, H: 1234.75}, 359},
		{Rect{X: 0, Y: 0, W: 13, H: 7}, 271.5},
	}
	for _, tc := range cases {
		c := TopLeftToCenter(tc.r, tc.angle)
		assert.Equal(t, tc.angle, c.RotateAngle)
		back := CenterToTopLeft(c)
		assert.InDelta(t, tc.r.X, back.X, eps)
		assert.InDelta(t, tc.r.Y, back.Y, eps)
		assert.Equal(t, tc.r.W, back.W)
		assert.Equal(t, tc.r.H, back.H)
	}
}

// TestTopLeftToCenter verifies the center of a known box.
func TestTopLeftToCenter(t *testing.T) {
	c := TopLeftToCenter(Rect{X: 100, Y: 50, W: 200, H: 100}, 30)
	assert.Equal(t, CenterRect{CX: 200, CY: 100, Width: 200, Height: 100, RotateAngle: 30}, c)
}

// TestRotatedTopLeft verifies the visual corner for quarter turns.
func TestRotatedTopLeft(t *testing.T) {
	r := Rect{X: 100, Y: 50, W: 200, H: 100}

	p := RotatedTopLeft(r, 0)
	assert.InDelta(t, 100, p.X, eps)
	assert.InDelta(t, 50, p.Y, eps)

	// Clockwise quarter turn moves the top-left corner to the top-right.
	p = RotatedTopLeft(r, 90)
	assert.InDelta(t, 250, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)

	p = RotatedTopLeft(r, 180)
	assert.InDelta(t, 300, p.X, eps)
	assert.InDelta(t, 150, p.Y, eps)
}

// TestAngle_Signs verifies clockwise turns are positive in y-down space.
func TestAngle_Signs(t *testing.T) {
	up := Point{X: 0, Y: -50}
	right := Point{X: 50, Y: 0}
	left := Point{X: -50, Y: 0}
	down := Point{X: 0, Y: 50}

	assert.InDelta(t, 90, Angle(up, right), eps)
	assert.InDelta(t, -90, Angle(up, left), eps)
	assert.InDelta(t, 180, math.Abs(Angle(up, down)), eps)
	assert.InDelta(t, 0, Angle(right, Point{X: 10, Y: 0}), eps)
}

// TestLengthAndRadians verifies the scalar helpers.
func TestLengthAndRadians(t *testing.T) {
	assert.Equal(t, 5.0, Length(3, 4))
	assert.Equal(t, 0.0, Length(0, 0))
	assert.InDelta(t, math.Pi, DegToRadian(180), eps)
	assert.InDelta(t, math.Pi/2, DegToRadian(90), eps)
}

// TestNormalizeAngle verifies folding into [0, 360).
func TestNormalizeAngle(t *testing.T) {
	for in, want := range map[float64]float64{
		0: 0, 360: 0, 361: 1, -1: 359, -360: 0, 725: 5, 359.5: 359.5,
	} {
		got := NormalizeAngle(in)
		require.GreaterOrEqual(t, got, 0.0)
		require.Less(t, got, 360.0)
		assert.InDelta(t, want, got, eps, "NormalizeAngle(%v)", in)
	}
}

// TestRoundHalfUp verifies ties round toward positive infinity.
func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 1.0, RoundHalfUp(0.5))
	assert.Equal(t, 0.0, RoundHalfUp(-0.5))
	assert.Equal(t, -1.0, RoundHalfUp(-0.6))
	assert.Equal(t, 90.0, RoundHalfUp(89.5))
}
