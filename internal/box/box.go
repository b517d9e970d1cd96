// Package box describes the geometry and capabilities of a transformable box.
package box

import (
	"math"

	"github.com/frudas24/rotabox/internal/geom"
)

// DefaultMinSize is the smallest width or height a resize may produce.
const DefaultMinSize = 10

// Geometry is the position, size and rotation of a box relative to its
// bounding container. X and Y mirror Left and Top for callers that read either.
type Geometry struct {
	Left        float64 `json:"left" yaml:"left"`
	Top         float64 `json:"top" yaml:"top"`
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	RotateAngle float64 `json:"rotateAngle" yaml:"rotateAngle"`
	X           float64 `json:"x" yaml:"-"`
	Y           float64 `json:"y" yaml:"-"`
	ZIndex      int     `json:"zIndex,omitempty" yaml:"zIndex,omitempty"`
	Type        string  `json:"type,omitempty" yaml:"type,omitempty"`
}

// Valid reports whether every numeric field the engine reads is finite.
func (g Geometry) Valid() bool {
	return finite(g.Left) && finite(g.Top) && finite(g.Width) && finite(g.Height) && finite(g.RotateAngle)
}

// Synced returns g with X/Y copied from Left/Top.
func (g Geometry) Synced() Geometry {
	g.X = g.Left
	g.Y = g.Top
	return g
}

// Rect returns the unrotated bounding rect of g.
func (g Geometry) Rect() geom.Rect {
	return geom.Rect{X: g.Left, Y: g.Top, W: g.Width, H: g.Height}
}

// WithRect returns g moved and resized to r, keeping rotation and tags.
func (g Geometry) WithRect(r geom.Rect) Geometry {
	g.Left = r.X
	g.Top = r.Y
	g.Width = r.W
	g.Height = r.H
	return g.Synced()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
