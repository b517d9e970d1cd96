package box

import (
	"fmt"

	"github.com/frudas24/rotabox/internal/geom"
)

// Resolution is the logical size the container represents. A zero value
// means container pixels are reported as is.
type Resolution struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Set reports whether both dimensions are configured.
func (r Resolution) Set() bool {
	return r.Width > 0 && r.Height > 0
}

// ScaleFactors returns the logical units per container pixel on each axis.
func ScaleFactors(res Resolution, container geom.Rect) (float64, float64) {
	if !res.Set() || container.Empty() {
		return 1, 1
	}
	return res.Width / container.W, res.Height / container.H
}

// Labels returns the coordinate and dimension captions for g in logical units.
func Labels(g Geometry, res Resolution, container geom.Rect) (coords string, dims string) {
	fx, fy := ScaleFactors(res, container)
	coords = fmt.Sprintf("(%d, %d)", int(geom.RoundHalfUp(g.X*fx)), int(geom.RoundHalfUp(g.Y*fy)))
	dims = fmt.Sprintf("%d x %d", int(geom.RoundHalfUp(g.Width*fx)), int(geom.RoundHalfUp(g.Height*fy)))
	return coords, dims
}
