package control

import (
	"github.com/frudas24/rotabox/internal/box"
	"github.com/frudas24/rotabox/internal/geom"
	"github.com/frudas24/rotabox/internal/transform"
)

// Kind identifies the gesture a pointer-down starts.
type Kind string

const (
	// KindDrag translates the box.
	KindDrag Kind = "drag"
	// KindResize moves one of the eight resize handles.
	KindResize Kind = "resize"
	// KindRotate turns the box about its center.
	KindRotate Kind = "rotate"
)

// Pointer is a pointer sample in client (surface) coordinates.
type Pointer struct {
	ID int
	X  float64
	Y  float64
}

// Point returns the pointer position.
func (p Pointer) Point() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// Target is what a pointer-down landed on.
type Target struct {
	Kind   Kind
	Handle transform.Handle
}

// DragEvent is the payload of drag callbacks. Deltas are relative to the
// geometry at gesture start and are zero on the start event.
type DragEvent struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	DeltaX float64 `json:"deltaX"`
	DeltaY float64 `json:"deltaY"`
	Type   string  `json:"type,omitempty"`
}

// Moved reports whether the event carries a non-zero delta.
func (e DragEvent) Moved() bool {
	return e.DeltaX != 0 || e.DeltaY != 0
}

// ResizeEvent is the payload of resize callbacks.
type ResizeEvent struct {
	X           float64          `json:"x"`
	Y           float64          `json:"y"`
	Left        float64          `json:"left"`
	Top         float64          `json:"top"`
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	DeltaX      float64          `json:"deltaX"`
	DeltaY      float64          `json:"deltaY"`
	DeltaW      float64          `json:"deltaW"`
	DeltaH      float64          `json:"deltaH"`
	RotateAngle float64          `json:"rotateAngle"`
	Handle      transform.Handle `json:"handle"`
	Type        string           `json:"type,omitempty"`
}

// Moved reports whether the event carries a non-zero delta.
func (e ResizeEvent) Moved() bool {
	return e.DeltaX != 0 || e.DeltaY != 0 || e.DeltaW != 0 || e.DeltaH != 0
}

// RotateEvent is the payload of rotate callbacks. Left/Top describe the
// unrotated box; Corner is where its top-left corner is drawn at RotateAngle.
type RotateEvent struct {
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Left        float64    `json:"left"`
	Top         float64    `json:"top"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	RotateAngle float64    `json:"rotateAngle"`
	Corner      geom.Point `json:"corner"`
	Type        string     `json:"type,omitempty"`
}

// Apply returns g updated with the drag result.
func (e DragEvent) Apply(g box.Geometry) box.Geometry {
	return g.WithRect(geom.Rect{X: e.Left, Y: e.Top, W: e.Width, H: e.Height})
}

// Apply returns g updated with the resize result.
func (e ResizeEvent) Apply(g box.Geometry) box.Geometry {
	g = g.WithRect(geom.Rect{X: e.Left, Y: e.Top, W: e.Width, H: e.Height})
	g.RotateAngle = e.RotateAngle
	return g
}

// Apply returns g updated with the rotate result.
func (e RotateEvent) Apply(g box.Geometry) box.Geometry {
	g = g.WithRect(geom.Rect{X: e.Left, Y: e.Top, W: e.Width, H: e.Height})
	g.RotateAngle = e.RotateAngle
	return g
}

// Callbacks receive gesture lifecycle events. Every field is optional.
type Callbacks struct {
	OnDragStart   func(Pointer, DragEvent)
	OnDrag        func(Pointer, DragEvent)
	OnDragEnd     func(Pointer, DragEvent)
	OnResizeStart func(Pointer, ResizeEvent)
	OnResize      func(Pointer, ResizeEvent)
	OnResizeEnd   func(Pointer, ResizeEvent)
	OnRotateStart func(Pointer, RotateEvent)
	OnRotate      func(Pointer, RotateEvent)
	OnRotateEnd   func(Pointer, RotateEvent)

	// SetDragOrResizeState is told when a drag or resize begins (true) and
	// when one ends after real movement (false).
	SetDragOrResizeState func(active bool)

	// OnKey receives the geometry produced by an arrow-key shortcut.
	OnKey func(box.KeyPress, box.Geometry)
}
