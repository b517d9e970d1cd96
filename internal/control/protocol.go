package control

import (
	"github.com/frudas24/rotabox/internal/box"
	"github.com/frudas24/rotabox/internal/geom"
)

// Inbound message types.
const (
	MsgDown      = "down"
	MsgMove      = "move"
	MsgUp        = "up"
	MsgKey       = "key"
	MsgContainer = "container"
	MsgSelect    = "select"
	MsgClick     = "click"
	MsgBound     = "bound"
	// MsgResolution carries the logical resolution in Rect.W and Rect.H.
	MsgResolution = "resolution"
)

// Outbound message types.
const (
	OutDragStart    = "dragStart"
	OutDrag         = "drag"
	OutDragEnd      = "dragEnd"
	OutResizeStart  = "resizeStart"
	OutResize       = "resize"
	OutResizeEnd    = "resizeEnd"
	OutRotateStart  = "rotateStart"
	OutRotate       = "rotate"
	OutRotateEnd    = "rotateEnd"
	OutDragOrResize = "dragOrResize"
	OutKey          = "key"
	OutSelect       = "select"
)

// Coordinate units accepted on pointer messages.
const (
	// UnitsPixels is client pixels. It is the default.
	UnitsPixels = "px"
	// UnitsNorm is 0..1 across the container.
	UnitsNorm = "norm"
	// UnitsLogical is the container's configured resolution.
	UnitsLogical = "logical"
)

// Key phases.
const (
	PhaseDown = "down"
	PhaseUp   = "up"
)

// Message is a control websocket payload.
type Message struct {
	T       string     `json:"t"`
	ID      int        `json:"id,omitempty"`
	Box     string     `json:"box,omitempty"`
	Target  Kind       `json:"target,omitempty"`
	Handle  string     `json:"handle,omitempty"`
	X       float64    `json:"x,omitempty"`
	Y       float64    `json:"y,omitempty"`
	Units   string     `json:"units,omitempty"`
	Key     box.Key    `json:"key,omitempty"`
	Shift   bool       `json:"shift,omitempty"`
	Ctrl    bool       `json:"ctrl,omitempty"`
	Phase   string     `json:"phase,omitempty"`
	Rect    *geom.Rect `json:"rect,omitempty"`
	Enabled *bool      `json:"enabled,omitempty"`
}

// Outbound is sent to the client for every callback the engines raise.
// Geometry is the box after the event has been applied.
type Outbound struct {
	T        string        `json:"t"`
	Box      string        `json:"box,omitempty"`
	Pointer  *geom.Point   `json:"pointer,omitempty"`
	Geometry *box.Geometry `json:"geometry,omitempty"`
	Event    any           `json:"event,omitempty"`
	Coords   string        `json:"coords,omitempty"`
	Dims     string        `json:"dims,omitempty"`
	Active   *bool         `json:"active,omitempty"`
}
