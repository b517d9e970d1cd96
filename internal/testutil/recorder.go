// Package testutil provides fakes shared by package tests.
package testutil

import (
	"github.com/frudas24/rotabox/internal/box"
	"github.com/frudas24/rotabox/internal/geom"
)

// Call records a single callback invocation.
type Call struct {
	Name    string
	X       float64
	Y       float64
	Payload any
}

// Recorder collects callback invocations in order.
type Recorder struct {
	Calls []Call
}

// Record appends a call.
func (r *Recorder) Record(name string, x, y float64, payload any) {
	r.Calls = append(r.Calls, Call{Name: name, X: x, Y: y, Payload: payload})
}

// Names returns the recorded call names in order.
func (r *Recorder) Names() []string {
	out := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		out = append(out, c.Name)
	}
	return out
}

// Count returns how many calls used name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent call named name.
func (r *Recorder) Last(name string) (Call, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Name == name {
			return r.Calls[i], true
		}
	}
	return Call{}, false
}

// Owner is an in-memory gesture owner with a settable container.
type Owner struct {
	Geom        box.Geometry
	Bounds      geom.Rect
	NoContainer bool
}

// Geometry returns the stored geometry.
func (o *Owner) Geometry() box.Geometry {
	return o.Geom
}

// Container returns the stored container unless NoContainer is set.
func (o *Owner) Container() (geom.Rect, bool) {
	if o.NoContainer {
		return geom.Rect{}, false
	}
	return o.Bounds, true
}
