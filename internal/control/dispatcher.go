package control

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/frudas24/rotabox/internal/box"
	"github.com/frudas24/rotabox/internal/geom"
	"github.com/frudas24/rotabox/internal/logging"
	"github.com/frudas24/rotabox/internal/session"
	"github.com/frudas24/rotabox/internal/transform"
)

// Emitter receives outbound messages.
type Emitter func(Outbound)

// Dispatcher routes control messages to per-box engines that share one
// surface, and stores the geometry they produce in the session.
type Dispatcher struct {
	mu      sync.Mutex
	sess    *session.Session
	surface *Surface
	opts    Options
	engines map[string]*Box
	emit    Emitter
	now     func() time.Time
	after   func(time.Duration, func())
	log     *slog.Logger
	last    Pointer
}

// NewDispatcher creates a dispatcher over sess. opts supplies the minimum
// sizes and key repeat; capabilities and parent bounds come from the session.
func NewDispatcher(sess *session.Session, opts Options, emit Emitter) *Dispatcher {
	d := &Dispatcher{
		sess:    sess,
		surface: NewSurface(),
		opts:    opts.withDefaults(),
		engines: map[string]*Box{},
		emit:    emit,
		now:     time.Now,
		log:     logging.Logger().With(slog.String("component", "dispatcher")),
	}
	d.after = func(wait time.Duration, fn func()) { time.AfterFunc(wait, fn) }
	return d
}

// SetEmitter replaces the outbound sink. A nil emitter drops messages.
func (d *Dispatcher) SetEmitter(emit Emitter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.emit = emit
}

// SetNowFunc overrides the clock engines use for key throttling.
func (d *Dispatcher) SetNowFunc(fn func() time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fn == nil {
		return
	}
	d.now = fn
	for _, e := range d.engines {
		e.SetNowFunc(fn)
	}
}

// SetAfterFunc overrides the timer engines use to apply held-back key
// presses. fn is called while a message is being handled and must run its
// callback later, not before returning.
func (d *Dispatcher) SetAfterFunc(fn func(time.Duration, func())) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fn != nil {
		d.after = fn
	}
}

// afterLocked schedules fn on the dispatcher timer and runs it under the
// dispatcher lock.
func (d *Dispatcher) afterLocked(wait time.Duration, fn func()) {
	d.after(wait, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		fn()
	})
}

// Flush applies every key press still held back by key repeat, in box id
// order.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range slices.Sorted(maps.Keys(d.engines)) {
		d.engines[id].FlushKey()
	}
}

// Busy reports whether a gesture currently holds the surface.
func (d *Dispatcher) Busy() bool {
	return d.surface.Active()
}

// Cancel ends the active gesture, if any, with a release at the last known
// pointer position. It is used when the control connection drops mid-gesture.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.surface.Up(d.last) {
		d.log.Debug("gesture cancelled")
	}
}

// Handle applies one control message. Messages naming unknown boxes fail
// with session.ErrUnknownBox; everything else that cannot apply is ignored.
func (d *Dispatcher) Handle(msg Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch msg.T {
	case MsgDown:
		return d.handleDown(msg)
	case MsgMove:
		if p, ok := d.pointer(msg); ok {
			d.surface.Move(p)
		}
		return nil
	case MsgUp:
		if p, ok := d.pointer(msg); ok {
			d.surface.Up(p)
		}
		return nil
	case MsgKey:
		return d.handleKey(msg)
	case MsgContainer:
		if msg.Rect == nil {
			d.sess.ClearContainer()
			return nil
		}
		d.sess.SetContainer(*msg.Rect)
		return nil
	case MsgSelect:
		return d.selectBox(msg.Box)
	case MsgClick:
		if !d.sess.DragOrResize() {
			return nil
		}
		return d.selectBox(msg.Box)
	case MsgResolution:
		if msg.Rect == nil {
			d.sess.SetResolution(box.Resolution{})
			return nil
		}
		d.sess.SetResolution(box.Resolution{Width: msg.Rect.W, Height: msg.Rect.H})
		return nil
	case MsgBound:
		if msg.Enabled != nil {
			d.sess.SetBoundToParent(*msg.Enabled)
		}
		return nil
	default:
		return nil
	}
}

// handleDown starts a gesture on the named box.
func (d *Dispatcher) handleDown(msg Message) error {
	e, err := d.engine(msg.Box)
	if err != nil {
		return err
	}
	target := Target{Kind: msg.Target}
	if target.Kind == "" {
		target.Kind = KindDrag
	}
	if target.Kind == KindResize {
		h, err := transform.ParseHandle(msg.Handle)
		if err != nil {
			d.log.Debug("pointer-down ignored", slog.Any("err", err))
			return nil
		}
		target.Handle = h
	}
	p, ok := d.pointer(msg)
	if !ok {
		return nil
	}
	e.PointerDown(p, target)
	return nil
}

// handleKey applies an arrow-key shortcut to the named box.
func (d *Dispatcher) handleKey(msg Message) error {
	e, err := d.engine(msg.Box)
	if err != nil {
		return err
	}
	k := box.KeyPress{Key: msg.Key, Shift: msg.Shift, Ctrl: msg.Ctrl}
	if msg.Phase == PhaseUp {
		e.KeyUp(k)
		return nil
	}
	e.KeyDown(k)
	return nil
}

func (d *Dispatcher) selectBox(id string) error {
	if err := d.sess.Select(id); err != nil {
		return err
	}
	d.send(Outbound{T: OutSelect, Box: id})
	return nil
}

// pointer converts a message position into a client-space pointer.
func (d *Dispatcher) pointer(msg Message) (Pointer, bool) {
	container, hasContainer := d.sess.Container()
	x, y, ok := toClient(msg, d.sess.Resolution(), container, hasContainer)
	if !ok {
		d.log.Debug("pointer ignored", slog.String("t", msg.T), slog.String("units", msg.Units))
		return Pointer{}, false
	}
	d.last = Pointer{ID: msg.ID, X: x, Y: y}
	return d.last, true
}

// engine returns the engine for id, refreshing its options from the session.
func (d *Dispatcher) engine(id string) (*Box, error) {
	caps, ok := d.sess.Capabilities(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", session.ErrUnknownBox, id)
	}
	e, ok := d.engines[id]
	if !ok {
		e = NewBox(id, boxOwner{sess: d.sess, id: id}, d.surface, d.opts, d.callbacks(id))
		e.SetNowFunc(d.now)
		d.engines[id] = e
	}
	opts := d.opts
	opts.Caps = caps
	opts.BoundToParent = d.sess.BoundToParent()
	e.SetOptions(opts)
	return e, nil
}

func (d *Dispatcher) callbacks(id string) Callbacks {
	return Callbacks{
		OnDragStart:   func(p Pointer, ev DragEvent) { d.publish(OutDragStart, id, p, ev, ev.Apply) },
		OnDrag:        func(p Pointer, ev DragEvent) { d.publish(OutDrag, id, p, ev, ev.Apply) },
		OnDragEnd:     func(p Pointer, ev DragEvent) { d.publish(OutDragEnd, id, p, ev, ev.Apply) },
		OnResizeStart: func(p Pointer, ev ResizeEvent) { d.publish(OutResizeStart, id, p, ev, ev.Apply) },
		OnResize:      func(p Pointer, ev ResizeEvent) { d.publish(OutResize, id, p, ev, ev.Apply) },
		OnResizeEnd:   func(p Pointer, ev ResizeEvent) { d.publish(OutResizeEnd, id, p, ev, ev.Apply) },
		OnRotateStart: func(p Pointer, ev RotateEvent) { d.publish(OutRotateStart, id, p, ev, ev.Apply) },
		OnRotate:      func(p Pointer, ev RotateEvent) { d.publish(OutRotate, id, p, ev, ev.Apply) },
		OnRotateEnd:   func(p Pointer, ev RotateEvent) { d.publish(OutRotateEnd, id, p, ev, ev.Apply) },
		SetDragOrResizeState: func(active bool) {
			d.sess.SetDragOrResizeState(active)
			d.send(Outbound{T: OutDragOrResize, Box: id, Active: &active})
		},
		OnKey: func(k box.KeyPress, g box.Geometry) {
			d.store(OutKey, id, nil, k, func(box.Geometry) box.Geometry { return g })
		},
	}
}

func (d *Dispatcher) publish(t, id string, p Pointer, ev any, apply func(box.Geometry) box.Geometry) {
	pt := p.Point()
	d.store(t, id, &pt, ev, apply)
}

// store applies an engine result to the session copy of the box and
// forwards it with its labels.
func (d *Dispatcher) store(t, id string, p *geom.Point, ev any, apply func(box.Geometry) box.Geometry) {
	g, ok := d.sess.Geometry(id)
	if !ok {
		d.log.Debug("result dropped: box removed", slog.String("box", id), slog.String("t", t))
		return
	}
	g = apply(g)
	if err := d.sess.SetGeometry(id, g); err != nil {
		d.log.Debug("result dropped", slog.Any("err", err))
		return
	}
	container, _ := d.sess.Container()
	coords, dims := box.Labels(g, d.sess.Resolution(), container)
	d.send(Outbound{T: t, Box: id, Pointer: p, Geometry: &g, Event: ev, Coords: coords, Dims: dims})
}

func (d *Dispatcher) send(out Outbound) {
	if d.emit != nil {
		d.emit(out)
	}
}

// boxOwner reads a box's geometry and container from the session.
type boxOwner struct {
	sess *session.Session
	id   string
}

// Geometry returns the stored geometry. A removed box reports non-finite
// geometry so no gesture can start on it.
func (o boxOwner) Geometry() box.Geometry {
	g, ok := o.sess.Geometry(o.id)
	if !ok {
		return box.Geometry{Left: math.NaN()}
	}
	return g
}

// Container returns the session container.
func (o boxOwner) Container() (geom.Rect, bool) {
	return o.sess.Container()
}
