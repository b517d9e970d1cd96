package control

import (
	"log/slog"
	"time"

	"github.com/frudas24/rotabox/internal/box"
	"github.com/frudas24/rotabox/internal/geom"
	"github.com/frudas24/rotabox/internal/logging"
	"github.com/frudas24/rotabox/internal/transform"
)

const defaultKeyRepeat = 300 * time.Millisecond

// Owner supplies the state a gesture reads. The engine never keeps geometry
// between gestures; it asks the owner at every pointer-down.
type Owner interface {
	// Geometry returns the box's current geometry relative to the container.
	Geometry() box.Geometry
	// Container returns the bounding element's on-screen rect, or false when
	// it is not available (for example while the view is being torn down).
	Container() (geom.Rect, bool)
}

// Options configure one box engine.
type Options struct {
	BoundToParent bool
	MinWidth      float64
	MinHeight     float64
	Caps          box.Capabilities
	// KeyRepeat throttles KeyDown shortcuts. Zero uses the default.
	KeyRepeat time.Duration
}

func (o Options) withDefaults() Options {
	if o.MinWidth <= 0 {
		o.MinWidth = box.DefaultMinSize
	}
	if o.MinHeight <= 0 {
		o.MinHeight = box.DefaultMinSize
	}
	if o.KeyRepeat <= 0 {
		o.KeyRepeat = defaultKeyRepeat
	}
	return o
}

// Box turns pointer input on one box into geometry callbacks.
type Box struct {
	id        string
	owner     Owner
	surface   *Surface
	opts      Options
	cb        Callbacks
	log       *slog.Logger
	now       func() time.Time
	after     func(time.Duration, func())
	lastKeyAt time.Time
	// pendingKey is the last KeyDown held back by the repeat window.
	pendingKey *box.KeyPress
	keyTimer   bool
}

// NewBox returns an engine for the box identified by id.
func NewBox(id string, owner Owner, surface *Surface, opts Options, cb Callbacks) *Box {
	return &Box{
		id:      id,
		owner:   owner,
		surface: surface,
		opts:    opts.withDefaults(),
		cb:      cb,
		log:     logging.Logger().With(slog.String("box", id)),
		now:     time.Now,
		after:   func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// SetNowFunc overrides the clock used for key throttling.
func (b *Box) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		b.now = fn
	}
}

// SetAfterFunc replaces the timer used to apply a held-back key press when
// the repeat window ends. The default runs fn on its own goroutine, so a
// caller sharing the engine across goroutines must install one that
// serialises fn with its other calls.
func (b *Box) SetAfterFunc(fn func(time.Duration, func())) {
	if fn != nil {
		b.after = fn
	}
}

// SetOptions replaces the engine options. It takes effect at the next gesture.
func (b *Box) SetOptions(opts Options) {
	b.opts = opts.withDefaults()
}

// ID returns the box id.
func (b *Box) ID() string {
	return b.id
}

// PointerDown starts the gesture selected by t. It reports whether a gesture
// started; disabled capabilities, unknown handles, non-finite geometry, a
// missing container and a busy surface all leave the engine idle.
func (b *Box) PointerDown(p Pointer, t Target) bool {
	if !b.enabled(t.Kind) {
		b.log.Debug("gesture disabled", slog.String("kind", string(t.Kind)))
		return false
	}
	g := b.owner.Geometry()
	if !g.Valid() {
		b.log.Debug("gesture ignored: non-finite geometry")
		return false
	}
	container, ok := b.owner.Container()
	if !ok {
		b.log.Debug("gesture ignored: no container")
		return false
	}

	var err error
	switch t.Kind {
	case KindDrag:
		err = b.startDrag(p, g)
	case KindResize:
		if !t.Handle.Valid() {
			b.log.Debug("gesture ignored: unknown handle", slog.String("handle", string(t.Handle)))
			return false
		}
		err = b.startResize(p, g, t.Handle)
	case KindRotate:
		err = b.startRotate(p, g, container)
	default:
		return false
	}
	if err != nil {
		b.log.Debug("gesture ignored", slog.String("kind", string(t.Kind)), slog.Any("err", err))
		return false
	}
	return true
}

// KeyDown applies an arrow-key shortcut, at most once per KeyRepeat. A
// press inside the window is held back and the last one held is applied
// when the window ends, so a released key never loses its final nudge.
func (b *Box) KeyDown(k box.KeyPress) bool {
	now := b.now()
	if !b.lastKeyAt.IsZero() {
		if wait := b.opts.KeyRepeat - now.Sub(b.lastKeyAt); wait > 0 {
			b.pendingKey = &k
			if !b.keyTimer {
				b.keyTimer = true
				b.after(wait, b.keyWindowEnded)
			}
			return false
		}
	}
	b.pendingKey = nil
	if !b.applyKey(k) {
		return false
	}
	b.lastKeyAt = now
	return true
}

// FlushKey applies the held-back key press now. It reports whether one was
// applied.
func (b *Box) FlushKey() bool {
	if b.pendingKey == nil {
		return false
	}
	k := *b.pendingKey
	b.pendingKey = nil
	if !b.applyKey(k) {
		return false
	}
	b.lastKeyAt = b.now()
	return true
}

func (b *Box) keyWindowEnded() {
	b.keyTimer = false
	if b.pendingKey == nil {
		return
	}
	if wait := b.opts.KeyRepeat - b.now().Sub(b.lastKeyAt); wait > 0 {
		b.keyTimer = true
		b.after(wait, b.keyWindowEnded)
		return
	}
	b.FlushKey()
}

// KeyUp applies an arrow-key shortcut without throttling.
func (b *Box) KeyUp(k box.KeyPress) bool {
	return b.applyKey(k)
}

func (b *Box) applyKey(k box.KeyPress) bool {
	g := b.owner.Geometry()
	if !g.Valid() {
		return false
	}
	out, ok := box.Nudge(g, k, b.opts.MinWidth, b.opts.MinHeight)
	if !ok {
		return false
	}
	if b.cb.OnKey != nil {
		b.cb.OnKey(k, out)
	}
	return true
}

func (b *Box) enabled(kind Kind) bool {
	switch kind {
	case KindDrag:
		return b.opts.Caps.Drag == box.Enabled
	case KindResize:
		return b.opts.Caps.Resize == box.Enabled
	case KindRotate:
		return b.opts.Caps.Rotate == box.Enabled
	}
	return false
}

// container returns the current container for a move, logging when it is gone.
func (b *Box) container() (geom.Rect, bool) {
	c, ok := b.owner.Container()
	if !ok {
		b.log.Debug("move skipped: no container")
	}
	return c, ok
}

func (b *Box) setDragOrResize(active bool) {
	if b.cb.SetDragOrResizeState != nil {
		b.cb.SetDragOrResizeState(active)
	}
}

// startDrag opens a drag grip translating the box by the pointer delta.
func (b *Box) startDrag(p Pointer, start box.Geometry) error {
	ev := DragEvent{
		X: start.Left, Y: start.Top, Left: start.Left, Top: start.Top,
		Width: start.Width, Height: start.Height, Type: start.Type,
	}
	last := ev
	moved := false

	move := func(m Pointer) {
		container, ok := b.container()
		if !ok {
			return
		}
		left := start.Left + m.X - p.X
		top := start.Top + m.Y - p.Y
		if b.opts.BoundToParent {
			left, top = ClampDrag(left, top, start.Width, start.Height, container)
		}
		last = DragEvent{
			X: left, Y: top, Left: left, Top: top,
			Width: start.Width, Height: start.Height,
			DeltaX: left - start.Left, DeltaY: top - start.Top,
			Type: start.Type,
		}
		if last.Moved() {
			moved = true
		}
		if b.cb.OnDrag != nil {
			b.cb.OnDrag(m, last)
		}
	}
	end := func(u Pointer) {
		if !moved {
			return
		}
		b.setDragOrResize(false)
		if b.cb.OnDragEnd != nil {
			b.cb.OnDragEnd(u, last)
		}
	}

	if _, err := openGrip(b.surface, move, end); err != nil {
		return err
	}
	b.setDragOrResize(true)
	if b.cb.OnDragStart != nil {
		b.cb.OnDragStart(p, ev)
	}
	return nil
}

// startResize opens a resize grip for handle h.
func (b *Box) startResize(p Pointer, start box.Geometry, h transform.Handle) error {
	rect := geom.TopLeftToCenter(start.Rect(), start.RotateAngle)
	ev := ResizeEvent{
		X: start.Left, Y: start.Top, Left: start.Left, Top: start.Top,
		Width: start.Width, Height: start.Height,
		RotateAngle: start.RotateAngle, Handle: h, Type: start.Type,
	}
	last := ev
	moved := false

	move := func(m Pointer) {
		container, ok := b.container()
		if !ok {
			return
		}
		solved := transform.SolveResize(h, rect, m.X-p.X, m.Y-p.Y, b.opts.MinWidth, b.opts.MinHeight)
		r := geom.CenterToTopLeft(solved)
		if b.opts.BoundToParent {
			r = ClampResize(r, h, b.opts.MinWidth, b.opts.MinHeight, container)
		}
		last = ResizeEvent{
			X: r.X, Y: r.Y, Left: r.X, Top: r.Y, Width: r.W, Height: r.H,
			DeltaX: r.X - start.Left, DeltaY: r.Y - start.Top,
			DeltaW: r.W - start.Width, DeltaH: r.H - start.Height,
			RotateAngle: start.RotateAngle, Handle: h, Type: start.Type,
		}
		if last.Moved() {
			moved = true
		}
		if b.cb.OnResize != nil {
			b.cb.OnResize(m, last)
		}
	}
	end := func(u Pointer) {
		if !moved {
			return
		}
		b.setDragOrResize(false)
		if b.cb.OnResizeEnd != nil {
			b.cb.OnResizeEnd(u, last)
		}
	}

	if _, err := openGrip(b.surface, move, end); err != nil {
		return err
	}
	b.setDragOrResize(true)
	if b.cb.OnResizeStart != nil {
		b.cb.OnResizeStart(p, ev)
	}
	return nil
}

// startRotate opens a rotate grip about the box center. The center is
// fixed in client coordinates for the whole gesture.
func (b *Box) startRotate(p Pointer, start box.Geometry, container geom.Rect) error {
	rect := start.Rect()
	center := rect.Center().Add(geom.Point{X: container.X, Y: container.Y})
	startVector := p.Point().Sub(center)
	startAngle := start.RotateAngle

	event := func(angle float64) RotateEvent {
		return RotateEvent{
			X: start.Left, Y: start.Top, Left: start.Left, Top: start.Top,
			Width: start.Width, Height: start.Height,
			RotateAngle: angle, Corner: geom.RotatedTopLeft(rect, angle),
			Type: start.Type,
		}
	}
	ev := event(startAngle)
	last := ev

	move := func(m Pointer) {
		if _, ok := b.container(); !ok {
			return
		}
		angle := transform.SolveRotate(startVector, m.Point().Sub(center), startAngle)
		last = event(angle)
		if b.cb.OnRotate != nil {
			b.cb.OnRotate(m, last)
		}
	}
	end := func(u Pointer) {
		if b.cb.OnRotateEnd != nil {
			b.cb.OnRotateEnd(u, last)
		}
	}

	if _, err := openGrip(b.surface, move, end); err != nil {
		return err
	}
	if b.cb.OnRotateStart != nil {
		b.cb.OnRotateStart(p, ev)
	}
	return nil
}
