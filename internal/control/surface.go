package control

import (
	"errors"
	"sync"
)

// ErrSurfaceBusy is returned when a gesture is already attached to the surface.
var ErrSurfaceBusy = errors.New("surface already has an active gesture")

// Listener receives the move/up stream of one gesture.
type Listener interface {
	PointerMove(p Pointer)
	PointerUp(p Pointer)
}

// Surface is the interaction area shared by every box. It delivers pointer
// moves and releases to at most one attached gesture, wherever the pointer is.
type Surface struct {
	mu       sync.Mutex
	listener Listener
	token    uint64
}

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Attach registers l as the active gesture and returns the function that
// removes it. The detach function is safe to call more than once and only
// ever removes the registration it created.
func (s *Surface) Attach(l Listener) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return nil, ErrSurfaceBusy
	}
	s.token++
	token := s.token
	s.listener = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.token == token && s.listener != nil {
			s.listener = nil
		}
	}, nil
}

// Active reports whether a gesture is attached.
func (s *Surface) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listener != nil
}

// Move forwards a pointer move. It reports whether a gesture received it.
func (s *Surface) Move(p Pointer) bool {
	l := s.current()
	if l == nil {
		return false
	}
	l.PointerMove(p)
	return true
}

// Up forwards a pointer release. It reports whether a gesture received it.
func (s *Surface) Up(p Pointer) bool {
	l := s.current()
	if l == nil {
		return false
	}
	l.PointerUp(p)
	return true
}

func (s *Surface) current() Listener {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listener
}
