// Package session holds the editing state that owns box geometry.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/frudas24/rotabox/internal/box"
	"github.com/frudas24/rotabox/internal/geom"
)

var (
	// ErrUnknownBox is returned for ids that were never added.
	ErrUnknownBox = errors.New("unknown box")
	// ErrDuplicateBox is returned when an id is added twice.
	ErrDuplicateBox = errors.New("box already exists")
)

// BoxState is a box as stored by the session.
type BoxState struct {
	ID       string           `json:"id"`
	Geometry box.Geometry     `json:"geometry"`
	Caps     box.Capabilities `json:"-"`
}

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Container     geom.Rect      `json:"container"`
	HasContainer  bool           `json:"hasContainer"`
	Resolution    box.Resolution `json:"resolution"`
	BoundToParent bool           `json:"boundToParent"`
	DragOrResize  bool           `json:"dragOrResize"`
	Selected      string         `json:"selected,omitempty"`
	Boxes         []BoxState     `json:"boxes"`
}

// Session holds the boxes and their container for the active editor.
type Session struct {
	mu            sync.RWMutex
	container     geom.Rect
	hasContainer  bool
	resolution    box.Resolution
	boundToParent bool
	dragOrResize  bool
	selected      string
	order         []string
	boxes         map[string]*BoxState
}

// New returns an empty session bounded to parent by default. The drag or
// resize flag starts set so the first click selects.
func New() *Session {
	return &Session{
		boundToParent: true,
		dragOrResize:  true,
		boxes:         map[string]*BoxState{},
	}
}

// Add registers a box. Geometry X/Y are synced from Left/Top.
func (s *Session) Add(id string, g box.Geometry, caps box.Capabilities) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boxes[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateBox, id)
	}
	s.boxes[id] = &BoxState{ID: id, Geometry: g.Synced(), Caps: caps}
	s.order = append(s.order, id)
	return nil
}

// Remove deletes a box. Unknown ids are ignored.
func (s *Session) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boxes[id]; !ok {
		return
	}
	delete(s.boxes, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.selected == id {
		s.selected = ""
	}
}

// Geometry returns the stored geometry of a box.
func (s *Session) Geometry(id string) (box.Geometry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boxes[id]
	if !ok {
		return box.Geometry{}, false
	}
	return b.Geometry, true
}

// SetGeometry stores new geometry for a box.
func (s *Session) SetGeometry(id string, g box.Geometry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boxes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBox, id)
	}
	b.Geometry = g
	return nil
}

// Capabilities returns the gesture switches of a box.
func (s *Session) Capabilities(id string) (box.Capabilities, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boxes[id]
	if !ok {
		return box.Capabilities{}, false
	}
	return b.Caps, true
}

// IDs returns the box ids in insertion order.
func (s *Session) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// SetContainer sets the bounding element's on-screen rect.
func (s *Session) SetContainer(r geom.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.container = geom.Normalize(r)
	s.hasContainer = true
}

// ClearContainer marks the bounding element as unavailable.
func (s *Session) ClearContainer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasContainer = false
}

// Container returns the bounding element's rect when it is available.
func (s *Session) Container() (geom.Rect, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasContainer || s.container.Empty() {
		return geom.Rect{}, false
	}
	return s.container, true
}

// SetResolution sets the logical resolution of the container.
func (s *Session) SetResolution(r box.Resolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolution = r
}

// Resolution returns the logical resolution of the container.
func (s *Session) Resolution() box.Resolution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolution
}

// SetBoundToParent toggles clamping boxes to the container.
func (s *Session) SetBoundToParent(bound bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boundToParent = bound
}

// BoundToParent reports whether boxes are clamped to the container.
func (s *Session) BoundToParent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boundToParent
}

// SetDragOrResizeState records the flag gesture engines raise at drag or
// resize start and clear once a gesture that moved the box ends.
func (s *Session) SetDragOrResizeState(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragOrResize = active
}

// DragOrResize reports the drag or resize flag. A click selects its box only
// while the flag is set, so the click that closes a real drag is ignored.
func (s *Session) DragOrResize() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dragOrResize
}

// Select marks a box as selected. An empty id clears the selection.
func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if _, ok := s.boxes[id]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownBox, id)
		}
	}
	s.selected = id
	return nil
}

// Selected returns the selected box id.
func (s *Session) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := Snapshot{
		Container:     s.container,
		HasContainer:  s.hasContainer,
		Resolution:    s.resolution,
		BoundToParent: s.boundToParent,
		DragOrResize:  s.dragOrResize,
		Selected:      s.selected,
		Boxes:         make([]BoxState, 0, len(s.order)),
	}
	for _, id := range s.order {
		out.Boxes = append(out.Boxes, *s.boxes[id])
	}
	return out
}
