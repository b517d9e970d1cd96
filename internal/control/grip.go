package control

// grip is one gesture's hold on the surface. openGrip attaches it and
// close detaches it; a release always closes the grip before the end
// handler runs, so no grip outlives its pointer-up.
type grip struct {
	detach func()
	closed bool
	move   func(Pointer)
	end    func(Pointer)
}

func openGrip(surface *Surface, move, end func(Pointer)) (*grip, error) {
	s := &grip{move: move, end: end}
	detach, err := surface.Attach(s)
	if err != nil {
		return nil, err
	}
	s.detach = detach
	return s, nil
}

// PointerMove implements Listener.
func (s *grip) PointerMove(p Pointer) {
	if s.closed {
		return
	}
	s.move(p)
}

// PointerUp implements Listener.
func (s *grip) PointerUp(p Pointer) {
	if s.closed {
		return
	}
	s.close()
	s.end(p)
}

func (s *grip) close() {
	if s.closed {
		return
	}
	s.closed = true
	s.detach()
}
