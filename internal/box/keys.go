package box

// Key names the arrow keys that nudge a box.
type Key string

const (
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
	KeyUp    Key = "ArrowUp"
	KeyDown  Key = "ArrowDown"
)

const (
	nudgeStep      = 1
	nudgeShiftStep = 10
)

// KeyPress is a key with its modifier state.
type KeyPress struct {
	Key   Key  `json:"key"`
	Shift bool `json:"shift,omitempty"`
	Ctrl  bool `json:"ctrl,omitempty"`
}

// Nudge applies an arrow-key shortcut to g. Plain arrows move the box, Ctrl
// arrows resize it (right/down grow, left/up shrink) and Shift multiplies
// the step by ten. Sizes never drop below the minimums. The second result is
// false for keys that are not shortcuts.
func Nudge(g Geometry, k KeyPress, minWidth, minHeight float64) (Geometry, bool) {
	step := float64(nudgeStep)
	if k.Shift {
		step = nudgeShiftStep
	}

	var dx, dy float64
	switch k.Key {
	case KeyLeft:
		dx = -step
	case KeyRight:
		dx = step
	case KeyUp:
		dy = -step
	case KeyDown:
		dy = step
	default:
		return g, false
	}

	if k.Ctrl {
		g.Width = max(g.Width+dx, minWidth)
		g.Height = max(g.Height+dy, minHeight)
		return g, true
	}
	g.Left += dx
	g.Top += dy
	g.X += dx
	g.Y += dy
	return g, true
}
