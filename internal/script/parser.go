// Package script parses and replays gesture scripts:
//
//	container 500 500
//	down box1 drag 120 60
//	move 170 80
//	up 170 80
//	key box1 right shift
//
// Each statement becomes one control message.
package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/frudas24/rotabox/internal/box"
	"github.com/frudas24/rotabox/internal/control"
	"github.com/frudas24/rotabox/internal/geom"
	"github.com/frudas24/rotabox/internal/transform"
)

var parser = participle.MustBuild[File](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a script from r and returns its messages in order.
func Parse(r io.Reader) ([]control.Message, error) {
	return parse("", r)
}

// ParseString parses a script held in a string.
func ParseString(input string) ([]control.Message, error) {
	return parse("", strings.NewReader(input))
}

// ParseFile parses the script at path. Positions in errors name the file.
func ParseFile(path string) ([]control.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return parse(path, f)
}

func parse(name string, r io.Reader) ([]control.Message, error) {
	file, err := parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	msgs := make([]control.Message, 0, len(file.Statements))
	for _, st := range file.Statements {
		msg, err := st.message()
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// message lowers one statement to its control message.
func (st *Statement) message() (control.Message, error) {
	switch {
	case st.Container != nil:
		v := st.Container.Values
		var r geom.Rect
		switch len(v) {
		case 2:
			r = geom.Rect{W: v[0], H: v[1]}
		case 4:
			r = geom.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}
		default:
			return control.Message{}, st.errorf("container takes 2 or 4 numbers, got %d", len(v))
		}
		return control.Message{T: control.MsgContainer, Rect: &r}, nil
	case st.Resolution != nil:
		r := geom.Rect{W: st.Resolution.Width, H: st.Resolution.Height}
		return control.Message{T: control.MsgResolution, Rect: &r}, nil
	case st.Bound != nil:
		on := st.Bound.Value == "on" || st.Bound.Value == "true"
		return control.Message{T: control.MsgBound, Enabled: &on}, nil
	case st.Down != nil:
		return st.down()
	case st.Move != nil:
		return pointerMessage(control.MsgMove, st.Move), nil
	case st.Up != nil:
		return pointerMessage(control.MsgUp, st.Up), nil
	case st.Key != nil:
		return st.key()
	case st.Select != nil:
		return control.Message{T: control.MsgSelect, Box: st.Select.Box}, nil
	case st.Click != nil:
		return control.Message{T: control.MsgClick, Box: st.Click.Box}, nil
	}
	return control.Message{}, st.errorf("empty statement")
}

func (st *Statement) down() (control.Message, error) {
	d := st.Down
	msg := pointerMessage(control.MsgDown, &d.At)
	msg.Box = d.Box
	msg.Target = control.Kind(d.Kind)
	if msg.Target != control.KindResize {
		if d.Handle != "" {
			return control.Message{}, st.errorf("%s takes no handle", d.Kind)
		}
		return msg, nil
	}
	if d.Handle == "" {
		return control.Message{}, st.errorf("resize needs a handle")
	}
	h, err := transform.ParseHandle(d.Handle)
	if err != nil {
		return control.Message{}, st.errorf("%v", err)
	}
	msg.Handle = string(h)
	return msg, nil
}

var keyNames = map[string]box.Key{
	"left":  box.KeyLeft,
	"right": box.KeyRight,
	"up":    box.KeyUp,
	"down":  box.KeyDown,
}

func (st *Statement) key() (control.Message, error) {
	k := st.Key
	name := strings.ToLower(strings.TrimPrefix(k.Name, "Arrow"))
	key, ok := keyNames[name]
	if !ok {
		return control.Message{}, st.errorf("unknown key %q", k.Name)
	}
	msg := control.Message{T: control.MsgKey, Box: k.Box, Key: key, Phase: control.PhaseDown}
	for _, m := range k.Mods {
		switch m {
		case "shift":
			msg.Shift = true
		case "ctrl":
			msg.Ctrl = true
		case "release":
			msg.Phase = control.PhaseUp
		}
	}
	return msg, nil
}

func pointerMessage(t string, p *Pointer) control.Message {
	return control.Message{T: t, X: p.X, Y: p.Y, Units: p.Units}
}

func (st *Statement) errorf(format string, args ...any) error {
	return participle.Errorf(st.Pos, format, args...)
}
