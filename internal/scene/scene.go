// Package scene loads the boxes an editor starts with. Scenes are read-only
// fixtures; edits live in the session and are never written back.
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/frudas24/rotabox/internal/box"
	"github.com/frudas24/rotabox/internal/geom"
	"github.com/frudas24/rotabox/internal/session"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene is returned for scenes that cannot be applied.
var ErrInvalidScene = errors.New("invalid scene")

// Scene is the on-disk description of a container and its boxes.
type Scene struct {
	Container     geom.Rect      `yaml:"container"`
	Resolution    box.Resolution `yaml:"resolution,omitempty"`
	BoundToParent *bool          `yaml:"boundToParent,omitempty"`
	Boxes         []Box          `yaml:"boxes"`
}

// Box is one box entry. Missing capability flags mean enabled.
type Box struct {
	ID           string `yaml:"id"`
	box.Geometry `yaml:",inline"`
	Drag         *bool `yaml:"drag,omitempty"`
	Resize       *bool `yaml:"resize,omitempty"`
	Rotate       *bool `yaml:"rotate,omitempty"`
}

// Capabilities resolves the entry's gesture switches.
func (b Box) Capabilities() box.Capabilities {
	return box.Capabilities{
		Drag:   box.ResolveCapability(b.Drag),
		Resize: box.ResolveCapability(b.Resize),
		Rotate: box.ResolveCapability(b.Rotate),
	}
}

// Load reads a scene from disk. Missing files return an empty scene.
func Load(path string) (Scene, error) {
	var s Scene
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return s, nil
}

// Validate checks ids and geometry before anything is applied. Boxes
// smaller than minWidth x minHeight are rejected; non-positive minimums only
// require a positive size.
func (s Scene) Validate(minWidth, minHeight float64) error {
	seen := map[string]bool{}
	for i, b := range s.Boxes {
		if b.ID == "" {
			return fmt.Errorf("%w: box %d has no id", ErrInvalidScene, i)
		}
		if seen[b.ID] {
			return fmt.Errorf("%w: box %q listed twice", ErrInvalidScene, b.ID)
		}
		seen[b.ID] = true
		if !b.Valid() || b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%w: box %q needs a finite positive size", ErrInvalidScene, b.ID)
		}
		if b.Width < minWidth || b.Height < minHeight {
			return fmt.Errorf("%w: box %q is %gx%g, below the %gx%g minimum",
				ErrInvalidScene, b.ID, b.Width, b.Height, minWidth, minHeight)
		}
	}
	return nil
}

// Apply validates the scene against the minimum box size and loads it into
// sess. Rotation angles are normalized into [0, 360). A zero-sized container
// leaves the session's container unset until a client reports one.
func (s Scene) Apply(sess *session.Session, minWidth, minHeight float64) error {
	if err := s.Validate(minWidth, minHeight); err != nil {
		return err
	}
	if c := geom.Normalize(s.Container); !c.Empty() {
		sess.SetContainer(c)
	}
	if s.Resolution.Set() {
		sess.SetResolution(s.Resolution)
	}
	if s.BoundToParent != nil {
		sess.SetBoundToParent(*s.BoundToParent)
	}
	for _, b := range s.Boxes {
		g := b.Geometry
		g.RotateAngle = geom.NormalizeAngle(g.RotateAngle)
		if err := sess.Add(b.ID, g, b.Capabilities()); err != nil {
			return err
		}
	}
	return nil
}
