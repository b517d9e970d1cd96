// Package app wires configuration, session state and the HTTP surface together.
package app

import (
	"errors"
	"log/slog"

	"github.com/frudas24/rotabox/internal/config"
	"github.com/frudas24/rotabox/internal/control"
	"github.com/frudas24/rotabox/internal/logging"
	"github.com/frudas24/rotabox/internal/scene"
	"github.com/frudas24/rotabox/internal/session"
)

// App coordinates the HTTP API and the control websocket.
type App struct {
	cfg        config.Config
	session    *session.Session
	dispatcher *control.Dispatcher
	control    *control.Server
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, sess *session.Session) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	sess.SetBoundToParent(cfg.BoundToParent)

	d := control.NewDispatcher(sess, EngineOptions(cfg), nil)
	return &App{
		cfg:        cfg,
		session:    sess,
		dispatcher: d,
		control:    control.NewServer(d),
	}, nil
}

// EngineOptions maps configuration onto gesture engine options.
func EngineOptions(cfg config.Config) control.Options {
	return control.Options{
		BoundToParent: cfg.BoundToParent,
		MinWidth:      cfg.MinWidth,
		MinHeight:     cfg.MinHeight,
		KeyRepeat:     cfg.KeyRepeat,
	}
}

// Start loads the configured scene into the session.
func (a *App) Start() error {
	sc, err := scene.Load(a.cfg.ScenePath)
	if err != nil {
		return err
	}
	if err := sc.Apply(a.session, a.cfg.MinWidth, a.cfg.MinHeight); err != nil {
		return err
	}
	logging.Logger().Info("scene loaded",
		slog.String("path", a.cfg.ScenePath),
		slog.Int("boxes", len(sc.Boxes)))
	return nil
}

// Dispatcher returns the control message dispatcher.
func (a *App) Dispatcher() *control.Dispatcher {
	return a.dispatcher
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
