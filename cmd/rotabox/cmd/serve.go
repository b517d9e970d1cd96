package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/rotabox/internal/app"
	"github.com/frudas24/rotabox/internal/config"
	"github.com/frudas24/rotabox/internal/logging"
	"github.com/frudas24/rotabox/internal/session"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the control websocket and state API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// runServe wires the application and blocks until shutdown.
func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// LOG_LEVEL may have come from the .env file.
	logging.SetLogger(logging.New(os.Stderr, cfg.LogLevel, debug))
	log := logging.Logger()
	logStartup(log, cfg)

	a, err := app.New(cfg, session.New())
	if err != nil {
		return err
	}
	if err := a.Start(); err != nil {
		return err
	}

	mux := http.NewServeMux()
	a.RegisterRoutes(mux)
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logStartup reports configuration and connection info.
func logStartup(log *slog.Logger, cfg config.Config) {
	log.Info("rotabox starting")
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Info("env check: ok", slog.String("path", envPath))
	} else {
		log.Info("env check: missing", slog.String("path", envPath))
	}
	if fileExists(cfg.ScenePath) {
		log.Info("scene check: ok", slog.String("path", cfg.ScenePath))
	} else {
		log.Info("scene check: missing, starting empty", slog.String("path", cfg.ScenePath))
	}
	log.Debug("engine options",
		slog.Bool("boundToParent", cfg.BoundToParent),
		slog.Float64("minWidth", cfg.MinWidth),
		slog.Float64("minHeight", cfg.MinHeight),
		slog.Duration("keyRepeat", cfg.KeyRepeat))
	logListenStatus(log, cfg.ListenAddr)
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(log *slog.Logger, addr string) {
	log.Info("listen addr", slog.String("addr", addr))
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Info("control url", slog.String("url", "ws://"+net.JoinHostPort(host, port)+"/ws/control"))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
