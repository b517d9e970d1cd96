// Package config loads environment configuration for rotabox.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr    = "127.0.0.1:8790"
	defaultDataDir       = "./data"
	defaultBoundToParent = true
	defaultMinSize       = 10
	defaultKeyRepeatMs   = 300
	defaultLogLevel      = "info"
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr    string
	DataDir       string
	ScenePath     string
	BoundToParent bool
	MinWidth      float64
	MinHeight     float64
	KeyRepeat     time.Duration
	LogLevel      string
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:    defaultListenAddr,
		DataDir:       defaultDataDir,
		ScenePath:     filepath.Join(defaultDataDir, "scene.yaml"),
		BoundToParent: defaultBoundToParent,
		MinWidth:      defaultMinSize,
		MinHeight:     defaultMinSize,
		KeyRepeat:     defaultKeyRepeatMs * time.Millisecond,
		LogLevel:      defaultLogLevel,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.ScenePath = envString("SCENE_PATH", filepath.Join(cfg.DataDir, "scene.yaml"))
	cfg.BoundToParent = envBool("BOUND_TO_PARENT", cfg.BoundToParent)
	cfg.LogLevel = strings.ToLower(envString("LOG_LEVEL", cfg.LogLevel))

	minWidth, err := envFloat("MIN_WIDTH", cfg.MinWidth)
	if err != nil {
		return Config{}, err
	}
	if minWidth <= 0 {
		return Config{}, errors.New("MIN_WIDTH must be > 0")
	}
	cfg.MinWidth = minWidth

	minHeight, err := envFloat("MIN_HEIGHT", cfg.MinHeight)
	if err != nil {
		return Config{}, err
	}
	if minHeight <= 0 {
		return Config{}, errors.New("MIN_HEIGHT must be > 0")
	}
	cfg.MinHeight = minHeight

	keyRepeat, err := envInt("KEY_REPEAT_MS", defaultKeyRepeatMs)
	if err != nil {
		return Config{}, err
	}
	if keyRepeat <= 0 {
		return Config{}, errors.New("KEY_REPEAT_MS must be > 0")
	}
	cfg.KeyRepeat = time.Duration(keyRepeat) * time.Millisecond

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
