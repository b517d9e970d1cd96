package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetLogger verifies SetLogger configures the package logger.
func TestSetLogger(t *testing.T) {
	old := Logger()
	defer SetLogger(old)

	var buf bytes.Buffer
	SetLogger(New(&buf, "debug", false))
	Logger().Debug("gesture ignored", slog.String("box", "a"))
	assert.True(t, strings.Contains(buf.String(), "gesture ignored"))
}

// TestSetLogger_Nil verifies nil installs a discard logger.
func TestSetLogger_Nil(t *testing.T) {
	old := Logger()
	defer SetLogger(old)

	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.Equal(t, slog.DiscardHandler, Logger().Handler())
}

// TestNew_Level verifies level parsing and the debug override.
func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", false)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	New(&buf, "error", true).Debug("forced")
	assert.Contains(t, buf.String(), "forced")
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

// TestBufferedHandler verifies records and attributes are captured.
func TestBufferedHandler(t *testing.T) {
	h := NewBufferedHandler()
	l := slog.New(h).With(slog.String("box", "a"))
	l.Debug("move skipped", slog.String("reason", "no container"))

	recs := h.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "move skipped", recs[0].Message)
	assert.Equal(t, "a", recs[0].Attrs["box"])
	assert.Equal(t, "no container", recs[0].Attrs["reason"])
	assert.True(t, h.Contains("skipped"))
}
