package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/frudas24/rotabox/internal/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunReplay_PrintsJSONLines verifies each outbound message is one JSON line.
func TestRunReplay_PrintsJSONLines(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	scene := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scene, []byte("boxes:\n  - {id: b1, left: 0, top: 0, width: 50, height: 50}\n"), 0o600))
	gesture := filepath.Join(dir, "drag.gesture")
	require.NoError(t, os.WriteFile(gesture, []byte("container 200 200\ndown b1 drag 10 10\nmove 30 40\nup 30 40\n"), 0o600))

	scenePath = scene
	t.Cleanup(func() { scenePath = "" })

	var out bytes.Buffer
	require.NoError(t, runReplay(&out, gesture))

	var types []string
	var last control.Outbound
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var msg control.Outbound
		require.NoError(t, json.Unmarshal(sc.Bytes(), &msg))
		types = append(types, msg.T)
		last = msg
	}
	assert.Equal(t, []string{"dragOrResize", "dragStart", "drag", "dragOrResize", "dragEnd"}, types)
	require.NotNil(t, last.Geometry)
	assert.Equal(t, 20.0, last.Geometry.Left)
	assert.Equal(t, 30.0, last.Geometry.Top)
}

// TestRunReplay_UnknownBox verifies replay fails on boxes missing from the scene.
func TestRunReplay_UnknownBox(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	gesture := filepath.Join(dir, "ghost.gesture")
	require.NoError(t, os.WriteFile(gesture, []byte("down ghost drag 1 1\n"), 0o600))
	scenePath = filepath.Join(dir, "none.yaml")
	t.Cleanup(func() { scenePath = "" })

	err := runReplay(&bytes.Buffer{}, gesture)
	assert.ErrorContains(t, err, "message 1 (down)")
}

// TestRunReplay_FlushesRepeatedKeys verifies key presses held back by key
// repeat are printed before replay returns.
func TestRunReplay_FlushesRepeatedKeys(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	scene := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scene, []byte("boxes:\n  - {id: b1, left: 0, top: 0, width: 50, height: 50}\n"), 0o600))
	gesture := filepath.Join(dir, "keys.gesture")
	require.NoError(t, os.WriteFile(gesture, []byte("key b1 right\nkey b1 right shift\n"), 0o600))
	scenePath = scene
	t.Cleanup(func() { scenePath = "" })

	var out bytes.Buffer
	require.NoError(t, runReplay(&out, gesture))

	var lefts []float64
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var msg control.Outbound
		require.NoError(t, json.Unmarshal(sc.Bytes(), &msg))
		require.Equal(t, control.OutKey, msg.T)
		require.NotNil(t, msg.Geometry)
		lefts = append(lefts, msg.Geometry.Left)
	}
	assert.Equal(t, []float64{1, 11}, lefts)
}
