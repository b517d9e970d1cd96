package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/frudas24/rotabox/internal/config"
	"github.com/frudas24/rotabox/internal/control"
	"github.com/frudas24/rotabox/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
container: {w: 500, h: 250}
resolution: {width: 1000, height: 1000}
boxes:
  - id: card
    left: 100
    top: 50
    width: 200
    height: 100
    resize: false
`

// newTestApp returns a started App over a scene written to a temp dir.
func newTestApp(t *testing.T) *App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o600))
	cfg := config.Config{ScenePath: path, BoundToParent: true, MinWidth: 10, MinHeight: 10}
	a, err := New(cfg, session.New())
	require.NoError(t, err)
	require.NoError(t, a.Start())
	return a
}

// TestHandleState_ReportsBoxes verifies /api/state lists boxes with scaled labels.
func TestHandleState_ReportsBoxes(t *testing.T) {
	a := newTestApp(t)
	mux := http.NewServeMux()
	a.RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/state", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp stateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Container)
	assert.Equal(t, 500.0, resp.Container.W)
	assert.True(t, resp.BoundToParent)
	assert.False(t, resp.Busy)
	require.Len(t, resp.Boxes, 1)
	card := resp.Boxes[0]
	assert.Equal(t, "card", card.ID)
	assert.Equal(t, "(200, 200)", card.Coords)
	assert.Equal(t, "400 x 400", card.Dims)
	assert.True(t, card.Drag)
	assert.False(t, card.Resize)
}

// TestHandleState_MethodNotAllowed verifies only GET is served.
func TestHandleState_MethodNotAllowed(t *testing.T) {
	a := newTestApp(t)
	rec := httptest.NewRecorder()
	a.handleState(rec, httptest.NewRequest(http.MethodPost, "/api/state", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestHandleState_FollowsDispatcher verifies gestures show up in the state.
func TestHandleState_FollowsDispatcher(t *testing.T) {
	a := newTestApp(t)
	d := a.Dispatcher()
	require.NoError(t, d.Handle(control.Message{T: control.MsgDown, Box: "card", X: 150, Y: 80}))

	rec := httptest.NewRecorder()
	a.handleState(rec, httptest.NewRequest(http.MethodGet, "/api/state", nil))
	var resp stateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Busy)

	require.NoError(t, d.Handle(control.Message{T: control.MsgMove, X: 160, Y: 80}))
	require.NoError(t, d.Handle(control.Message{T: control.MsgUp, X: 160, Y: 80}))
	g, ok := a.session.Geometry("card")
	require.True(t, ok)
	assert.Equal(t, 110.0, g.Left)
}

// TestNew_RequiresSession verifies a nil session is rejected.
func TestNew_RequiresSession(t *testing.T) {
	_, err := New(config.Config{}, nil)
	assert.Error(t, err)
}
