package app

import (
	"encoding/json"
	"net/http"

	"github.com/frudas24/rotabox/internal/box"
	"github.com/frudas24/rotabox/internal/geom"
)

// RegisterRoutes wires API and websocket handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/state", a.handleState)
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
}

type stateResponse struct {
	Container     *geom.Rect     `json:"container,omitempty"`
	Resolution    box.Resolution `json:"resolution"`
	BoundToParent bool           `json:"boundToParent"`
	DragOrResize  bool           `json:"dragOrResize"`
	Busy          bool           `json:"busy"`
	Selected      string         `json:"selected,omitempty"`
	Boxes         []boxState     `json:"boxes"`
}

type boxState struct {
	ID       string       `json:"id"`
	Geometry box.Geometry `json:"geometry"`
	Coords   string       `json:"coords"`
	Dims     string       `json:"dims"`
	Drag     bool         `json:"drag"`
	Resize   bool         `json:"resize"`
	Rotate   bool         `json:"rotate"`
}

// handleState returns the current session state with box labels.
func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	snap := a.session.Snapshot()
	resp := stateResponse{
		Resolution:    snap.Resolution,
		BoundToParent: snap.BoundToParent,
		DragOrResize:  snap.DragOrResize,
		Busy:          a.dispatcher.Busy(),
		Selected:      snap.Selected,
		Boxes:         make([]boxState, 0, len(snap.Boxes)),
	}
	container, ok := a.session.Container()
	if ok {
		resp.Container = &container
	}
	for _, b := range snap.Boxes {
		coords, dims := box.Labels(b.Geometry, snap.Resolution, container)
		resp.Boxes = append(resp.Boxes, boxState{
			ID:       b.ID,
			Geometry: b.Geometry,
			Coords:   coords,
			Dims:     dims,
			Drag:     b.Caps.Drag == box.Enabled,
			Resize:   b.Caps.Resize == box.Enabled,
			Rotate:   b.Caps.Rotate == box.Enabled,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
