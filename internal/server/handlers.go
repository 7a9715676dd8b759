package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/maxixo/datavista/internal/dataset"
	"github.com/maxixo/datavista/internal/ingest"
	"github.com/maxixo/datavista/internal/remote"
	"github.com/maxixo/datavista/internal/store"
	"github.com/maxixo/datavista/internal/transform"
)

type handler struct {
	workspace workspaceManager
	engine    syncEngine
}

func (h *handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /datasets", h.listDatasets)
	mux.HandleFunc("POST /datasets", h.createDataset)
	mux.HandleFunc("GET /datasets/{id}", h.getDataset)
	mux.HandleFunc("PUT /datasets/{id}", h.updateDataset)
	mux.HandleFunc("DELETE /datasets/{id}", h.deleteDataset)
	mux.HandleFunc("POST /datasets/{id}/transform", h.transformDataset)
	mux.HandleFunc("GET /sync/status", h.syncStatus)
	mux.HandleFunc("POST /sync/online", h.syncOnline)
	mux.HandleFunc("POST /sync/refresh", h.syncRefresh)
	return mux
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Storage failures
// become a 503 so the UI can show a degraded-mode warning; sync failures
// never pass through here, they only show up in the pending count.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, remote.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, dataset.ErrEmptyDataset), errors.Is(err, dataset.ErrTooManyRows):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorEnvelope{Error: err.Error()})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) listDatasets(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "owner query parameter required"})
		return
	}

	sets, err := h.workspace.ListByOwner(owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"datasets": sets})
}

// createRequest carries an upload. Content is the raw CSV text or the JSON
// object array, decided by Format.
type createRequest struct {
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

func (h *handler) createDataset(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "invalid request body"})
		return
	}
	if req.OwnerID == "" || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "ownerId and name required"})
		return
	}

	var rows []dataset.Row
	var err error
	switch req.Format {
	case "csv":
		rows, err = ingest.CSV(strings.NewReader(req.Content))
	case "json":
		rows, err = ingest.JSON(strings.NewReader(req.Content))
	default:
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "format must be csv or json"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: err.Error()})
		return
	}

	d, err := h.workspace.Create(req.OwnerID, req.Name, rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"dataset": d})
}

func (h *handler) getDataset(w http.ResponseWriter, r *http.Request) {
	d, err := h.workspace.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dataset": d})
}

type updateRequest struct {
	Name string        `json:"name"`
	Rows []dataset.Row `json:"rows"`
}

func (h *handler) updateDataset(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "invalid request body"})
		return
	}

	d, err := h.workspace.Update(r.PathValue("id"), req.Name, req.Rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dataset": d})
}

func (h *handler) deleteDataset(w http.ResponseWriter, r *http.Request) {
	if err := h.workspace.Delete(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type transformRequest struct {
	Filters []transform.FilterConfig `json:"filters"`
	Sort    *transform.SortConfig    `json:"sort"`
	GroupBy *transform.GroupByConfig `json:"groupBy"`
}

func (h *handler) transformDataset(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "invalid request body"})
		return
	}

	d, err := h.workspace.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	rows := transform.Apply(d.Rows, req.Filters, req.GroupBy, req.Sort)
	writeJSON(w, http.StatusOK, map[string]any{"rows": rows, "rowCount": len(rows)})
}

func (h *handler) syncStatus(w http.ResponseWriter, _ *http.Request) {
	pending, err := h.workspace.PendingCount()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"pending":  pending,
		"online":   h.engine.Online(),
		"draining": h.engine.Draining(),
	})
}

type onlineRequest struct {
	Online bool `json:"online"`
}

// syncOnline is the connectivity signal feed. The platform watching actual
// connectivity posts flips here.
func (h *handler) syncOnline(w http.ResponseWriter, r *http.Request) {
	var req onlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "invalid request body"})
		return
	}

	h.engine.OnConnectivityChange(req.Online)
	writeJSON(w, http.StatusOK, map[string]bool{"online": req.Online})
}

// syncRefresh pulls the remote dataset list into the local store, outside
// the queue path.
func (h *handler) syncRefresh(w http.ResponseWriter, r *http.Request) {
	n, err := h.workspace.SyncFromRemote(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"fetched": n})
}
