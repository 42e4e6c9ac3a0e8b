// Package nativeapi exposes the JSON API consumed by the web client.
package nativeapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AsthaPitambarwale/music-mood-dj/core/stats"
	"github.com/AsthaPitambarwale/music-mood-dj/core/upload"
	"github.com/AsthaPitambarwale/music-mood-dj/dj"
	"github.com/AsthaPitambarwale/music-mood-dj/log"
	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

// Router serves the native JSON API.
type Router struct {
	http.Handler
	ds        model.DataStore
	playlists *dj.Service
	uploads   *upload.Service
	top       *stats.TopTracksCache
	plays     *stats.Tracker
}

// New creates the API router.
func New(ds model.DataStore, playlists *dj.Service, uploads *upload.Service, top *stats.TopTracksCache, plays *stats.Tracker) *Router {
	n := &Router{ds: ds, playlists: playlists, uploads: uploads, top: top, plays: plays}
	n.Handler = n.routes()
	return n
}

func (n *Router) routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/tracks", n.addTrackRoutes)
	r.Route("/playlists", n.addPlaylistRoutes)
	r.Route("/stats", n.addStatsRoutes)
	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && err.Error() != "EOF" {
		log.Error(r.Context(), "Failed to decode request body", "error", err)
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors onto status codes. Unmapped errors are 500s
// and their details stay out of the response body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, model.ErrInvalidMood):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrEmptyCatalog):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		log.Error(r.Context(), "Request failed", "path", r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
