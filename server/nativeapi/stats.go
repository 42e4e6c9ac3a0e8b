package nativeapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AsthaPitambarwale/music-mood-dj/conf"
)

type playCountResponse struct {
	TrackID   string `json:"trackId"`
	PlayCount int64  `json:"playCount"`
}

func (n *Router) addStatsRoutes(r chi.Router) {
	r.Get("/top-tracks", n.handleTopTracks)
	r.Post("/tracks/{id}/play", n.handleIncrementPlay)
}

func (n *Router) handleTopTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := n.top.TopTracks(r.Context(), topTracksLimit(r.URL.Query().Get("n")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

func (n *Router) handleIncrementPlay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	count, err := n.plays.IncrementPlayCount(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playCountResponse{TrackID: id, PlayCount: count})
}

func topTracksLimit(raw string) int {
	limit := conf.Server.Stats.DefaultTop
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}
