package nativeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type generatePlaylistPayload struct {
	Mood string `json:"mood"`
}

func (n *Router) addPlaylistRoutes(r chi.Router) {
	r.Post("/generate", n.handleGeneratePlaylist)
	r.Get("/{id}", n.handleGetPlaylist)
}

func (n *Router) handleGeneratePlaylist(w http.ResponseWriter, r *http.Request) {
	var payload generatePlaylistPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	playlist, err := n.playlists.GeneratePlaylist(r.Context(), payload.Mood)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, playlist)
}

func (n *Router) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := n.playlists.GetPlaylist(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}
