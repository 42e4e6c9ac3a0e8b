package nativeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AsthaPitambarwale/music-mood-dj/core/upload"
	"github.com/AsthaPitambarwale/music-mood-dj/log"
)

// maxUploadSize bounds the multipart form kept in memory before spilling
// to temp files.
const maxUploadSize = 32 << 20

func (n *Router) addTrackRoutes(r chi.Router) {
	r.Get("/", n.handleListTracks)
	r.Post("/upload", n.handleUploadTrack)
}

func (n *Router) handleListTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := n.ds.Track(r.Context()).GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

func (n *Router) handleUploadTrack(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error(r.Context(), "Unable to parse upload payload", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart payload"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no file uploaded"})
		return
	}
	defer file.Close()

	meta := upload.Metadata{
		Title:  r.FormValue("title"),
		Artist: r.FormValue("artist"),
		Mood:   r.FormValue("mood"),
	}
	track, err := n.uploads.Store(r.Context(), meta, header.Filename, file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, track)
}
