package dj

import (
	"context"
	"strings"

	"github.com/AsthaPitambarwale/music-mood-dj/log"
	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

// Service orchestrates playlist generation end to end.
type Service struct {
	ds     model.DataStore
	oracle SuggestionOracle
	engine Reconciler
}

// NewService creates a playlist generation Service.
func NewService(ds model.DataStore, oracle SuggestionOracle, engine Reconciler) *Service {
	return &Service{ds: ds, oracle: oracle, engine: engine}
}

// GeneratePlaylist builds and persists a playlist for the given mood.
// Oracle failures are absorbed: the playlist falls back to a random
// selection rather than failing. Catalog and store errors propagate.
func (s *Service) GeneratePlaylist(ctx context.Context, mood string) (*model.Playlist, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return nil, model.ErrInvalidMood
	}

	candidates, err := s.selectCandidates(ctx, mood)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, model.ErrEmptyCatalog
	}

	suggestions, err := s.oracle.Suggest(ctx, mood, candidates)
	if err != nil {
		// The model being down or slow must never fail playlist
		// generation; reconcile with zero suggestions instead.
		log.Warn(ctx, "Suggestion oracle unavailable, falling back", "mood", mood, err)
		suggestions = nil
	}

	entries, err := s.engine.Reconcile(ctx, mood, candidates, suggestions)
	if err != nil {
		return nil, err
	}

	playlist := &model.Playlist{Mood: mood, Tracks: entries}
	if err := s.ds.Playlist(ctx).Put(ctx, playlist); err != nil {
		return nil, err
	}
	log.Info(ctx, "Generated playlist", "mood", mood, "id", playlist.ID, "entries", len(entries))
	return playlist, nil
}

// GetPlaylist returns a persisted playlist by ID.
func (s *Service) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	return s.ds.Playlist(ctx).Get(ctx, id)
}

// selectCandidates returns the catalog subset whose mood tag matches, or
// the whole catalog when no track carries the mood.
func (s *Service) selectCandidates(ctx context.Context, mood string) (model.Tracks, error) {
	repo := s.ds.Track(ctx)
	candidates, err := repo.FindByMood(ctx, mood)
	if err != nil {
		return nil, err
	}
	if len(candidates) > 0 {
		return candidates, nil
	}
	return repo.GetAll(ctx)
}
