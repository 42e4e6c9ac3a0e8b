// Package dj generates mood playlists: it selects catalog candidates, asks
// an external language model for suggestions, reconciles the untrusted
// answer against the catalog and persists the result.
package dj

import (
	"context"

	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

// SuggestionOracle asks an external language model which of the given
// candidate tracks fit a mood. Implementations return whatever could be
// salvaged from the model's reply; they must never return items that were
// not parseable, but they may return items referencing tracks that do not
// exist. Transport and timeout failures surface as errors.
type SuggestionOracle interface {
	Suggest(ctx context.Context, mood string, candidates model.Tracks) ([]model.Suggestion, error)
}

// Reconciler assembles validated playlist entries from untrusted
// suggestions. See the engine package for the implementation.
type Reconciler interface {
	Reconcile(ctx context.Context, mood string, candidates model.Tracks, suggestions []model.Suggestion) ([]model.PlaylistEntry, error)
}
