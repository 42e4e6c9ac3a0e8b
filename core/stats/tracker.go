package stats

import (
	"context"

	"github.com/AsthaPitambarwale/music-mood-dj/log"
	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

// Tracker records play events. It is the only writer of play counts and
// always invalidates the top-tracks cache after a successful increment.
type Tracker struct {
	ds    model.DataStore
	cache *TopTracksCache
}

// NewTracker creates a Tracker wired to the catalog and cache.
func NewTracker(ds model.DataStore, cache *TopTracksCache) *Tracker {
	return &Tracker{ds: ds, cache: cache}
}

// IncrementPlayCount adds one play to the track and returns the new count.
// Returns model.ErrNotFound when the track does not exist.
func (t *Tracker) IncrementPlayCount(ctx context.Context, trackID string) (int64, error) {
	count, err := t.ds.Track(ctx).IncrementPlayCount(ctx, trackID)
	if err != nil {
		return 0, err
	}
	t.cache.Invalidate()
	log.Debug(ctx, "Play count incremented", "trackId", trackID, "playCount", count)
	return count, nil
}
