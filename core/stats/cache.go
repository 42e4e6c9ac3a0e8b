// Package stats serves track popularity: a TTL cache over the top-tracks
// query and the play-count mutation that invalidates it.
package stats

import (
	"context"
	"sync"
	"time"

	"github.com/AsthaPitambarwale/music-mood-dj/log"
	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

// Clock returns the current time; injectable for tests.
type Clock func() time.Time

// TopTracksCache caches the top-N-by-play-count query for a fixed TTL.
// It is safe for concurrent use. Racing cold-path loads are allowed: both
// run a valid catalog query and the last writer wins.
type TopTracksCache struct {
	ds    model.DataStore
	ttl   time.Duration
	clock Clock

	mu     sync.RWMutex
	tracks model.Tracks
	width  int // the n the cached snapshot was queried with
	expiry time.Time
}

// NewTopTracksCache creates a cache over the given catalog. A nil clock
// defaults to time.Now.
func NewTopTracksCache(ds model.DataStore, ttl time.Duration, clock Clock) *TopTracksCache {
	if clock == nil {
		clock = time.Now
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &TopTracksCache{ds: ds, ttl: ttl, clock: clock}
}

// TopTracks returns the top n tracks by play count. Served from cache when
// warm and the cached snapshot was queried with at least n; otherwise the
// catalog is re-queried and the snapshot replaced.
func (c *TopTracksCache) TopTracks(ctx context.Context, n int) (model.Tracks, error) {
	if n <= 0 {
		return model.Tracks{}, nil
	}

	if tracks, ok := c.cached(n); ok {
		return tracks, nil
	}

	tracks, err := c.ds.Track(ctx).TopByPlayCount(ctx, n)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.tracks = tracks
	c.width = n
	c.expiry = c.clock().Add(c.ttl)
	c.mu.Unlock()

	log.Debug(ctx, "Top tracks cache refreshed", "n", n, "size", len(tracks))
	return tracks, nil
}

// Invalidate forces the next read to re-query the catalog.
func (c *TopTracksCache) Invalidate() {
	c.mu.Lock()
	c.tracks = nil
	c.width = 0
	c.expiry = time.Time{}
	c.mu.Unlock()
}

func (c *TopTracksCache) cached(n int) (model.Tracks, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tracks == nil || n > c.width || !c.clock().Before(c.expiry) {
		return nil, false
	}
	tracks := c.tracks
	if n < len(tracks) {
		tracks = tracks[:n]
	}
	return append(model.Tracks{}, tracks...), true
}
