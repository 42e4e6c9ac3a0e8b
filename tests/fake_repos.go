// Package tests provides in-memory fakes shared by package tests.
package tests

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

// FakeDataStore bundles the fake repositories behind model.DataStore.
type FakeDataStore struct {
	TrackRepo    *FakeTrackRepo
	PlaylistRepo *FakePlaylistRepo
}

// NewFakeDataStore creates an empty in-memory data store.
func NewFakeDataStore() *FakeDataStore {
	return &FakeDataStore{
		TrackRepo:    &FakeTrackRepo{},
		PlaylistRepo: &FakePlaylistRepo{},
	}
}

func (ds *FakeDataStore) Track(ctx context.Context) model.TrackRepository {
	return ds.TrackRepo
}

func (ds *FakeDataStore) Playlist(ctx context.Context) model.PlaylistRepository {
	return ds.PlaylistRepo
}

// FakeTrackRepo is an in-memory model.TrackRepository. Err, when set, is
// returned by every method. TopCalls counts TopByPlayCount invocations so
// cache tests can assert how often the catalog was queried.
type FakeTrackRepo struct {
	mu       sync.Mutex
	Tracks   model.Tracks
	Err      error
	TopCalls int
	nextID   int
}

func (r *FakeTrackRepo) Put(ctx context.Context, t *model.Track) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if t.ID == "" {
		r.nextID++
		t.ID = "track-" + strconv.Itoa(r.nextID)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Artist == "" {
		t.Artist = "Unknown"
	}
	if t.Mood == "" {
		t.Mood = "unknown"
	}
	r.Tracks = append(r.Tracks, *t)
	return nil
}

func (r *FakeTrackRepo) Get(ctx context.Context, id string) (*model.Track, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.Tracks {
		if r.Tracks[i].ID == id {
			t := r.Tracks[i]
			return &t, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *FakeTrackRepo) GetAll(ctx context.Context) (model.Tracks, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return append(model.Tracks{}, r.Tracks...), nil
}

func (r *FakeTrackRepo) FindByMood(ctx context.Context, pattern string) (model.Tracks, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	matched := model.Tracks{}
	for _, t := range r.Tracks {
		if containsFold(t.Mood, pattern) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *FakeTrackRepo) TopByPlayCount(ctx context.Context, n int) (model.Tracks, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.TopCalls++
	if r.Err != nil {
		return nil, r.Err
	}
	sorted := append(model.Tracks{}, r.Tracks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PlayCount > sorted[j].PlayCount
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}

func (r *FakeTrackRepo) IncrementPlayCount(ctx context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	for i := range r.Tracks {
		if r.Tracks[i].ID == id {
			r.Tracks[i].PlayCount++
			return r.Tracks[i].PlayCount, nil
		}
	}
	return 0, model.ErrNotFound
}

// FakePlaylistRepo is an in-memory model.PlaylistRepository.
type FakePlaylistRepo struct {
	mu        sync.Mutex
	Playlists []model.Playlist
	Err       error
	nextID    int
}

func (r *FakePlaylistRepo) Put(ctx context.Context, p *model.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if p.ID == "" {
		r.nextID++
		p.ID = "playlist-" + strconv.Itoa(r.nextID)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.Playlists = append(r.Playlists, *p)
	return nil
}

func (r *FakePlaylistRepo) Get(ctx context.Context, id string) (*model.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.Playlists {
		if r.Playlists[i].ID == id {
			p := r.Playlists[i]
			return &p, nil
		}
	}
	return nil, model.ErrNotFound
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
