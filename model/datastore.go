package model

import "context"

// TrackRepository is the read/write interface over the track catalog.
type TrackRepository interface {
	// Put inserts the track, assigning ID and CreatedAt when unset.
	Put(ctx context.Context, t *Track) error

	// Get returns the track with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Track, error)

	// GetAll returns the full catalog in insertion order.
	GetAll(ctx context.Context) (Tracks, error)

	// FindByMood returns tracks whose mood tag contains the pattern,
	// case-insensitively, in insertion order.
	FindByMood(ctx context.Context, pattern string) (Tracks, error)

	// TopByPlayCount returns up to n tracks ordered by play count
	// descending, ties broken by insertion order.
	TopByPlayCount(ctx context.Context, n int) (Tracks, error)

	// IncrementPlayCount adds one to the track's play count and returns
	// the new value, or ErrNotFound.
	IncrementPlayCount(ctx context.Context, id string) (int64, error)
}

// PlaylistRepository persists generated playlists.
type PlaylistRepository interface {
	// Put inserts the playlist, assigning ID and CreatedAt when unset.
	Put(ctx context.Context, p *Playlist) error

	// Get returns the playlist with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Playlist, error)
}

// DataStore groups the repositories behind a single accessor, so the object
// graph only needs one persistence handle.
type DataStore interface {
	Track(ctx context.Context) TrackRepository
	Playlist(ctx context.Context) PlaylistRepository
}
