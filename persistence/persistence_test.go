package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

func openTestStore(t *testing.T) model.DataStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db)
}

func TestTrackPutAssignsIDAndDefaults(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Track(ctx)

	track := &model.Track{Title: "Sunny Day", MediaURL: "/uploads/a.mp3"}
	require.NoError(t, repo.Put(ctx, track))

	assert.NotEmpty(t, track.ID)
	assert.False(t, track.CreatedAt.IsZero())

	got, err := repo.Get(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunny Day", got.Title)
	assert.Equal(t, "Unknown", got.Artist)
	assert.Equal(t, "unknown", got.Mood)
	assert.EqualValues(t, 0, got.PlayCount)
}

func TestTrackGetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Track(ctx)

	_, err := repo.Get(ctx, "missing")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestFindByMoodSubstringCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Track(ctx)

	require.NoError(t, repo.Put(ctx, &model.Track{Title: "A", Mood: "Chill Vibes", MediaURL: "/a"}))
	require.NoError(t, repo.Put(ctx, &model.Track{Title: "B", Mood: "energetic", MediaURL: "/b"}))
	require.NoError(t, repo.Put(ctx, &model.Track{Title: "C", Mood: "chill", MediaURL: "/c"}))

	tracks, err := repo.FindByMood(ctx, "CHILL")
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "A", tracks[0].Title)
	assert.Equal(t, "C", tracks[1].Title)

	tracks, err = repo.FindByMood(ctx, "metal")
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestIncrementPlayCount(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Track(ctx)

	track := &model.Track{Title: "A", MediaURL: "/a"}
	require.NoError(t, repo.Put(ctx, track))

	count, err := repo.IncrementPlayCount(ctx, track.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = repo.IncrementPlayCount(ctx, track.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	_, err = repo.IncrementPlayCount(ctx, "missing")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestTopByPlayCountOrderAndTieBreak(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).Track(ctx)

	a := &model.Track{Title: "A", MediaURL: "/a"}
	b := &model.Track{Title: "B", MediaURL: "/b"}
	c := &model.Track{Title: "C", MediaURL: "/c"}
	for _, tr := range []*model.Track{a, b, c} {
		require.NoError(t, repo.Put(ctx, tr))
	}
	for i := 0; i < 3; i++ {
		_, err := repo.IncrementPlayCount(ctx, b.ID)
		require.NoError(t, err)
	}

	top, err := repo.TopByPlayCount(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Title)
	// A and C tie at zero plays; insertion order breaks the tie.
	assert.Equal(t, "A", top[1].Title)
}

func TestPlaylistRoundTrip(t *testing.T) {
	ctx := context.Background()
	ds := openTestStore(t)
	tracks := ds.Track(ctx)
	playlists := ds.Playlist(ctx)

	a := &model.Track{Title: "A", MediaURL: "/a"}
	b := &model.Track{Title: "B", MediaURL: "/b"}
	require.NoError(t, tracks.Put(ctx, a))
	require.NoError(t, tracks.Put(ctx, b))

	p := &model.Playlist{
		Mood: "chill",
		Tracks: []model.PlaylistEntry{
			{TrackID: a.ID, Order: 1, Weight: 0.9},
			{TrackID: b.ID, Order: 2, Weight: 0.5},
		},
	}
	require.NoError(t, playlists.Put(ctx, p))
	require.NotEmpty(t, p.ID)

	got, err := playlists.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "chill", got.Mood)
	require.Len(t, got.Tracks, 2)
	assert.Equal(t, a.ID, got.Tracks[0].TrackID)
	assert.Equal(t, 1, got.Tracks[0].Order)
	assert.Equal(t, 0.9, got.Tracks[0].Weight)
	assert.Equal(t, b.ID, got.Tracks[1].TrackID)

	_, err = playlists.Get(ctx, "missing")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}
