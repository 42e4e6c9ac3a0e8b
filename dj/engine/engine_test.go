package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

func newTestEngine(cfg Config) *Engine {
	return New(cfg, rand.New(rand.NewSource(1)))
}

func fiveTracks() model.Tracks {
	return model.Tracks{
		{ID: "t1", Title: "Sunny Day"},
		{ID: "t2", Title: "Midnight Drive"},
		{ID: "t3", Title: "Rainfall"},
		{ID: "t4", Title: "Golden Hour"},
		{ID: "t5", Title: "Neon Lights"},
	}
}

func assertValidEntries(t *testing.T, entries []model.PlaylistEntry, candidates model.Tracks, maxLen int) {
	t.Helper()
	assert.LessOrEqual(t, len(entries), maxLen)
	known := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		known[c.ID] = struct{}{}
	}
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		assert.Equal(t, i+1, e.Order, "order must be contiguous from 1")
		_, ok := known[e.TrackID]
		assert.True(t, ok, "entry %d references unknown track %s", i, e.TrackID)
		_, dup := seen[e.TrackID]
		assert.False(t, dup, "track %s bound twice", e.TrackID)
		seen[e.TrackID] = struct{}{}
		assert.False(t, math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0))
		assert.Greater(t, e.Weight, 0.0)
		assert.LessOrEqual(t, e.Weight, 1.0)
	}
}

func TestReconcileIDMatchesPreserveWeights(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	candidates := fiveTracks()
	suggestions := []model.Suggestion{
		{TrackID: "t2", Weight: 0.9},
		{TrackID: "t4", Weight: 0.7},
		{TrackID: "t1", Weight: 0.3},
	}

	entries, err := e.Reconcile(context.Background(), "chill", candidates, suggestions)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assertValidEntries(t, entries, candidates, 6)

	assert.Equal(t, "t2", entries[0].TrackID)
	assert.Equal(t, 0.9, entries[0].Weight)
	assert.Equal(t, "t4", entries[1].TrackID)
	assert.Equal(t, 0.7, entries[1].Weight)
	assert.Equal(t, "t1", entries[2].TrackID)
	assert.Equal(t, 0.3, entries[2].Weight)
}

func TestReconcileEmptySuggestionsFallsBack(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	candidates := fiveTracks()

	entries, err := e.Reconcile(context.Background(), "chill", candidates, nil)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assertValidEntries(t, entries, candidates, 6)
	for _, entry := range entries {
		assert.Equal(t, 1.0, entry.Weight)
	}
}

func TestReconcileFallbackIsDeterministicPerSeed(t *testing.T) {
	candidates := fiveTracks()

	first, err := newTestEngine(DefaultConfig()).Reconcile(context.Background(), "chill", candidates, nil)
	require.NoError(t, err)
	second, err := newTestEngine(DefaultConfig()).Reconcile(context.Background(), "chill", candidates, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReconcileFallbackSmallCatalog(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	candidates := fiveTracks()[:2]

	entries, err := e.Reconcile(context.Background(), "chill", candidates, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assertValidEntries(t, entries, candidates, 6)
}

func TestReconcileExactTitleMatch(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	candidates := fiveTracks()
	suggestions := []model.Suggestion{
		{Title: "  midnight drive  ", Weight: 0.8},
	}

	entries, err := e.Reconcile(context.Background(), "chill", candidates, suggestions)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t2", entries[0].TrackID)
	assert.Equal(t, 0.8, entries[0].Weight)
}

func TestReconcileFuzzyContainmentMatch(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	candidates := fiveTracks()

	tests := []struct {
		name    string
		title   string
		trackID string
	}{
		{"suggestion contains candidate", "Sunny Dayz", "t1"},
		{"candidate contains suggestion", "Rain", "t3"},
		{"case insensitive", "NEON", "t5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := e.Reconcile(context.Background(), "chill", candidates, []model.Suggestion{{Title: tt.title, Weight: 0.5}})
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.trackID, entries[0].TrackID)
		})
	}
}

func TestReconcileDropsHallucinations(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	candidates := fiveTracks()
	suggestions := []model.Suggestion{
		{TrackID: "nope", Title: "Does Not Exist", Weight: 0.9},
		{TrackID: "t3", Weight: 0.4},
		{Title: "Also Missing"},
	}

	entries, err := e.Reconcile(context.Background(), "chill", candidates, suggestions)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t3", entries[0].TrackID)
	assert.Equal(t, 1, entries[0].Order)
}

func TestReconcileAllHallucinatedFallsBack(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	candidates := fiveTracks()
	suggestions := []model.Suggestion{
		{TrackID: "x1", Title: "ghost one"},
		{TrackID: "x2", Title: "ghost two"},
	}

	entries, err := e.Reconcile(context.Background(), "chill", candidates, suggestions)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	assertValidEntries(t, entries, candidates, 6)
}

func TestReconcileCapsLength(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	candidates := make(model.Tracks, 10)
	suggestions := make([]model.Suggestion, 8)
	for i := range candidates {
		candidates[i] = model.Track{ID: fmt.Sprintf("t%d", i), Title: fmt.Sprintf("Track %d", i)}
	}
	for i := range suggestions {
		suggestions[i] = model.Suggestion{TrackID: fmt.Sprintf("t%d", i), Weight: 0.5}
	}

	entries, err := e.Reconcile(context.Background(), "chill", candidates, suggestions)
	require.NoError(t, err)
	require.Len(t, entries, 6)
	assertValidEntries(t, entries, candidates, 6)
	assert.Equal(t, 6, entries[5].Order)
}

func TestReconcileDedupesRepeatedTrack(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	candidates := fiveTracks()
	suggestions := []model.Suggestion{
		{TrackID: "t1", Weight: 0.9},
		{TrackID: "t1", Weight: 0.2},
		{Title: "Sunny Day", Weight: 0.1},
		{TrackID: "t2", Weight: 0.6},
	}

	entries, err := e.Reconcile(context.Background(), "chill", candidates, suggestions)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "t1", entries[0].TrackID)
	assert.Equal(t, 0.9, entries[0].Weight) // first occurrence wins
	assert.Equal(t, "t2", entries[1].TrackID)
}

func TestReconcileInvalidWeightsDefaulted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultWeight = 0.5
	e := newTestEngine(cfg)
	candidates := fiveTracks()

	tests := []struct {
		name   string
		weight float64
	}{
		{"zero", 0},
		{"negative", -0.3},
		{"above one", 1.5},
		{"NaN", math.NaN()},
		{"infinity", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := e.Reconcile(context.Background(), "chill", candidates, []model.Suggestion{{TrackID: "t1", Weight: tt.weight}})
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, 0.5, entries[0].Weight)
		})
	}
}

func TestReconcileEmptyCatalog(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	_, err := e.Reconcile(context.Background(), "chill", nil, []model.Suggestion{{TrackID: "t1"}})
	assert.True(t, errors.Is(err, model.ErrEmptyCatalog))
}

func TestReconcileIDMatchBeatsTitleMatch(t *testing.T) {
	e := newTestEngine(DefaultConfig())
	candidates := fiveTracks()
	// ID points at t5 even though the title names t1.
	suggestions := []model.Suggestion{{TrackID: "t5", Title: "Sunny Day", Weight: 0.4}}

	entries, err := e.Reconcile(context.Background(), "chill", candidates, suggestions)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t5", entries[0].TrackID)
}
