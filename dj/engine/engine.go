// Package engine validates untrusted model suggestions against the real
// catalog and assembles them into an ordered, weighted playlist.
package engine

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/AsthaPitambarwale/music-mood-dj/log"
	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

// Config holds the playlist assembly knobs.
type Config struct {
	MaxLength      int     // hard cap on entries per playlist
	FallbackLength int     // how many tracks to sample when no suggestion survives
	DefaultWeight  float64 // weight used when a suggestion's claimed weight is unusable
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxLength:      6,
		FallbackLength: 4,
		DefaultWeight:  1.0,
	}
}

// Engine turns raw suggestions into playlist entries. Every entry it emits
// references a track from the candidate list; nothing from the suggestions
// is trusted until it has been matched.
type Engine struct {
	config Config

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New creates an Engine. The rand source only drives fallback sampling, so
// tests can inject a seeded one.
func New(cfg Config, rng *rand.Rand) *Engine {
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = 6
	}
	if cfg.FallbackLength <= 0 {
		cfg.FallbackLength = 4
	}
	if cfg.DefaultWeight <= 0 || cfg.DefaultWeight > 1 || math.IsNaN(cfg.DefaultWeight) {
		cfg.DefaultWeight = 1.0
	}
	return &Engine{config: cfg, rng: rng}
}

// Reconcile maps suggestions onto candidates and returns the resulting
// entries. The output is never empty when candidates is non-empty: when no
// suggestion survives matching, a random sample of candidates is used
// instead. An empty candidate list returns model.ErrEmptyCatalog.
func (e *Engine) Reconcile(ctx context.Context, mood string, candidates model.Tracks, suggestions []model.Suggestion) ([]model.PlaylistEntry, error) {
	if len(candidates) == 0 {
		return nil, model.ErrEmptyCatalog
	}

	entries := make([]model.PlaylistEntry, 0, e.config.MaxLength)
	bound := make(map[string]struct{}, e.config.MaxLength)

	for _, s := range suggestions {
		if len(entries) >= e.config.MaxLength {
			break
		}
		track, ok := match(s, candidates)
		if !ok {
			log.Debug(ctx, "Dropping unmatched suggestion", "trackId", s.TrackID, "title", s.Title, "mood", mood)
			continue
		}
		if _, dup := bound[track.ID]; dup {
			continue
		}
		bound[track.ID] = struct{}{}
		entries = append(entries, model.PlaylistEntry{
			TrackID: track.ID,
			Order:   len(entries) + 1,
			Weight:  e.weightFor(s),
		})
	}

	if len(entries) == 0 {
		log.Info(ctx, "No suggestion matched the catalog, using fallback selection", "mood", mood, "candidates", len(candidates))
		entries = e.fallback(candidates)
	}
	return entries, nil
}

// match binds a suggestion to a candidate track: by ID first, then by exact
// title, then by title containment in either direction. The first candidate
// in iteration order wins.
func match(s model.Suggestion, candidates model.Tracks) (model.Track, bool) {
	if s.TrackID != "" {
		for _, c := range candidates {
			if c.ID == s.TrackID {
				return c, true
			}
		}
	}

	title := strings.ToLower(strings.TrimSpace(s.Title))
	if title == "" {
		return model.Track{}, false
	}
	for _, c := range candidates {
		if strings.ToLower(strings.TrimSpace(c.Title)) == title {
			return c, true
		}
	}
	for _, c := range candidates {
		ct := strings.ToLower(strings.TrimSpace(c.Title))
		if ct == "" {
			continue
		}
		if strings.Contains(ct, title) || strings.Contains(title, ct) {
			return c, true
		}
	}
	return model.Track{}, false
}

func (e *Engine) weightFor(s model.Suggestion) float64 {
	w := s.Weight
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 || w > 1 {
		return e.config.DefaultWeight
	}
	return w
}

// fallback samples up to FallbackLength distinct candidates at random.
func (e *Engine) fallback(candidates model.Tracks) []model.PlaylistEntry {
	n := e.config.FallbackLength
	if n > len(candidates) {
		n = len(candidates)
	}

	e.mu.Lock()
	perm := e.rng.Perm(len(candidates))
	e.mu.Unlock()

	entries := make([]model.PlaylistEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, model.PlaylistEntry{
			TrackID: candidates[perm[i]].ID,
			Order:   i + 1,
			Weight:  e.config.DefaultWeight,
		})
	}
	return entries
}
