package cmd

import (
	"math/rand"
	"time"

	"github.com/AsthaPitambarwale/music-mood-dj/conf"
	"github.com/AsthaPitambarwale/music-mood-dj/core/stats"
	"github.com/AsthaPitambarwale/music-mood-dj/core/upload"
	"github.com/AsthaPitambarwale/music-mood-dj/dj"
	"github.com/AsthaPitambarwale/music-mood-dj/dj/engine"
	"github.com/AsthaPitambarwale/music-mood-dj/dj/openai"
	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

func newSuggestionOracle() dj.SuggestionOracle {
	return openai.NewClient(openai.Config{
		BaseURL: conf.Server.Oracle.BaseURL,
		APIKey:  conf.Server.Oracle.APIKey,
		Model:   conf.Server.Oracle.Model,
		Timeout: conf.Server.Oracle.Timeout,
	})
}

func newReconciler() dj.Reconciler {
	cfg := engine.Config{
		MaxLength:      conf.Server.Playlist.MaxLength,
		FallbackLength: conf.Server.Playlist.FallbackLength,
		DefaultWeight:  conf.Server.Playlist.DefaultWeight,
	}
	return engine.New(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newTopTracksCache(ds model.DataStore) *stats.TopTracksCache {
	return stats.NewTopTracksCache(ds, conf.Server.Stats.CacheTTL, nil)
}

func newUploadService(ds model.DataStore) *upload.Service {
	return upload.NewService(ds, conf.Server.UploadsDir)
}
