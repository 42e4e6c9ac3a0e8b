//go:build wireinject

package cmd

import (
	"github.com/google/wire"

	"github.com/AsthaPitambarwale/music-mood-dj/core/stats"
	"github.com/AsthaPitambarwale/music-mood-dj/dj"
	"github.com/AsthaPitambarwale/music-mood-dj/persistence"
	"github.com/AsthaPitambarwale/music-mood-dj/server"
	"github.com/AsthaPitambarwale/music-mood-dj/server/nativeapi"
)

var allProviders = wire.NewSet(
	persistence.Db,
	persistence.New,
	newSuggestionOracle,
	newReconciler,
	newTopTracksCache,
	newUploadService,
	dj.NewService,
	stats.NewTracker,
	nativeapi.New,
	server.New,
)

func CreateServer() *server.Server {
	panic(wire.Build(
		allProviders,
	))
}
