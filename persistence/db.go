// Package persistence implements the track and playlist repositories on
// SQLite, with all queries built through squirrel.
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/AsthaPitambarwale/music-mood-dj/conf"
	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var (
	once     sync.Once
	instance *sql.DB
)

// Db returns the process-wide database handle, opening it on first use.
// Panics when the database cannot be opened, same as failing to boot.
func Db() *sql.DB {
	once.Do(func() {
		db, err := Open(conf.Server.DbPath)
		if err != nil {
			panic(fmt.Sprintf("open database %q: %v", conf.Server.DbPath, err))
		}
		instance = db
	})
	return instance
}

// Open opens (creating when needed) the SQLite database at path and applies
// the schema.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS track (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		artist      TEXT NOT NULL DEFAULT 'Unknown',
		mood        TEXT NOT NULL DEFAULT 'unknown',
		media_url   TEXT NOT NULL,
		play_count  INTEGER NOT NULL DEFAULT 0,
		created_at  TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_track_play_count ON track(play_count DESC);
	CREATE INDEX IF NOT EXISTS idx_track_mood ON track(mood);

	CREATE TABLE IF NOT EXISTS playlist (
		id          TEXT PRIMARY KEY,
		mood        TEXT NOT NULL,
		created_at  TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS playlist_track (
		playlist_id TEXT NOT NULL REFERENCES playlist(id),
		track_id    TEXT NOT NULL REFERENCES track(id),
		position    INTEGER NOT NULL,
		weight      REAL NOT NULL,
		PRIMARY KEY (playlist_id, position)
	);
	`
	_, err := db.Exec(schema)
	return err
}

type dataStore struct {
	db *sql.DB
}

// New wraps a database handle in a model.DataStore.
func New(db *sql.DB) model.DataStore {
	return &dataStore{db: db}
}

func (s *dataStore) Track(ctx context.Context) model.TrackRepository {
	return NewTrackRepository(s.db)
}

func (s *dataStore) Playlist(ctx context.Context) model.PlaylistRepository {
	return NewPlaylistRepository(s.db)
}
