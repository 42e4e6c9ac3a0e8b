package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

type playlistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository returns the SQLite-backed playlist store.
func NewPlaylistRepository(db *sql.DB) model.PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Put(ctx context.Context, p *model.Playlist) error {
	if p.ID == "" {
		p.ID = newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert playlist: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := sq.Insert("playlist").
		Columns("id", "mood", "created_at").
		Values(p.ID, p.Mood, p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert playlist: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert playlist: %w", err)
	}

	if len(p.Tracks) > 0 {
		insert := sq.Insert("playlist_track").
			Columns("playlist_id", "track_id", "position", "weight")
		for _, e := range p.Tracks {
			insert = insert.Values(p.ID, e.TrackID, e.Order, e.Weight)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert playlist entries: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert playlist entries: %w", err)
		}
	}

	return tx.Commit()
}

func (r *playlistRepository) Get(ctx context.Context, id string) (*model.Playlist, error) {
	query, args, err := sq.Select("id", "mood", "created_at").
		From("playlist").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select playlist: %w", err)
	}

	var p model.Playlist
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&p.ID, &p.Mood, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("select playlist: %w", err)
	}

	query, args, err = sq.Select("track_id", "position", "weight").
		From("playlist_track").
		Where(squirrel.Eq{"playlist_id": id}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select playlist entries: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select playlist entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e model.PlaylistEntry
		if err := rows.Scan(&e.TrackID, &e.Order, &e.Weight); err != nil {
			return nil, fmt.Errorf("scan playlist entry: %w", err)
		}
		p.Tracks = append(p.Tracks, e)
	}
	return &p, rows.Err()
}
