package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/oklog/ulid/v2"

	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

type trackRepository struct {
	db *sql.DB
}

// NewTrackRepository returns the SQLite-backed track catalog.
func NewTrackRepository(db *sql.DB) model.TrackRepository {
	return &trackRepository{db: db}
}

func newID() string {
	return ulid.Make().String()
}

var trackColumns = []string{"id", "title", "artist", "mood", "media_url", "play_count", "created_at"}

func (r *trackRepository) Put(ctx context.Context, t *model.Track) error {
	if t.ID == "" {
		t.ID = newID()
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

	query, args, err := sq.Insert("track").
		Columns(trackColumns...).
		Values(t.ID, t.Title, t.Artist, t.Mood, t.MediaURL, t.PlayCount, t.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert track: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert track: %w", err)
	}
	return nil
}

func (r *trackRepository) Get(ctx context.Context, id string) (*model.Track, error) {
	query, args, err := sq.Select(trackColumns...).
		From("track").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select track: %w", err)
	}

	var t model.Track
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanTrack(row.Scan, &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("select track: %w", err)
	}
	return &t, nil
}

func (r *trackRepository) GetAll(ctx context.Context) (model.Tracks, error) {
	return r.query(ctx, sq.Select(trackColumns...).
		From("track").
		OrderBy("created_at", "id"))
}

func (r *trackRepository) FindByMood(ctx context.Context, pattern string) (model.Tracks, error) {
	return r.query(ctx, sq.Select(trackColumns...).
		From("track").
		Where(squirrel.Expr("instr(lower(mood), lower(?)) > 0", pattern)).
		OrderBy("created_at", "id"))
}

func (r *trackRepository) TopByPlayCount(ctx context.Context, n int) (model.Tracks, error) {
	if n <= 0 {
		return model.Tracks{}, nil
	}
	return r.query(ctx, sq.Select(trackColumns...).
		From("track").
		OrderBy("play_count DESC", "created_at", "id").
		Limit(uint64(n)))
}

func (r *trackRepository) IncrementPlayCount(ctx context.Context, id string) (int64, error) {
	query, args, err := sq.Update("track").
		Set("play_count", squirrel.Expr("play_count + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update play count: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update play count: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update play count: %w", err)
	}
	if affected == 0 {
		return 0, model.ErrNotFound
	}

	t, err := r.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return t.PlayCount, nil
}

func (r *trackRepository) query(ctx context.Context, builder squirrel.SelectBuilder) (model.Tracks, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select tracks: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select tracks: %w", err)
	}
	defer rows.Close()

	tracks := model.Tracks{}
	for rows.Next() {
		var t model.Track
		if err := scanTrack(rows.Scan, &t); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

func scanTrack(scan func(...any) error, t *model.Track) error {
	return scan(&t.ID, &t.Title, &t.Artist, &t.Mood, &t.MediaURL, &t.PlayCount, &t.CreatedAt)
}
