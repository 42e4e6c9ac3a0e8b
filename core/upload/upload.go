// Package upload stores uploaded audio files on disk and registers them in
// the track catalog.
package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/AsthaPitambarwale/music-mood-dj/log"
	"github.com/AsthaPitambarwale/music-mood-dj/model"
)

// Metadata describes an uploaded track. Title falls back to the original
// filename; Artist and Mood fall back to the catalog defaults.
type Metadata struct {
	Title  string
	Artist string
	Mood   string
}

// Service writes uploads into a directory and creates catalog rows that
// point at them.
type Service struct {
	ds  model.DataStore
	dir string
}

// NewService creates an upload Service storing files under dir.
func NewService(ds model.DataStore, dir string) *Service {
	return &Service{ds: ds, dir: dir}
}

// Store saves the file under a fresh random name (keeping the original
// extension) and creates the catalog track. The original filename never
// touches the filesystem.
func (s *Service) Store(ctx context.Context, meta Metadata, filename string, file io.Reader) (*model.Track, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	stored := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(s.dir, stored)

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("close upload file: %w", err)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	track := &model.Track{
		Title:    title,
		Artist:   strings.TrimSpace(meta.Artist),
		Mood:     strings.ToLower(strings.TrimSpace(meta.Mood)),
		MediaURL: "/uploads/" + stored,
	}
	if err := s.ds.Track(ctx).Put(ctx, track); err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	log.Info(ctx, "Track uploaded", "id", track.ID, "title", track.Title, "file", stored)
	return track, nil
}
