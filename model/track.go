package model

import "time"

// Track is a single uploaded audio file in the catalog. Everything except
// PlayCount is immutable once created.
type Track struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Mood      string    `json:"mood"`
	MediaURL  string    `json:"url"`
	PlayCount int64     `json:"playCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type Tracks []Track

// IDs returns the track IDs in catalog order.
func (ts Tracks) IDs() []string {
	ids := make([]string, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.ID)
	}
	return ids
}
