package model

import "time"

// PlaylistEntry is one slot in a generated playlist. Order is 1-based and
// contiguous within a playlist; Weight is always in (0, 1].
type PlaylistEntry struct {
	TrackID string  `json:"trackId"`
	Order   int     `json:"order"`
	Weight  float64 `json:"weight"`
}

// Playlist is an immutable, ordered selection of catalog tracks generated
// for a mood.
type Playlist struct {
	ID        string          `json:"id"`
	Mood      string          `json:"mood"`
	Tracks    []PlaylistEntry `json:"tracks"`
	CreatedAt time.Time       `json:"createdAt"`
}

// TrackIDs returns the entry track IDs in playlist order.
func (p Playlist) TrackIDs() []string {
	ids := make([]string, 0, len(p.Tracks))
	for _, e := range p.Tracks {
		ids = append(ids, e.TrackID)
	}
	return ids
}
