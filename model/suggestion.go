package model

// Suggestion is one item of raw model output. All fields are optional and
// none of them can be trusted: the track ID may not exist, the title may be
// approximate, and the weight may be out of range. Suggestions only live for
// the duration of a single playlist-generation request and are never
// persisted.
type Suggestion struct {
	TrackID string  `json:"trackId,omitempty"`
	Title   string  `json:"title,omitempty"`
	Weight  float64 `json:"weight,omitempty"`
}
