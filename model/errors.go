package model

import "errors"

var (
	// ErrNotFound is returned when a track or playlist ID does not exist.
	ErrNotFound = errors.New("data not found")

	// ErrEmptyCatalog is returned when playlist generation is requested but
	// no tracks exist at all.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrInvalidMood is returned when the requested mood is blank.
	ErrInvalidMood = errors.New("mood must not be empty")
)
