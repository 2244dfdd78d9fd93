package persistence

import "errors"

var (
	// ErrScalesNotDescending indicates a scale list that is not strictly descending.
	ErrScalesNotDescending = errors.New("persistence: scales must be strictly descending")
	// ErrIndexBeyondScales indicates a filtration index with no matching scale.
	ErrIndexBeyondScales = errors.New("persistence: filtration index outside the scale list")
)
