package rips

import "errors"

var (
	// ErrNilMetric indicates a nil distance function.
	ErrNilMetric = errors.New("rips: metric is nil")
	// ErrNilWeight indicates a nil edge-weight function.
	ErrNilWeight = errors.New("rips: edge-weight function is nil")
	// ErrScalesNotDescending indicates a scale list that is not strictly
	// descending; ascending input is a usage error, never reinterpreted.
	ErrScalesNotDescending = errors.New("rips: scales must be strictly descending")
	// ErrEdgeBeyondScale indicates a supplied complex with an edge at or
	// beyond the largest scale, so it cannot be the scale-0 complex.
	ErrEdgeBeyondScale = errors.New("rips: edge length not below the largest scale")
)
