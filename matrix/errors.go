package matrix

import "errors"

var (
	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil matrix receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOverflow indicates that an elimination step left int64 range.
	// Integer reduction is exact or it fails loudly; it never wraps.
	ErrOverflow = errors.New("matrix: int64 overflow during reduction")
)

// Panic diagnostics for programmer errors: these name the violated invariant
// and are not recoverable conditions.
const (
	panicNegativeShape = "matrix: invariant: rows and cols must be non-negative"
	panicShapeChain    = "matrix: invariant: cols(a) must equal rows(b) for a chain pair"
	panicShapeMul      = "matrix: invariant: cols(a) must equal rows(b)"
)
