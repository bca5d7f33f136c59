package nonogram

import "errors"

// Sentinel errors for contract violations at the solver boundary. Solve
// returns a non-nil error only for ErrInvalidK or ErrNegativeClue; the
// puzzle I/O loaders report ErrNegativeDimension and ErrDimensionMismatch.
// Adapter.Run returns no error. A genuinely infeasible clue set is not an
// error (it yields a zero-length solution slice), and an internal
// contradiction during search never escapes to the caller.
var (
	// ErrNegativeDimension indicates a negative grid width or height.
	ErrNegativeDimension = errors.New("nonogram: grid dimension must be non-negative")

	// ErrNegativeClue indicates a clue sequence containing a negative run length.
	ErrNegativeClue = errors.New("nonogram: clue values must be non-negative")

	// ErrDimensionMismatch indicates rows/cols lengths disagree with the grid shape.
	ErrDimensionMismatch = errors.New("nonogram: rows/cols length does not match grid shape")

	// ErrInvalidK indicates a solution-count budget less than 1.
	ErrInvalidK = errors.New("nonogram: k must be >= 1")
)
