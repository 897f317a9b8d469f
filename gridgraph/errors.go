package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates an unrecognised character in textual input.
	ErrBadCell = errors.New("gridgraph: unrecognised cell character")
	// ErrSameRunes indicates GridOptions with Active equal to Inactive.
	ErrSameRunes = errors.New("gridgraph: active and inactive characters must differ")
)
