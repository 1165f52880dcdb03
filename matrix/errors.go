package matrix

import "errors"

var (
	// ErrBadShape is returned for negative dimensions or columns of
	// differing lengths.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch is returned when the number of columns of the
	// left operand differs from the column height of the right operand.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
