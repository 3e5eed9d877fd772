package angle

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite is returned when the input contains NaN or Inf.
	ErrNonFinite = errors.New("vector contains non-finite values")

	// ErrZeroNorm is returned when the input norm is too small to normalize.
	ErrZeroNorm = errors.New("vector norm is too small to normalize")

	// ErrNotReal is returned when real mode is requested for a vector with
	// non-zero imaginary parts.
	ErrNotReal = errors.New("real mode requires zero imaginary parts")
)

// ErrInvalidLength indicates a vector length that is not a power of two.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("vector length %d is not a power of two", e.Length)
}

// ErrEpsilonOutOfRange indicates an error budget outside [0, 1).
//
// An epsilon of 1 or more would allow the entire normalized vector to be
// pruned, leaving an empty circuit; that degenerate request is flagged here
// instead of silently returning nothing.
type ErrEpsilonOutOfRange struct {
	Epsilon float64
}

func (e *ErrEpsilonOutOfRange) Error() string {
	return fmt.Sprintf("epsilon %g out of range [0, 1)", e.Epsilon)
}
