package qsynth

import (
	"errors"
	"fmt"

	"github.com/hupe1980/qsynth/angle"
	"github.com/hupe1980/qsynth/encode"
)

var (
	// ErrInvalidInput is returned for inputs the decomposer cannot accept:
	// non-power-of-two lengths, non-square matrices, non-finite values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNormalization is returned when the input norm is too close to
	// zero to normalize.
	ErrNormalization = errors.New("input cannot be normalized")

	// ErrToleranceExceeded is returned for a negative epsilon, or for an
	// epsilon so large that the entire decomposition would be pruned away.
	ErrToleranceExceeded = errors.New("tolerance out of range")
)

// translateError maps subpackage errors onto the package-level error
// kinds. The original error stays reachable through errors.Unwrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var il *angle.ErrInvalidLength
	var ns *encode.ErrNotSquare
	if errors.As(err, &il) || errors.As(err, &ns) ||
		errors.Is(err, angle.ErrNonFinite) || errors.Is(err, angle.ErrNotReal) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if errors.Is(err, angle.ErrZeroNorm) {
		return fmt.Errorf("%w: %w", ErrNormalization, err)
	}

	var eo *angle.ErrEpsilonOutOfRange
	if errors.As(err, &eo) {
		return fmt.Errorf("%w: %w", ErrToleranceExceeded, err)
	}

	return err
}
