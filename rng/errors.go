package rng

import "errors"

// Sentinel errors returned by Source implementations.
var (
	// ErrInvalidRange is returned by GenRange when lo >= hi.
	ErrInvalidRange = errors.New("rng: invalid range, lo must be < hi")

	// ErrEmptyWeights is returned by ChooseIndexByWeight/ChooseByWeight when
	// the weights slice is empty.
	ErrEmptyWeights = errors.New("rng: weights must not be empty")

	// ErrNegativeWeight is returned when any supplied weight is negative.
	ErrNegativeWeight = errors.New("rng: weights must not be negative")

	// ErrAllZeroWeight is returned when every supplied weight is zero, so no
	// item can ever be selected.
	ErrAllZeroWeight = errors.New("rng: at least one weight must be positive")

	// ErrLengthMismatch is returned when items and weights have different
	// lengths.
	ErrLengthMismatch = errors.New("rng: items and weights must be the same length")
)
