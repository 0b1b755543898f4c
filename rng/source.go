package rng

import "math/rand"

// Source is the single channel through which the engine draws randomness.
// Every probabilistic stage takes a Source explicitly; there is no
// package-level default and no ambient global state.
type Source interface {
	// GenBool returns true with probability p, clipped to [0,1]. p<=0 always
	// returns false; p>=1 always returns true.
	GenBool(p float64) bool

	// GenRange returns a uniform integer in [lo, hi). Returns ErrInvalidRange
	// if lo >= hi.
	GenRange(lo, hi int) (int, error)

	// ChooseIndexByWeight selects an index into weights by cumulative-weight
	// draw; ties in the draw are broken by picking the earliest index whose
	// cumulative weight would include the draw — never by hash order.
	ChooseIndexByWeight(weights []float64) (int, error)
}

// DeterministicSource is a Source backed by a seeded math/rand generator.
// The same seed paired with the same sequence of calls always produces the
// same sequence of results; this is the determinism contract the rest of
// the engine relies on.
type DeterministicSource struct {
	r *rand.Rand
}

// NewDeterministicSource constructs a Source seeded with the given 64-bit
// seed.
func NewDeterministicSource(seed int64) *DeterministicSource {
	return &DeterministicSource{r: rand.New(rand.NewSource(seed))}
}

// GenBool draws a float in [0,1) and compares strictly less-than p.
func (s *DeterministicSource) GenBool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

// GenRange draws a uniform integer in [lo, hi).
func (s *DeterministicSource) GenRange(lo, hi int) (int, error) {
	if lo >= hi {
		return 0, ErrInvalidRange
	}
	return lo + s.r.Intn(hi-lo), nil
}

// ChooseIndexByWeight draws uniformly over the total weight and walks the
// cumulative sum to find the landing index.
func (s *DeterministicSource) ChooseIndexByWeight(weights []float64) (int, error) {
	idx, total, err := validateWeights(weights)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		// validateWeights already rejects all-zero, but guard division by
		// zero defensively for a future caller that changes the validation.
		return idx, nil
	}
	draw := s.r.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return i, nil
		}
	}
	// Floating-point rounding can leave draw fractionally past the final
	// cumulative sum; fall back to the last positively-weighted index.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, nil
		}
	}
	return 0, ErrAllZeroWeight
}

// validateWeights checks the shared weight-slice invariants and returns the
// total weight.
func validateWeights(weights []float64) (firstPositive int, total float64, err error) {
	if len(weights) == 0 {
		return 0, 0, ErrEmptyWeights
	}
	firstPositive = -1
	for i, w := range weights {
		if w < 0 {
			return 0, 0, ErrNegativeWeight
		}
		if w > 0 && firstPositive == -1 {
			firstPositive = i
		}
		total += w
	}
	if firstPositive == -1 {
		return 0, 0, ErrAllZeroWeight
	}
	return firstPositive, total, nil
}

// ChooseByWeight selects an item from items using weights, delegating the
// index draw to s. len(items) must equal len(weights).
func ChooseByWeight[T any](s Source, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) != len(weights) {
		return zero, ErrLengthMismatch
	}
	idx, err := s.ChooseIndexByWeight(weights)
	if err != nil {
		return zero, err
	}
	return items[idx], nil
}
