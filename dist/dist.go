package dist

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput indicates one or both input histograms are empty.
	ErrEmptyInput = errors.New("dist: input histogram must be non-empty")

	// ErrInvalidParameter indicates an out-of-domain parameter, e.g. a
	// negative maximum degree.
	ErrInvalidParameter = errors.New("dist: invalid parameter")
)

// Floats converts an integer count histogram to float64 buckets, the form
// the distribution functions operate on.
// Complexity: O(len).
func Floats(counts []int) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c)
	}

	return out
}

// Normalize divides each bucket of a degree-count histogram by the node
// count, which equals the bucket sum (a degree histogram always sums to the
// graph's size). A zero-sum histogram describes the empty graph, whose
// normalized distribution is defined as the single-element sequence [1.0].
// Complexity: O(len).
func Normalize(counts []int) []float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return []float64{1.0}
	}

	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c) / float64(total)
	}

	return out
}

// Cumulative returns the running prefix sums of seq, same length as the
// input. Pure: the input is not mutated and no state is shared.
// Complexity: O(len).
func Cumulative(seq []float64) []float64 {
	out := make([]float64, len(seq))
	var sum float64
	for i, v := range seq {
		sum += v
		out[i] = sum
	}

	return out
}

// PowerLaw produces the theoretical scale-free histogram P(k) ∝ k^-gamma for
// k in 1..maxDegree, normalized so that Σ k·P(k) = 1 over that range, with a
// 0.0 bucket prepended for degree 0. The result has length maxDegree+1.
// Returns ErrInvalidParameter if maxDegree is negative.
// Complexity: O(maxDegree).
func PowerLaw(maxDegree int, gamma float64) ([]float64, error) {
	if maxDegree < 0 {
		return nil, ErrInvalidParameter
	}

	out := make([]float64, maxDegree+1)
	// out[0] stays 0.0: degree zero has no mass in the power law.
	var norm float64
	for k := 1; k <= maxDegree; k++ {
		out[k] = math.Pow(float64(k), -gamma)
		norm += float64(k) * out[k]
	}
	for k := 1; k <= maxDegree; k++ {
		out[k] /= norm
	}

	return out, nil
}

// KSDistance computes the Kolmogorov–Smirnov distance between two
// histograms: the maximum absolute pointwise difference of their cumulative
// distributions over the overlapping index range [0, min(len(a), len(b))).
//
// Truncation to the shorter length (rather than zero-padding) is a
// deliberate simplification; callers needing exact comparison across
// differently sized histograms should pad to equal length first.
//
// Returns ErrEmptyInput if either input is empty.
// Complexity: O(len(a) + len(b)).
func KSDistance(histA, histB []float64) (float64, error) {
	if len(histA) == 0 || len(histB) == 0 {
		return 0, ErrEmptyInput
	}

	cumA := Cumulative(histA)
	cumB := Cumulative(histB)

	limit := len(cumA)
	if len(cumB) < limit {
		limit = len(cumB)
	}

	var max float64
	for i := 0; i < limit; i++ {
		if d := math.Abs(cumA[i] - cumB[i]); d > max {
			max = d
		}
	}

	return max, nil
}
