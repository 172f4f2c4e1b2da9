package resample

import (
	"math"
	"sort"
)

// Percentile computes the p-th percentile (0 <= p <= 100) of xs by
// linear interpolation between order statistics, the convention the
// bootstrap intervals are defined against. It is well defined for any
// non-empty input, including a single element. xs is left unmodified.
func Percentile(xs []float64, p float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)
	if n == 1 {
		return sorted[0]
	}

	h := p / 100 * float64(n-1)
	lo := int(math.Floor(h))
	if lo < 0 {
		lo = 0
	}
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
