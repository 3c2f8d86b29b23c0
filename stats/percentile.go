// Package stats holds the numeric primitives shared by the analyzers and
// the statistical widgets: percentile interpolation, Tukey box statistics,
// Gaussian kernel density estimation, histogram binning rules, and Shannon
// entropy over byte samples.
package stats

import (
	"math"
	"sort"
)

// Percentile returns the p-th percentile (0..100) of sorted using linear
// interpolation between adjacent order statistics. The second return is
// false for empty input.
func Percentile(sorted []float64, p float64) (float64, bool) {
	if len(sorted) == 0 {
		return 0, false
	}
	if p <= 0 {
		return sorted[0], true
	}
	if p >= 100 {
		return sorted[len(sorted)-1], true
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], true
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac, true
}

// PercentileOf sorts a copy of the finite values and returns the p-th
// percentile.
func PercentileOf(values []float64, p float64) (float64, bool) {
	sorted := finite(values)
	if len(sorted) == 0 {
		return 0, false
	}
	sort.Float64s(sorted)
	return Percentile(sorted, p)
}

// Mean returns the arithmetic mean, or 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the sample standard deviation (n−1 denominator), or 0
// when fewer than two values are given.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// finite filters out NaN and ±Inf.
func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
