package stats

import "sort"

// BoxStats is a five-number summary with Tukey 1.5·IQR outliers.
// Min and Max are the extreme values that are NOT outliers.
type BoxStats struct {
	Min      float64
	Q1       float64
	Median   float64
	Q3       float64
	Max      float64
	IQR      float64
	Outliers []float64
}

// NewBoxStats computes box statistics from values. The second return is
// false for empty input.
func NewBoxStats(values []float64) (BoxStats, bool) {
	vals := finite(values)
	if len(vals) == 0 {
		return BoxStats{}, false
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	q1, _ := Percentile(sorted, 25)
	med, _ := Percentile(sorted, 50)
	q3, _ := Percentile(sorted, 75)
	iqr := q3 - q1

	loFence := q1 - 1.5*iqr
	hiFence := q3 + 1.5*iqr

	b := BoxStats{Q1: q1, Median: med, Q3: q3, IQR: iqr}
	b.Min = sorted[len(sorted)-1]
	b.Max = sorted[0]
	for _, v := range sorted {
		if v < loFence || v > hiFence {
			b.Outliers = append(b.Outliers, v)
			continue
		}
		if v < b.Min {
			b.Min = v
		}
		if v > b.Max {
			b.Max = v
		}
	}
	return b, true
}
