package stats

import "math"

// BinStrategy selects how many histogram bins to use.
type BinStrategy int

const (
	// BinCount uses a fixed number of bins.
	BinCount BinStrategy = iota
	// BinWidth uses a fixed bin width.
	BinWidth
	// BinSturges uses k = ceil(log2 n) + 1.
	BinSturges
	// BinScott uses h = 3.49·σ·n^(−1/3).
	BinScott
	// BinFreedmanDiaconis uses h = 2·IQR·n^(−1/3).
	BinFreedmanDiaconis
)

// maxBins caps the bin count regardless of strategy.
const maxBins = 100

// Bin is one histogram bucket. Ranges are half-open [Start, End) except
// the last bin, which is closed on the right.
type Bin struct {
	Start float64
	End   float64
	Count int
}

// Binning holds a strategy plus its parameter (bin count for BinCount,
// bin width for BinWidth; ignored otherwise).
type Binning struct {
	Strategy BinStrategy
	Param    float64
}

// NumBins computes the bin count for n finite values spanning rng using
// the strategy. Numerical degeneracy (zero σ, zero IQR, zero width) falls
// back to a single bin. The result is clamped to [1, maxBins].
func (b Binning) NumBins(values []float64, rng float64) int {
	n := len(values)
	k := 1
	switch b.Strategy {
	case BinCount:
		k = int(b.Param)
	case BinWidth:
		if b.Param > 0 && rng > 0 {
			k = int(math.Ceil(rng / b.Param))
		}
	case BinSturges:
		if n > 0 {
			k = int(math.Ceil(math.Log2(float64(n)))) + 1
		}
	case BinScott:
		h := 3.49 * StdDev(values) * math.Pow(float64(n), -1.0/3.0)
		if h > 0 && rng > 0 {
			k = int(math.Ceil(rng / h))
		}
	case BinFreedmanDiaconis:
		box, ok := NewBoxStats(values)
		if ok {
			h := 2 * box.IQR * math.Pow(float64(n), -1.0/3.0)
			if h > 0 && rng > 0 {
				k = int(math.Ceil(rng / h))
			}
		}
	}
	if k < 1 {
		k = 1
	}
	if k > maxBins {
		k = maxBins
	}
	return k
}

// MakeBins partitions the finite values of data into contiguous bins
// covering [min, max] exactly. Empty input yields a single zero-count
// [0,1] bin; constant input widens the range by ±0.5.
func MakeBins(data []float64, binning Binning) []Bin {
	vals := finite(data)
	if len(vals) == 0 {
		return []Bin{{Start: 0, End: 1}}
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		lo -= 0.5
		hi += 0.5
	}

	k := binning.NumBins(vals, hi-lo)
	width := (hi - lo) / float64(k)

	bins := make([]Bin, k)
	for i := range bins {
		bins[i].Start = lo + float64(i)*width
		bins[i].End = lo + float64(i+1)*width
	}
	bins[k-1].End = hi // avoid FP drift on the closing edge

	for _, v := range vals {
		idx := int((v - lo) / width)
		if idx >= k {
			idx = k - 1 // last bin is right-closed
		}
		if idx < 0 {
			idx = 0
		}
		bins[idx].Count++
	}
	return bins
}
