package stats

import "math"

// ShannonEntropy computes the byte-level Shannon entropy of data,
// normalized to [0,1] by the 8-bit maximum. The second return is false
// for empty input.
func ShannonEntropy(data []byte) (float64, bool) {
	if len(data) == 0 {
		return 0, false
	}
	var freq [256]int
	for _, b := range data {
		freq[b]++
	}
	n := float64(len(data))
	h := 0.0
	for _, c := range freq {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h / 8, true
}
