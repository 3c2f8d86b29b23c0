package stats

import "math"

// KDE is a Gaussian kernel density estimator with Silverman's
// rule-of-thumb bandwidth: h = 1.06·σ·n^(−1/5), with σ floored at 0.001
// so constant samples still produce a finite density.
type KDE struct {
	samples   []float64
	bandwidth float64
}

// NewKDE builds an estimator over the finite values of samples.
// The second return is false when no finite value remains.
func NewKDE(samples []float64) (*KDE, bool) {
	vals := finite(samples)
	if len(vals) == 0 {
		return nil, false
	}
	sigma := StdDev(vals)
	if sigma < 0.001 {
		sigma = 0.001
	}
	h := 1.06 * sigma * math.Pow(float64(len(vals)), -0.2)
	return &KDE{samples: vals, bandwidth: h}, true
}

// Bandwidth returns the Silverman bandwidth.
func (k *KDE) Bandwidth() float64 { return k.bandwidth }

// DensityAt evaluates the estimate at x.
//
// The normalization constant is sqrt(2π); math.Sqrt(2*math.Pi) is spelled
// out rather than math.Sqrt(Tau) to keep the conventional form visible.
func (k *KDE) DensityAt(x float64) float64 {
	n := float64(len(k.samples))
	norm := 1 / (n * k.bandwidth * math.Sqrt(2*math.Pi))
	sum := 0.0
	for _, xi := range k.samples {
		u := (x - xi) / k.bandwidth
		sum += math.Exp(-0.5 * u * u)
	}
	return norm * sum
}

// densityAt4 evaluates the estimate at four points in one pass over the
// samples. It must agree with DensityAt to 1e-10 absolute; it exists so
// Sample can amortize the sample loop across evaluation points.
func (k *KDE) densityAt4(x0, x1, x2, x3 float64) (d0, d1, d2, d3 float64) {
	n := float64(len(k.samples))
	norm := 1 / (n * k.bandwidth * math.Sqrt(2*math.Pi))
	var s0, s1, s2, s3 float64
	for _, xi := range k.samples {
		u0 := (x0 - xi) / k.bandwidth
		u1 := (x1 - xi) / k.bandwidth
		u2 := (x2 - xi) / k.bandwidth
		u3 := (x3 - xi) / k.bandwidth
		s0 += math.Exp(-0.5 * u0 * u0)
		s1 += math.Exp(-0.5 * u1 * u1)
		s2 += math.Exp(-0.5 * u2 * u2)
		s3 += math.Exp(-0.5 * u3 * u3)
	}
	return norm * s0, norm * s1, norm * s2, norm * s3
}

// Sample evaluates the density at points equally spaced x values across
// [min, max] and normalizes the result so its maximum equals 1. A zero
// or negative range yields a unit density.
func (k *KDE) Sample(min, max float64, points int) []float64 {
	if points < 1 {
		points = 1
	}
	out := make([]float64, points)
	if max <= min || points == 1 {
		for i := range out {
			out[i] = 1
		}
		return out
	}
	step := (max - min) / float64(points-1)

	i := 0
	for ; i+4 <= points; i += 4 {
		x0 := min + float64(i)*step
		x1 := min + float64(i+1)*step
		x2 := min + float64(i+2)*step
		x3 := min + float64(i+3)*step
		out[i], out[i+1], out[i+2], out[i+3] = k.densityAt4(x0, x1, x2, x3)
	}
	for ; i < points; i++ {
		out[i] = k.DensityAt(min + float64(i)*step)
	}

	peak := 0.0
	for _, d := range out {
		if d > peak {
			peak = d
		}
	}
	if peak <= 0 {
		for j := range out {
			out[j] = 1
		}
		return out
	}
	for j := range out {
		out[j] /= peak
	}
	return out
}
