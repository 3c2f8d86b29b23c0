package engine

import "github.com/rjmorel/statgrid/model"

// pushMetricsLocked derives a metrics record from the current snapshot
// and appends it to the bounded history. Caller holds a.mu.
func (a *Analyzer) pushMetricsLocked() {
	m := model.ActivityMetrics{Timestamp: a.now()}
	entropySum := 0.0
	sampled := 0
	for _, f := range a.files {
		if f.IoActivity == model.IoHigh {
			m.HighIO++
		}
		if f.EntropyLevel == model.EntropyHigh || f.EntropyLevel == model.EntropyVeryHigh {
			m.HighEntropy++
		}
		if f.IsDuplicate {
			m.Duplicates++
		}
		if f.IsRecent {
			m.Recent++
		}
		if f.Entropy > 0 {
			entropySum += f.Entropy
			sampled++
		}
	}
	for _, g := range a.duplicates {
		m.WastedBytes += g.WastedBytes
	}
	if sampled > 0 {
		m.AvgEntropy = entropySum / float64(sampled)
	}
	a.history = append(a.history, m)
	if len(a.history) > metricsHistoryCap {
		a.history = a.history[len(a.history)-metricsHistoryCap:]
	}
}

// ActivityHistory returns a copy of the per-scan metrics history,
// oldest first.
func (a *Analyzer) ActivityHistory() []model.ActivityMetrics {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]model.ActivityMetrics(nil), a.history...)
}

// CurrentMetrics returns the most recent metrics record.
func (a *Analyzer) CurrentMetrics() (model.ActivityMetrics, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if len(a.history) == 0 {
		return model.ActivityMetrics{}, false
	}
	return a.history[len(a.history)-1], true
}

// Metric names accepted by MetricHistory.
const (
	MetricHighIO      = "high_io"
	MetricHighEntropy = "high_entropy"
	MetricDuplicates  = "duplicates"
	MetricRecent      = "recent"
	MetricAvgEntropy  = "avg_entropy"
)

// MetricHistory returns a [0,1]-normalized history vector for the named
// metric, oldest first. Counts are divided by the series maximum
// (clamped away from zero); avg_entropy is already normalized.
func (a *Analyzer) MetricHistory(name string) []float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]float64, len(a.history))
	for i, m := range a.history {
		switch name {
		case MetricHighIO:
			out[i] = float64(m.HighIO)
		case MetricHighEntropy:
			out[i] = float64(m.HighEntropy)
		case MetricDuplicates:
			out[i] = float64(m.Duplicates)
		case MetricRecent:
			out[i] = float64(m.Recent)
		case MetricAvgEntropy:
			out[i] = m.AvgEntropy
		}
	}
	if name == MetricAvgEntropy {
		return out
	}
	peak := 1.0
	for _, v := range out {
		if v > peak {
			peak = v
		}
	}
	for i := range out {
		out[i] /= peak
	}
	return out
}
