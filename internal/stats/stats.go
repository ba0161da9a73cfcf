// Package stats summarizes latency samples.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"polyping/internal/models"
)

// Summarize computes min, avg, max and jitter over samples.
// It reports false when there are no samples.
func Summarize(samples []float64) (models.Stats, bool) {
	if len(samples) == 0 {
		return models.Stats{}, false
	}

	s := models.Stats{
		Count: len(samples),
		Min:   floats.Min(samples),
		Max:   floats.Max(samples),
		Avg:   stat.Mean(samples, nil),
	}

	// stat.StdDev divides by N-1 and is NaN for a single sample
	if len(samples) > 1 {
		s.Jitter = stat.StdDev(samples, nil)
	}

	return s, true
}
