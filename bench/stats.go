// Package bench drives repeated parsm invocations over synthetic
// datasets and aggregates wall-clock statistics per operation, format,
// and size.
package bench

import (
	"math"
	"time"
)

// Summary holds descriptive statistics over a set of elapsed times.
type Summary struct {
	Avg    time.Duration
	Min    time.Duration
	Max    time.Duration
	StdDev time.Duration
}

// Summarize computes mean, min, max, and sample standard deviation
// (n-1 correction, defined as 0 for a single sample) over samples.
// The values depend only on the multiset of samples, not their order.
// samples must be non-empty; zero successful runs is the caller's
// sentinel case and never reaches statistical computation.
func Summarize(samples []time.Duration) Summary {
	s := Summary{Min: samples[0], Max: samples[0]}

	var sum float64
	for _, d := range samples {
		sum += float64(d)

		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
	}

	mean := sum / float64(len(samples))
	s.Avg = time.Duration(mean)

	if len(samples) > 1 {
		var sq float64
		for _, d := range samples {
			diff := float64(d) - mean
			sq += diff * diff
		}

		s.StdDev = time.Duration(math.Sqrt(sq / float64(len(samples)-1)))
	}

	return s
}
