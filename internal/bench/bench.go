// Package bench times propagator runs and derives speedup ratios.
package bench

import (
	"time"

	"heatsim/internal/core"
)

// Timing pairs a label with a measured wall-clock duration.
type Timing struct {
	Name    string
	Elapsed time.Duration
}

// Measure runs fn once and reports how long it took. The duration is
// returned even when fn fails.
func Measure(fn func() error) (time.Duration, error) {
	return MeasureWith(core.NewStopwatch(), fn)
}

// MeasureWith is Measure using the provided stopwatch.
func MeasureWith(sw *core.Stopwatch, fn func() error) (time.Duration, error) {
	sw.Start()
	err := fn()
	return sw.Stop(), err
}

// Average returns the mean of the given durations, or zero for none.
func Average(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return total / time.Duration(len(ds))
}

// Speedup returns sequential / parallel. A non-positive parallel duration
// has no meaningful ratio and reports 0. Values below 1 are valid results.
func Speedup(sequential, parallel time.Duration) float64 {
	if parallel <= 0 {
		return 0
	}
	return float64(sequential) / float64(parallel)
}
