package heat

import (
	"fmt"
	"time"

	"heatsim/internal/bench"
	"heatsim/internal/core"
)

// SweepPoint is the outcome of one worker count in a speedup sweep.
type SweepPoint struct {
	Workers    int
	Sequential time.Duration
	Parallel   time.Duration
	Speedup    float64
	Equivalent bool
}

// Sweep measures the sequential propagator once as a baseline and the
// configured parallel strategy once per worker count. Each measurement is
// the average of repeats runs on freshly initialized grids. Runs are timed
// one after another so they never compete for cores.
func Sweep(cfg Config, workers []int, repeats int) ([]SweepPoint, error) {
	if repeats < 1 {
		repeats = 1
	}
	factory, ok := core.Propagators()[cfg.Strategy]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrStrategy, cfg.Strategy)
	}

	baseline, seqTime, err := timeRuns(cfg, Sequential{}, repeats)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, 0, len(workers))
	for _, w := range workers {
		if w < 1 {
			return nil, fmt.Errorf("%w: got %d", core.ErrWorkers, w)
		}
		grid, parTime, err := timeRuns(cfg, factory(w), repeats)
		if err != nil {
			return nil, err
		}
		same, err := Equivalent(baseline, grid, cfg.Params().FinalSlot())
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{
			Workers:    w,
			Sequential: seqTime,
			Parallel:   parTime,
			Speedup:    bench.Speedup(seqTime, parTime),
			Equivalent: same,
		})
	}
	return points, nil
}

func timeRuns(cfg Config, p core.Propagator, repeats int) (*core.Grid, time.Duration, error) {
	var last *core.Grid
	durations := make([]time.Duration, 0, repeats)
	for i := 0; i < repeats; i++ {
		g, _, err := NewGrid(cfg)
		if err != nil {
			return nil, 0, err
		}
		d, err := bench.Measure(func() error { return p.Propagate(g, cfg.Steps) })
		if err != nil {
			return nil, 0, err
		}
		durations = append(durations, d)
		last = g
	}
	return last, bench.Average(durations), nil
}

// TimeLapse evolves a grid sequentially and passes up to frames+1 evenly
// spaced snapshots to emit, starting with the initial state and ending with
// the final one. Frames that would repeat a step are skipped.
func TimeLapse(cfg Config, frames int, emit func(step int, s core.Snapshot) error) error {
	if frames < 1 {
		frames = 1
	}
	g, _, err := NewGrid(cfg)
	if err != nil {
		return err
	}
	send := func(step int) error {
		s, err := g.Snapshot(g.Current())
		if err != nil {
			return err
		}
		return emit(step, s)
	}
	if err := send(0); err != nil {
		return err
	}
	done := 0
	for f := 1; f <= frames; f++ {
		target := cfg.Steps * f / frames
		if target == done {
			continue
		}
		if err := (Sequential{}).Propagate(g, target-done); err != nil {
			return err
		}
		done = target
		if err := send(done); err != nil {
			return err
		}
	}
	return nil
}
