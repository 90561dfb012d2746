package heat

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"heatsim/internal/bench"
	"heatsim/internal/core"
)

var (
	// ErrMismatch reports that the sequential and parallel grids diverged.
	ErrMismatch = errors.New("sequential and parallel results differ")
	// ErrStrategy reports an unregistered propagator name.
	ErrStrategy = errors.New("unknown propagator")
)

// Phase identifies which propagator just finished.
type Phase int

const (
	PhaseSequential Phase = iota
	PhaseParallel
)

func (p Phase) String() string {
	if p == PhaseParallel {
		return "parallel"
	}
	return "sequential"
}

// Hooks are optional callbacks fired while Run progresses.
type Hooks struct {
	Initialized func(g *core.Grid, fp core.Interval)
	Propagated  func(phase Phase, g *core.Grid, elapsed time.Duration)
}

// Visualizer receives the finished grid exactly once.
type Visualizer interface {
	Show(s core.Snapshot) error
}

// Result holds both evolved grids and their timings.
type Result struct {
	Config    Config
	Params    core.Params
	Strategy  string
	Seq       *core.Grid
	Par       *core.Grid
	SeqTime   time.Duration
	ParTime   time.Duration
	Speedup   float64
	Mismatch  *Mismatch
	FinalSlot int
}

// Run seeds two independent grids, evolves one sequentially and one with
// the configured parallel propagator, then checks them for equivalence.
// On divergence Run returns the populated Result together with ErrMismatch.
func Run(cfg Config, hooks Hooks) (*Result, error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", core.ErrWorkers, cfg.Workers)
	}
	factory, ok := core.Propagators()[cfg.Strategy]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrStrategy, cfg.Strategy)
	}
	seq, fp, err := NewGrid(cfg)
	if err != nil {
		return nil, err
	}
	par, _, err := NewGrid(cfg)
	if err != nil {
		return nil, err
	}
	if hooks.Initialized != nil {
		hooks.Initialized(seq, fp)
	}

	res := &Result{
		Config:    cfg,
		Params:    cfg.Params(),
		Strategy:  cfg.Strategy,
		Seq:       seq,
		Par:       par,
		FinalSlot: cfg.Params().FinalSlot(),
	}

	res.SeqTime, err = bench.Measure(func() error { return Sequential{}.Propagate(seq, cfg.Steps) })
	if err != nil {
		return nil, err
	}
	if hooks.Propagated != nil {
		hooks.Propagated(PhaseSequential, seq, res.SeqTime)
	}

	parallel := factory(cfg.Workers)
	res.ParTime, err = bench.Measure(func() error { return parallel.Propagate(par, cfg.Steps) })
	if err != nil {
		return nil, err
	}
	if hooks.Propagated != nil {
		hooks.Propagated(PhaseParallel, par, res.ParTime)
	}

	res.Speedup = bench.Speedup(res.SeqTime, res.ParTime)
	res.Mismatch, err = Diff(seq, par, res.FinalSlot, Tolerance)
	if err != nil {
		return nil, err
	}
	if res.Mismatch != nil {
		return res, fmt.Errorf("%w: %s (%s)", ErrMismatch, res.Mismatch, parallel.Name())
	}
	return res, nil
}

// Notify hands the final sequential grid to v.
func (r *Result) Notify(v Visualizer) error {
	s, err := r.Seq.Snapshot(r.FinalSlot)
	if err != nil {
		return err
	}
	return v.Show(s)
}

// Parameters reports the configuration and outcome of the run.
func (r *Result) Parameters() core.ParameterSnapshot {
	fp := r.Params.Fireplace
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("n", "Dimension", r.Config.Dimension),
				intParam("t", "Steps", r.Config.Steps),
				stringParam("fireplace", "Fireplace", fmt.Sprintf("%d to %d", fp.Begin, fp.End)),
			},
		},
		{
			Name: "Parallel",
			Params: []core.Parameter{
				stringParam("strategy", "Strategy", r.Strategy),
				intParam("workers", "Workers", r.Config.Workers),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				stringParam("seq_time", "Sequential", r.SeqTime.String()),
				stringParam("par_time", "Parallel", r.ParTime.String()),
				floatParam("speedup", "Speedup", r.Speedup),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 3, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
