package heat

import (
	"fmt"

	"heatsim/internal/core"
)

// Sequential advances a grid on the calling goroutine.
type Sequential struct{}

// Name returns the propagator identifier.
func (Sequential) Name() string { return "sequential" }

// Propagate runs steps Jacobi iterations, swapping slots after each one.
func (Sequential) Propagate(g *core.Grid, steps int) error {
	if steps < 0 {
		return fmt.Errorf("%w: %d", core.ErrSteps, steps)
	}
	n := g.Dimension()
	for iter := 0; iter < steps; iter++ {
		StepInterior(g.Slot(g.Current()), g.Slot(g.Next()), n, 1, n-1)
		g.Swap()
	}
	return nil
}

func init() {
	core.Register("sequential", func(int) core.Propagator { return Sequential{} })
	core.Register("parallel", func(workers int) core.Propagator { return NewParallel(workers) })
	core.Register("pool", func(workers int) core.Propagator { return NewPool(workers) })
}
