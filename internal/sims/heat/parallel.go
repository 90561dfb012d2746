package heat

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"heatsim/internal/core"
)

// Parallel forks one goroutine per row block for every step and joins them
// before the slot swap.
type Parallel struct {
	Workers int
}

// NewParallel returns a Parallel propagator with the given worker count.
func NewParallel(workers int) *Parallel {
	return &Parallel{Workers: workers}
}

// Name returns the propagator identifier.
func (p *Parallel) Name() string { return "parallel" }

// Propagate runs steps Jacobi iterations. Workers read only the current slot
// and write only their own rows of the next slot; Wait is the barrier.
func (p *Parallel) Propagate(g *core.Grid, steps int) error {
	if err := checkRun(steps, p.Workers); err != nil {
		return err
	}
	n := g.Dimension()
	blocks := partitionRows(n, p.Workers)
	for iter := 0; iter < steps; iter++ {
		src, dst := g.Slot(g.Current()), g.Slot(g.Next())
		var eg errgroup.Group
		for _, b := range blocks {
			eg.Go(func() error {
				StepInterior(src, dst, n, b.from, b.to)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		g.Swap()
	}
	return nil
}

// Pool keeps one long-lived goroutine per row block for the whole run and
// hands out each step over channels; collecting every done signal is the
// barrier.
type Pool struct {
	Workers int
}

// NewPool returns a Pool propagator with the given worker count.
func NewPool(workers int) *Pool {
	return &Pool{Workers: workers}
}

// Name returns the propagator identifier.
func (p *Pool) Name() string { return "pool" }

type stepBuffers struct {
	src, dst []float64
}

// Propagate runs steps Jacobi iterations on the worker pool.
func (p *Pool) Propagate(g *core.Grid, steps int) error {
	if err := checkRun(steps, p.Workers); err != nil {
		return err
	}
	n := g.Dimension()
	blocks := partitionRows(n, p.Workers)

	starts := make([]chan stepBuffers, len(blocks))
	done := make(chan struct{}, len(blocks))
	var wg sync.WaitGroup
	for i, b := range blocks {
		starts[i] = make(chan stepBuffers)
		wg.Add(1)
		go func(b rowBlock, start <-chan stepBuffers) {
			defer wg.Done()
			for buf := range start {
				StepInterior(buf.src, buf.dst, n, b.from, b.to)
				done <- struct{}{}
			}
		}(b, starts[i])
	}

	for iter := 0; iter < steps; iter++ {
		buf := stepBuffers{src: g.Slot(g.Current()), dst: g.Slot(g.Next())}
		for _, start := range starts {
			start <- buf
		}
		for range blocks {
			<-done
		}
		g.Swap()
	}

	for _, start := range starts {
		close(start)
	}
	wg.Wait()
	return nil
}

func checkRun(steps, workers int) error {
	if steps < 0 {
		return fmt.Errorf("%w: %d", core.ErrSteps, steps)
	}
	if workers < 1 {
		return fmt.Errorf("%w: got %d", core.ErrWorkers, workers)
	}
	return nil
}
