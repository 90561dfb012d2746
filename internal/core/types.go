package core

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrCapacity reports a dimension outside [1, MaxDimension].
	ErrCapacity = errors.New("grid dimension out of range")
	// ErrInterval reports a fireplace interval that does not fit the grid.
	ErrInterval = errors.New("malformed fireplace interval")
	// ErrSlot reports a slot index other than 0 or 1.
	ErrSlot = errors.New("invalid slot index")
	// ErrDimensionMismatch reports grids of different sizes.
	ErrDimensionMismatch = errors.New("grid dimensions differ")
	// ErrSteps reports a negative step count.
	ErrSteps = errors.New("negative step count")
	// ErrWorkers reports a worker count below one.
	ErrWorkers = errors.New("worker count must be at least 1")
)

// Interval is an inclusive range of column indices on the top row.
type Interval struct {
	Begin int
	End   int
}

// FireplaceFor derives the heat source segment for an n-wide grid:
// [floor(0.4n), floor(0.6n)-1].
func FireplaceFor(n int) Interval {
	return Interval{
		Begin: int(float64(n) * .4),
		End:   int(float64(n)*.6) - 1,
	}
}

// Validate checks 0 <= Begin <= End < n.
func (iv Interval) Validate(n int) error {
	if iv.Begin < 0 || iv.Begin > iv.End || iv.End >= n {
		return fmt.Errorf("%w: [%d, %d] on dimension %d", ErrInterval, iv.Begin, iv.End, n)
	}
	return nil
}

// Contains reports whether col lies inside the interval.
func (iv Interval) Contains(col int) bool { return col >= iv.Begin && col <= iv.End }

// Params are the inputs of one simulation run.
type Params struct {
	Dimension int
	Steps     int
	Fireplace Interval
}

// NewParams builds Params with the fireplace derived from the dimension.
func NewParams(dimension, steps int) Params {
	return Params{Dimension: dimension, Steps: steps, Fireplace: FireplaceFor(dimension)}
}

// Validate checks every precondition of a run.
func (p Params) Validate() error {
	if p.Dimension < 1 || p.Dimension > MaxDimension {
		return fmt.Errorf("%w: dimension %d not in [1, %d]", ErrCapacity, p.Dimension, MaxDimension)
	}
	if p.Steps < 0 {
		return fmt.Errorf("%w: %d", ErrSteps, p.Steps)
	}
	return p.Fireplace.Validate(p.Dimension)
}

// FinalSlot is the slot holding the result after Steps swaps from slot 0.
func (p Params) FinalSlot() int { return p.Steps % 2 }

// Propagator advances a grid through a number of time steps.
type Propagator interface {
	Name() string
	Propagate(g *Grid, steps int) error
}

// Factory constructs a Propagator for the given worker count. Sequential
// implementations ignore it.
type Factory func(workers int) Propagator

var propagators = map[string]Factory{}

// Register adds a propagator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	propagators[name] = f
}

// Propagators exposes the registry of available propagator factories.
func Propagators() map[string]Factory {
	return propagators
}

// PropagatorNames lists registered names in sorted order.
func PropagatorNames() []string {
	names := make([]string, 0, len(propagators))
	for name := range propagators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
