package core

import "fmt"

// MaxDimension is the largest side length a Grid accepts.
const MaxDimension = 500

// Grid stores a square temperature field in two time slots, row-major.
// Current names the slot holding the latest completed state; Next is the
// write target of the step in progress. Swap exchanges the roles without
// moving any data.
type Grid struct {
	n       int
	slots   [2][]float64
	current int
}

// NewGrid allocates both slots of an n×n grid.
func NewGrid(n int) (*Grid, error) {
	if n < 1 || n > MaxDimension {
		return nil, fmt.Errorf("%w: dimension %d not in [1, %d]", ErrCapacity, n, MaxDimension)
	}
	g := &Grid{n: n}
	g.slots[0] = make([]float64, n*n)
	g.slots[1] = make([]float64, n*n)
	return g, nil
}

// Dimension returns the side length.
func (g *Grid) Dimension() int { return g.n }

// Current returns the slot index of the latest completed state.
func (g *Grid) Current() int { return g.current }

// Next returns the slot index the next step writes into.
func (g *Grid) Next() int { return 1 - g.current }

// Swap exchanges the current and next slots.
func (g *Grid) Swap() { g.current = 1 - g.current }

// Rewind makes slot 0 current again.
func (g *Grid) Rewind() { g.current = 0 }

// Slot exposes the backing slice of a slot so callers can read/write values
// directly.
func (g *Grid) Slot(slot int) []float64 { return g.slots[slot] }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.n + col }

// At reads a cell of the given slot.
func (g *Grid) At(slot, row, col int) float64 { return g.slots[slot][row*g.n+col] }

// Set writes a cell of the given slot.
func (g *Grid) Set(slot, row, col int, v float64) { g.slots[slot][row*g.n+col] = v }

// Fill assigns v to every cell of both slots.
func (g *Grid) Fill(v float64) {
	for s := range g.slots {
		for i := range g.slots[s] {
			g.slots[s][i] = v
		}
	}
}

// Clone returns a deep copy, including the slot index.
func (g *Grid) Clone() *Grid {
	c := &Grid{n: g.n, current: g.current}
	c.slots[0] = append([]float64(nil), g.slots[0]...)
	c.slots[1] = append([]float64(nil), g.slots[1]...)
	return c
}

// Snapshot copies one slot out of the grid.
func (g *Grid) Snapshot(slot int) (Snapshot, error) {
	if err := CheckSlot(slot); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Dimension: g.n, Cells: append([]float64(nil), g.slots[slot]...)}, nil
}

// CheckSlot reports whether slot names one of the two time slots.
func CheckSlot(slot int) error {
	if slot != 0 && slot != 1 {
		return fmt.Errorf("%w: %d", ErrSlot, slot)
	}
	return nil
}

// Snapshot is an immutable copy of one grid slot handed to presentation code.
type Snapshot struct {
	Dimension int
	Cells     []float64
}

// At returns the temperature at (row, col).
func (s Snapshot) At(row, col int) float64 { return s.Cells[row*s.Dimension+col] }
