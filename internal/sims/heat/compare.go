package heat

import (
	"fmt"

	"heatsim/internal/core"
)

// Tolerance is the largest absolute per-cell difference still counted as equal.
const Tolerance = 0.01

// Mismatch locates the first cell pair that differs by more than the tolerance.
type Mismatch struct {
	Row, Col int
	A, B     float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("cell (%d,%d): %g vs %g", m.Row, m.Col, m.A, m.B)
}

// Diff scans one slot of a and b in row-major order and returns the first
// pair whose difference exceeds tol, or nil if there is none.
func Diff(a, b *core.Grid, slot int, tol float64) (*Mismatch, error) {
	if err := core.CheckSlot(slot); err != nil {
		return nil, err
	}
	n := a.Dimension()
	if b.Dimension() != n {
		return nil, fmt.Errorf("%w: %d vs %d", core.ErrDimensionMismatch, n, b.Dimension())
	}
	ca, cb := a.Slot(slot), b.Slot(slot)
	for i := range ca {
		if ca[i]-cb[i] > tol || cb[i]-ca[i] > tol {
			return &Mismatch{Row: i / n, Col: i % n, A: ca[i], B: cb[i]}, nil
		}
	}
	return nil, nil
}

// Equivalent reports whether every cell of the slot agrees within Tolerance.
func Equivalent(a, b *core.Grid, slot int) (bool, error) {
	m, err := Diff(a, b, slot, Tolerance)
	if err != nil {
		return false, err
	}
	return m == nil, nil
}
