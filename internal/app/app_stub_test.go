//go:build !ebiten

package app

import (
	"errors"
	"testing"

	"heatsim/internal/core"
)

func TestHeadlessViewer(t *testing.T) {
	v := New(2, core.ParameterSnapshot{})
	if err := v.Show(core.Snapshot{Dimension: 1, Cells: []float64{20}}); !errors.Is(err, ErrHeadless) {
		t.Fatalf("Show err = %v, want ErrHeadless", err)
	}
}
