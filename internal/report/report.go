// Package report writes the plain-text run log: prompts aside, everything
// the heat program prints goes through here.
package report

import (
	"fmt"
	"io"
	"time"

	"heatsim/internal/core"
)

// Labels printed above each grid dump.
const (
	LabelInitial    = "Initial numbers"
	LabelSequential = "Sequential execution numbers"
	LabelParallel   = "Parallel execution numbers"
)

// Stride returns the display sampling step for an n-wide grid.
func Stride(n int) int {
	if s := n / 10; s > 0 {
		return s
	}
	return 1
}

// Notice prints the viewer scale note.
func Notice(w io.Writer, scale int) {
	fmt.Fprintf(w, "Scale factor = %d. Note if > 1, actual borders on two sides (right and bottom) will not display\n", scale)
}

// Fireplace prints the heat source bounds.
func Fireplace(w io.Writer, fp core.Interval) {
	fmt.Fprintf(w, "Begin and end of fireplace: %d to %d\n", fp.Begin, fp.End)
}

// Grid prints every Stride-th row and column of one slot under label.
func Grid(w io.Writer, label string, g *core.Grid, slot int) {
	n := g.Dimension()
	step := Stride(n)
	fmt.Fprintln(w, label)
	for i := 0; i < n; i += step {
		for j := 0; j < n; j += step {
			fmt.Fprintf(w, "%6.2f\t", g.At(slot, i, j))
		}
		fmt.Fprintln(w)
	}
}

// Timing prints how long a propagator ran.
func Timing(w io.Writer, name string, d time.Duration) {
	fmt.Fprintf(w, "%s time: %f seconds\n", name, d.Seconds())
}

// Speedup prints the speedup factor.
func Speedup(w io.Writer, s float64) {
	fmt.Fprintf(w, "Speed up factor: %f\n", s)
}

// Mismatch prints the equivalence failure line.
func Mismatch(w io.Writer) {
	fmt.Fprintln(w, "Error:Sequential and Parallel are not equal.")
}

// Parameters prints a snapshot as indented groups.
func Parameters(w io.Writer, s core.ParameterSnapshot) {
	for _, g := range s.Groups {
		fmt.Fprintf(w, "%s:\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(w, "  %-12s %s\n", p.Label, p.Value)
		}
	}
}

// SweepRow is one line of a speedup sweep table.
type SweepRow struct {
	Workers    int
	Sequential time.Duration
	Parallel   time.Duration
	Speedup    float64
	Equivalent bool
}

// SweepTable prints sweep results one worker count per line.
func SweepTable(w io.Writer, rows []SweepRow) {
	fmt.Fprintf(w, "%8s %14s %14s %8s %s\n", "workers", "sequential", "parallel", "speedup", "equal")
	for _, r := range rows {
		fmt.Fprintf(w, "%8d %14s %14s %8.3f %v\n",
			r.Workers, r.Sequential.Round(time.Microsecond), r.Parallel.Round(time.Microsecond), r.Speedup, r.Equivalent)
	}
}
