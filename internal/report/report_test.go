package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"heatsim/internal/core"
)

func TestStride(t *testing.T) {
	cases := map[int]int{100: 10, 10: 1, 9: 1, 1: 1, 55: 5}
	for n, want := range cases {
		if got := Stride(n); got != want {
			t.Fatalf("Stride(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestGridDumpSamplesEveryStride(t *testing.T) {
	g, err := core.NewGrid(20)
	if err != nil {
		t.Fatal(err)
	}
	g.Fill(20)
	g.Set(1, 0, 8, 100)
	g.Set(1, 1, 1, 55.555)

	var buf bytes.Buffer
	Grid(&buf, LabelSequential, g, 1)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != LabelSequential {
		t.Fatalf("label line = %q", lines[0])
	}
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want label + 10 rows", len(lines))
	}
	if lines[1] != strings.Repeat(" 20.00\t", 4)+"100.00\t"+strings.Repeat(" 20.00\t", 5) {
		t.Fatalf("row 0 = %q", lines[1])
	}
	if strings.Contains(buf.String(), "55.56") {
		t.Fatal("odd rows must be skipped at stride 2")
	}
}

func TestFixedLines(t *testing.T) {
	var buf bytes.Buffer
	Notice(&buf, 10)
	Fireplace(&buf, core.Interval{Begin: 40, End: 59})
	Speedup(&buf, 2.5)
	Mismatch(&buf)
	want := "Scale factor = 10. Note if > 1, actual borders on two sides (right and bottom) will not display\n" +
		"Begin and end of fireplace: 40 to 59\n" +
		"Speed up factor: 2.500000\n" +
		"Error:Sequential and Parallel are not equal.\n"
	if buf.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTimingAndTables(t *testing.T) {
	var buf bytes.Buffer
	Timing(&buf, "Sequential", 1500*time.Millisecond)
	if buf.String() != "Sequential time: 1.500000 seconds\n" {
		t.Fatalf("timing line = %q", buf.String())
	}

	buf.Reset()
	SweepTable(&buf, []SweepRow{{Workers: 4, Sequential: time.Second, Parallel: 500 * time.Millisecond, Speedup: 2, Equivalent: true}})
	out := buf.String()
	if !strings.Contains(out, "workers") || !strings.Contains(out, "2.000 true") {
		t.Fatalf("sweep table = %q", out)
	}

	buf.Reset()
	Parameters(&buf, core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Grid",
		Params: []core.Parameter{{Key: "n", Label: "Dimension", Value: "100"}},
	}}})
	if buf.String() != "Grid:\n  Dimension    100\n" {
		t.Fatalf("parameters = %q", buf.String())
	}
}
