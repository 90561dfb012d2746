package core

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestNewGridCapacity(t *testing.T) {
	for _, n := range []int{0, -3, MaxDimension + 1} {
		if _, err := NewGrid(n); !errors.Is(err, ErrCapacity) {
			t.Fatalf("NewGrid(%d) err = %v, want ErrCapacity", n, err)
		}
	}
	for _, n := range []int{1, 100, MaxDimension} {
		g, err := NewGrid(n)
		if err != nil {
			t.Fatalf("NewGrid(%d): %v", n, err)
		}
		if len(g.Slot(0)) != n*n || len(g.Slot(1)) != n*n {
			t.Fatalf("NewGrid(%d) slots sized %d/%d", n, len(g.Slot(0)), len(g.Slot(1)))
		}
	}
}

func TestSwapKeepsBuffers(t *testing.T) {
	g, err := NewGrid(4)
	if err != nil {
		t.Fatal(err)
	}
	a, b := g.Slot(0), g.Slot(1)
	if g.Current() != 0 || g.Next() != 1 {
		t.Fatalf("fresh grid current/next = %d/%d", g.Current(), g.Next())
	}
	g.Swap()
	if g.Current() != 1 || g.Next() != 0 {
		t.Fatalf("after swap current/next = %d/%d", g.Current(), g.Next())
	}
	if &g.Slot(0)[0] != &a[0] || &g.Slot(1)[0] != &b[0] {
		t.Fatal("swap must not reallocate slots")
	}
	g.Rewind()
	if g.Current() != 0 {
		t.Fatal("rewind must make slot 0 current")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := NewGrid(3)
	g.Fill(20)
	g.Swap()
	c := g.Clone()
	c.Set(0, 1, 1, 99)
	if g.At(0, 1, 1) != 20 {
		t.Fatal("clone aliases the original buffer")
	}
	if c.Current() != g.Current() {
		t.Fatal("clone must keep the slot index")
	}
}

func TestSnapshot(t *testing.T) {
	g, _ := NewGrid(3)
	g.Set(1, 2, 0, 7)
	s, err := g.Snapshot(1)
	if err != nil {
		t.Fatal(err)
	}
	if s.At(2, 0) != 7 {
		t.Fatalf("snapshot (2,0) = %v, want 7", s.At(2, 0))
	}
	g.Set(1, 2, 0, 8)
	if s.At(2, 0) != 7 {
		t.Fatal("snapshot must copy the slot")
	}
	if _, err := g.Snapshot(2); !errors.Is(err, ErrSlot) {
		t.Fatalf("Snapshot(2) err = %v, want ErrSlot", err)
	}
}

func TestFireplaceFor(t *testing.T) {
	cases := []struct {
		n    int
		want Interval
	}{
		{100, Interval{40, 59}},
		{10, Interval{4, 5}},
		{5, Interval{2, 2}},
		{500, Interval{200, 299}},
	}
	for _, tc := range cases {
		got := FireplaceFor(tc.n)
		if got != tc.want {
			t.Fatalf("FireplaceFor(%d) = %+v, want %+v", tc.n, got, tc.want)
		}
		if err := got.Validate(tc.n); err != nil {
			t.Fatalf("FireplaceFor(%d) invalid: %v", tc.n, err)
		}
	}
}

func TestIntervalValidate(t *testing.T) {
	bad := []Interval{{-1, 2}, {3, 2}, {0, 10}}
	for _, iv := range bad {
		if err := iv.Validate(10); !errors.Is(err, ErrInterval) {
			t.Fatalf("Validate(%+v) err = %v, want ErrInterval", iv, err)
		}
	}
	// floor(0.6*3)-1 = 0 < floor(0.4*3) = 1
	if err := FireplaceFor(3).Validate(3); !errors.Is(err, ErrInterval) {
		t.Fatalf("dimension 3 should derive a malformed interval, got %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	if err := NewParams(100, 100).Validate(); err != nil {
		t.Fatalf("default params invalid: %v", err)
	}
	if err := NewParams(600, 1).Validate(); !errors.Is(err, ErrCapacity) {
		t.Fatalf("oversized params err = %v", err)
	}
	if err := NewParams(10, -1).Validate(); !errors.Is(err, ErrSteps) {
		t.Fatalf("negative steps err = %v", err)
	}
	if NewParams(10, 7).FinalSlot() != 1 || NewParams(10, 8).FinalSlot() != 0 {
		t.Fatal("final slot must follow step parity")
	}
}

func TestRegistry(t *testing.T) {
	Register("", func(int) Propagator { return nil })
	Register("nil-factory", nil)
	names := PropagatorNames()
	if slices.Contains(names, "") || slices.Contains(names, "nil-factory") {
		t.Fatalf("invalid registrations accepted: %v", names)
	}
}

func TestStopwatch(t *testing.T) {
	base := time.Unix(0, 0)
	ticks := []time.Time{base, base.Add(3 * time.Second), base.Add(10 * time.Second), base.Add(12 * time.Second)}
	i := 0
	sw := NewStopwatchWithClock(func() time.Time {
		now := ticks[i]
		i++
		return now
	})
	sw.Start()
	if got := sw.Stop(); got != 3*time.Second {
		t.Fatalf("first span = %v", got)
	}
	sw.Start()
	sw.Stop()
	if sw.Elapsed() != 5*time.Second {
		t.Fatalf("elapsed = %v, want 5s", sw.Elapsed())
	}
	if sw.Stop() != 0 {
		t.Fatal("stop without start must report zero")
	}
	sw.Reset()
	if sw.Elapsed() != 0 {
		t.Fatal("reset must clear total")
	}
}

func TestParameterLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{{Name: "Grid", Params: []Parameter{{Key: "n", Value: "100"}}}}}
	if p, ok := s.Lookup("n"); !ok || p.Value != "100" {
		t.Fatalf("Lookup(n) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("Lookup(missing) must fail")
	}
}
