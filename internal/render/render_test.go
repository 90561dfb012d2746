package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"heatsim/internal/core"
)

func TestBandThresholds(t *testing.T) {
	cases := []struct {
		temp float64
		want int
	}{
		{-5, 0}, {0, 0}, {9.999, 0}, {10, 1}, {19.99, 1}, {20, 2},
		{55, 5}, {89.99, 8}, {90, 9}, {100, 9}, {math.NaN(), 9},
	}
	for _, tc := range cases {
		if got := Band(tc.temp); got != tc.want {
			t.Fatalf("Band(%v) = %d, want %d", tc.temp, got, tc.want)
		}
	}
	if len(Palette()) != Bands {
		t.Fatalf("palette has %d colors, want %d", len(Palette()), Bands)
	}
}

func TestBandLabel(t *testing.T) {
	want := map[int]string{0: "< 10", 3: "30-40", 9: ">= 90"}
	for i, label := range want {
		if got := BandLabel(i); got != label {
			t.Fatalf("BandLabel(%d) = %q, want %q", i, got, label)
		}
	}
}

func TestFillRGBA(t *testing.T) {
	cells := []float64{5, 20, 100}
	buf := make([]byte, 4*len(cells))
	FillRGBA(buf, cells)
	for i, c := range cells {
		want := BandColor(c)
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("cell %d (%v) painted %v, want %v", i, c, got, want)
		}
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette left byte %d = %d", i, b)
		}
	}
}

func snapshot(n int, fill float64) core.Snapshot {
	cells := make([]float64, n*n)
	for i := range cells {
		cells[i] = fill
	}
	return core.Snapshot{Dimension: n, Cells: cells}
}

func TestImageScales(t *testing.T) {
	s := snapshot(4, 20)
	s.Cells[s.Dimension*1+2] = 95

	img := Image(s, 3)
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 12 {
		t.Fatalf("bounds = %v", b)
	}
	hot := BandColor(95)
	for y := 3; y < 6; y++ {
		for x := 6; x < 9; x++ {
			if img.RGBAAt(x, y) != hot {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, img.RGBAAt(x, y), hot)
			}
		}
	}
	if img.RGBAAt(0, 0) != BandColor(20) {
		t.Fatalf("pixel (0,0) = %v", img.RGBAAt(0, 0))
	}

	one := Image(s, 0)
	if one.Bounds().Dx() != 4 || one.RGBAAt(2, 1) != hot {
		t.Fatal("unscaled image must map one pixel per cell")
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, snapshot(5, 45), 2); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 10 {
		t.Fatalf("decoded width = %d", img.Bounds().Dx())
	}
}

func TestRecorderWritesFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.avi")
	rec, err := NewRecorder(path, 6, 2, 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, temp := range []float64{20, 50, 95} {
		if err := rec.AddFrame(snapshot(6, temp)); err != nil {
			t.Fatal(err)
		}
	}
	if err := rec.AddFrame(snapshot(7, 20)); !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("wrong-size frame err = %v", err)
	}
	if rec.Frames() != 3 {
		t.Fatalf("frames = %d", rec.Frames())
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("video file is empty")
	}
}

func TestWriteSpeedupChart(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSpeedupChart(&buf, []int{1, 2, 4}, []float64{1, 1.8, 3.1}); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("chart output is not a PNG")
	}
	if err := WriteSpeedupChart(&buf, []int{1}, []float64{1}); !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("single point err = %v", err)
	}
}
