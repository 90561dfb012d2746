package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"heatsim/internal/core"
)

// Image renders a snapshot with one scale×scale block per cell.
func Image(s core.Snapshot, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	n := s.Dimension
	cells := make([]byte, 4*n*n)
	FillRGBA(cells, s.Cells)
	if scale == 1 {
		return &image.RGBA{Pix: cells, Stride: 4 * n, Rect: image.Rect(0, 0, n, n)}
	}

	img := image.NewRGBA(image.Rect(0, 0, n*scale, n*scale))
	for y := 0; y < n*scale; y++ {
		row := (y / scale) * n
		for x := 0; x < n*scale; x++ {
			src := (row + x/scale) * 4
			dst := img.PixOffset(x, y)
			copy(img.Pix[dst:dst+4], cells[src:src+4])
		}
	}
	return img
}

// WritePNG encodes the snapshot as a PNG image.
func WritePNG(w io.Writer, s core.Snapshot, scale int) error {
	return png.Encode(w, Image(s, scale))
}

// SavePNG writes the snapshot to a PNG file at path.
func SavePNG(path string, s core.Snapshot, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, s, scale); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
