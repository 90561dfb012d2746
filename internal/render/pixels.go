package render

import "image/color"

// FillRGBA converts temperatures into RGBA pixels in buf using the band
// palette. buf must hold 4 bytes per cell.
func FillRGBA(buf []byte, cells []float64) {
	fillPaletteRGBA(buf, cells, bandPalette)
}

// fillPaletteRGBA maps each cell to its band color. When the palette is empty
// the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []float64, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	for i, c := range cells {
		base := i * 4
		col := palette[bandOf(c, len(palette))]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
