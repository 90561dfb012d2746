package render

import (
	"fmt"
	"image/color"
)

// BandWidth is the temperature span covered by one color band.
const BandWidth = 10.0

// Bands counts the discrete color bands.
const Bands = 10

var bandPalette = []color.RGBA{
	{R: 0, G: 255, B: 255, A: 255},   // cyan      < 10
	{R: 0, G: 0, B: 255, A: 255},     // blue      < 20
	{R: 0, G: 200, B: 0, A: 255},     // green     < 30
	{R: 255, G: 255, B: 0, A: 255},   // yellow    < 40
	{R: 255, G: 165, B: 0, A: 255},   // orange    < 50
	{R: 255, G: 0, B: 0, A: 255},     // red       < 60
	{R: 128, G: 0, B: 128, A: 255},   // purple    < 70
	{R: 255, G: 0, B: 255, A: 255},   // magenta   < 80
	{R: 238, G: 130, B: 238, A: 255}, // violet    < 90
	{R: 0, G: 0, B: 0, A: 255},       // black    >= 90
}

// Palette exposes the band colors, coldest first.
func Palette() []color.RGBA {
	return append([]color.RGBA(nil), bandPalette...)
}

// Band returns the color band index of a temperature: 0 below 10 degrees,
// one more per 10 degrees, 9 from 90 up. NaN falls in the top band.
func Band(t float64) int {
	return bandOf(t, Bands)
}

func bandOf(t float64, bands int) int {
	for i := 0; i < bands-1; i++ {
		if t < float64(i+1)*BandWidth {
			return i
		}
	}
	return bands - 1
}

// BandColor returns the color a temperature is drawn with.
func BandColor(t float64) color.RGBA {
	return bandPalette[Band(t)]
}

// BandLabel describes the temperature range of band i.
func BandLabel(i int) string {
	switch {
	case i <= 0:
		return fmt.Sprintf("< %.0f", BandWidth)
	case i >= Bands-1:
		return fmt.Sprintf(">= %.0f", float64(Bands-1)*BandWidth)
	default:
		return fmt.Sprintf("%.0f-%.0f", float64(i)*BandWidth, float64(i+1)*BandWidth)
	}
}
