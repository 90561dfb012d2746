//go:build ebiten

package ui

import (
	"image/color"

	"heatsim/internal/core"
	"heatsim/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelWidth     = 200
	panelPadding   = 10
	headerBaseline = 12
	lineHeight     = 16
	swatchSize     = 12
	groupGap       = 8
)

// Legend renders the color band key and run parameters to the right of the
// grid.
type Legend struct {
	params core.ParameterSnapshot
	panel  *ebiten.Image
	pixel  *ebiten.Image
	height int
}

// NewLegend constructs a Legend describing the provided run.
func NewLegend(params core.ParameterSnapshot) *Legend {
	l := &Legend{params: params}
	l.height = l.measure()
	l.pixel = ebiten.NewImage(1, 1)
	l.pixel.Fill(color.White)
	return l
}

// Width returns the panel width in pixels.
func (l *Legend) Width() int { return panelWidth }

// Height returns the panel height needed to show every line.
func (l *Legend) Height() int { return l.height }

func (l *Legend) measure() int {
	h := panelPadding + headerBaseline + render.Bands*lineHeight + groupGap
	for _, g := range l.params.Groups {
		h += lineHeight * (1 + len(g.Params))
		h += groupGap
	}
	return h + panelPadding
}

// Draw paints the legend onto screen with its left edge at x.
func (l *Legend) Draw(screen *ebiten.Image, x int) {
	if l.panel == nil {
		l.panel = ebiten.NewImage(panelWidth, l.height)
		l.render()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), 0)
	screen.DrawImage(l.panel, op)
}

func (l *Legend) render() {
	l.panel.Fill(color.RGBA{R: 24, G: 26, B: 32, A: 255})
	face := basicfont.Face7x13
	title := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	label := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(l.panel, "Temperature", face, panelPadding, y, title)
	for i, col := range render.Palette() {
		top := y + 4 + i*lineHeight
		l.swatch(panelPadding, top, col)
		text.Draw(l.panel, render.BandLabel(i), face, panelPadding+swatchSize+8, top+swatchSize-1, label)
	}
	y += render.Bands*lineHeight + groupGap

	for _, g := range l.params.Groups {
		y += lineHeight
		text.Draw(l.panel, g.Name, face, panelPadding, y, title)
		for _, p := range g.Params {
			y += lineHeight
			text.Draw(l.panel, p.Label, face, panelPadding, y, dim)
			text.Draw(l.panel, p.Value, face, panelWidth/2, y, label)
		}
		y += groupGap
	}
}

func (l *Legend) swatch(x, y int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(swatchSize, swatchSize)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
	l.panel.DrawImage(l.pixel, op)
}
