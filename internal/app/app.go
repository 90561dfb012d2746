//go:build ebiten

package app

import (
	"errors"

	"heatsim/internal/core"
	"heatsim/internal/render"
	"heatsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Viewer shows a finished grid in a window until any key is pressed.
type Viewer struct {
	scale  int
	legend *ui.Legend
}

// New constructs a Viewer drawing cells scale pixels wide.
func New(scale int, params core.ParameterSnapshot) *Viewer {
	if scale < 1 {
		scale = 1
	}
	return &Viewer{scale: scale, legend: ui.NewLegend(params)}
}

// Show blocks until the window receives a key press, then releases the
// window and returns.
func (v *Viewer) Show(s core.Snapshot) error {
	g := &game{
		img:    ebiten.NewImageFromImage(render.Image(s, 1)),
		n:      s.Dimension,
		scale:  v.scale,
		legend: v.legend,
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("heatsim — heat diffusion")
	ebiten.SetWindowSize(w, h)
	ebiten.SetScreenClearedEveryFrame(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// game adapts a static snapshot to the ebiten.Game interface.
type game struct {
	img    *ebiten.Image
	n      int
	scale  int
	legend *ui.Legend
	keys   []ebiten.Key
}

// Update ends the run loop on the first key press.
func (g *game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	if len(g.keys) > 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the grid and the legend.
func (g *game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
	g.legend.Draw(screen, g.n*g.scale)
}

// Layout returns the logical screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.n * g.scale
	h := side
	if lh := g.legend.Height(); lh > h {
		h = lh
	}
	return side + g.legend.Width(), h
}
