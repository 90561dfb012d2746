package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewPoints reports a chart request with fewer than two samples.
var ErrTooFewPoints = errors.New("speedup chart needs at least two worker counts")

// WriteSpeedupChart plots measured speedup against worker count next to the
// ideal linear speedup and writes the chart as PNG.
func WriteSpeedupChart(w io.Writer, workers []int, speedups []float64) error {
	if len(workers) < 2 || len(workers) != len(speedups) {
		return ErrTooFewPoints
	}
	xs := make([]float64, len(workers))
	ideal := make([]float64, len(workers))
	for i, n := range workers {
		xs[i] = float64(n)
		ideal[i] = float64(n)
	}

	graph := chart.Chart{
		Title:  "Parallel speedup",
		Width:  640,
		Height: 400,
		XAxis: chart.XAxis{
			Name:  "workers",
			Style: chart.Style{FontSize: 10.0},
			Ticks: workerTicks(workers),
		},
		YAxis: chart.YAxis{
			Name:  "speedup",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "measured",
				XValues: xs,
				YValues: speedups,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 3.0, DotWidth: 4.0, DotColor: chart.ColorRed},
			},
			chart.ContinuousSeries{
				Name:    "ideal",
				XValues: xs,
				YValues: ideal,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 160, G: 160, B: 160, A: 255}, StrokeWidth: 1.5, StrokeDashArray: []float64{5, 5}},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render speedup chart: %w", err)
	}
	return nil
}

func workerTicks(workers []int) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(workers))
	for _, n := range workers {
		ticks = append(ticks, chart.Tick{Value: float64(n), Label: fmt.Sprintf("%d", n)})
	}
	return ticks
}
