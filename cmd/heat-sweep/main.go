package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"heatsim/internal/render"
	"heatsim/internal/report"
	"heatsim/internal/sims/heat"
)

func main() {
	n := flag.Int("n", 300, "number of points in each dimension")
	steps := flag.Int("t", 200, "number of time steps per run")
	maxWorkers := flag.Int("workers", runtime.NumCPU(), "largest worker count to try")
	repeats := flag.Int("repeats", 3, "runs averaged per measurement")
	strategy := flag.String("strategy", heat.DefaultStrategy, "parallel propagator: parallel or pool")
	chartPath := flag.String("chart", "", "write a speedup chart PNG to this file")
	flag.Parse()

	cfg := heat.DefaultConfig()
	cfg.Dimension = *n
	cfg.Steps = *steps
	cfg.Strategy = *strategy

	counts := make([]int, 0, *maxWorkers)
	for w := 1; w <= *maxWorkers; w++ {
		counts = append(counts, w)
	}

	fmt.Printf("Sweeping %d worker counts (%s, n=%d, %d steps, %d repeats)\n", len(counts), cfg.Strategy, cfg.Dimension, cfg.Steps, *repeats)

	points, err := heat.Sweep(cfg, counts, *repeats)
	if err != nil {
		log.Fatal(err)
	}

	rows := make([]report.SweepRow, 0, len(points))
	speedups := make([]float64, 0, len(points))
	diverged := false
	for _, p := range points {
		rows = append(rows, report.SweepRow{
			Workers:    p.Workers,
			Sequential: p.Sequential,
			Parallel:   p.Parallel,
			Speedup:    p.Speedup,
			Equivalent: p.Equivalent,
		})
		speedups = append(speedups, p.Speedup)
		if !p.Equivalent {
			diverged = true
		}
	}
	report.SweepTable(os.Stdout, rows)

	if *chartPath != "" {
		if err := writeChart(*chartPath, counts, speedups); err != nil {
			log.Printf("chart skipped: %v", err)
		} else {
			fmt.Printf("Wrote %s\n", *chartPath)
		}
	}
	if diverged {
		report.Mismatch(os.Stdout)
		os.Exit(1)
	}
}

func writeChart(path string, workers []int, speedups []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteSpeedupChart(f, workers, speedups); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
