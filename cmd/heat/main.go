package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"heatsim/internal/app"
	"heatsim/internal/console"
	"heatsim/internal/core"
	"heatsim/internal/render"
	"heatsim/internal/report"
	"heatsim/internal/sims/heat"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	out := os.Stdout
	if cfg.Prompt {
		p := console.NewPrompter(os.Stdin, out)
		n, err := p.Int(console.PointsPrompt, cfg.Dimension)
		if err != nil {
			fmt.Fprintln(out, console.ReadError)
			os.Exit(1)
		}
		t, err := p.Int(console.StepsPrompt, cfg.Steps)
		if err != nil {
			fmt.Fprintln(out, console.ReadError)
			os.Exit(1)
		}
		cfg.Dimension, cfg.Steps = n, t
	}
	report.Notice(out, cfg.Scale)

	sim := cfg.Sim()
	final := sim.Params().FinalSlot()
	hooks := heat.Hooks{
		Initialized: func(g *core.Grid, fp core.Interval) {
			report.Fireplace(out, fp)
			if cfg.Dump {
				report.Grid(out, report.LabelInitial, g, final)
			}
		},
		Propagated: func(phase heat.Phase, g *core.Grid, _ time.Duration) {
			if !cfg.Dump {
				return
			}
			label := report.LabelSequential
			if phase == heat.PhaseParallel {
				label = report.LabelParallel
			}
			report.Grid(out, label, g, final)
		},
	}

	res, err := heat.Run(sim, hooks)
	if errors.Is(err, heat.ErrMismatch) {
		report.Mismatch(out)
		log.Print(err)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
	report.Timing(out, "Sequential", res.SeqTime)
	report.Timing(out, "Parallel", res.ParTime)
	report.Speedup(out, res.Speedup)

	if cfg.PNG != "" {
		snap, err := res.Seq.Snapshot(res.FinalSlot)
		if err != nil {
			log.Fatal(err)
		}
		if err := render.SavePNG(cfg.PNG, snap, cfg.Scale); err != nil {
			log.Fatal(err)
		}
	}
	if cfg.Video != "" {
		if err := recordTimeLapse(cfg); err != nil {
			log.Fatal(err)
		}
	}

	if !cfg.View {
		return
	}
	if err := res.Notify(app.New(cfg.Scale, res.Parameters())); err != nil {
		if errors.Is(err, app.ErrHeadless) {
			log.Printf("%v; re-run with `go run -tags ebiten ./cmd/heat` or pass -view=false", err)
			return
		}
		log.Fatal(err)
	}
}

func recordTimeLapse(cfg *app.Config) error {
	rec, err := render.NewRecorder(cfg.Video, cfg.Dimension, cfg.Scale, cfg.FPS)
	if err != nil {
		return err
	}
	err = heat.TimeLapse(cfg.Sim(), cfg.Frames, func(_ int, s core.Snapshot) error {
		return rec.AddFrame(s)
	})
	if cerr := rec.Close(); err == nil {
		err = cerr
	}
	return err
}
