package app

import (
	"errors"
	"flag"

	"heatsim/internal/sims/heat"
)

// ErrHeadless reports that the viewer was requested in a build without the
// ebiten tag.
var ErrHeadless = errors.New("the viewer requires building with the 'ebiten' tag")

// Config represents the command-line parameters for the heat program.
type Config struct {
	Dimension int
	Steps     int
	Workers   int
	Strategy  string

	Prompt bool
	Dump   bool
	View   bool
	Scale  int

	PNG    string
	Video  string
	Frames int
	FPS    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := heat.DefaultConfig()
	return &Config{
		Dimension: d.Dimension,
		Steps:     d.Steps,
		Workers:   d.Workers,
		Strategy:  d.Strategy,
		Prompt:    true,
		Dump:      true,
		View:      true,
		Scale:     1,
		Frames:    50,
		FPS:       10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Dimension, "n", c.Dimension, "number of points in each dimension")
	fs.IntVar(&c.Steps, "t", c.Steps, "number of time steps")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel worker goroutines")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "parallel propagator: parallel or pool")
	fs.BoolVar(&c.Prompt, "prompt", c.Prompt, "ask for n and t on stdin")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print sampled grid values")
	fs.BoolVar(&c.View, "view", c.View, "open the viewer on the final grid")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for images")
	fs.StringVar(&c.PNG, "png", c.PNG, "write the final grid to this PNG file")
	fs.StringVar(&c.Video, "video", c.Video, "write a time-lapse MJPEG AVI to this file")
	fs.IntVar(&c.Frames, "frames", c.Frames, "time-lapse frame count")
	fs.IntVar(&c.FPS, "fps", c.FPS, "time-lapse frames per second")
}

// Sim converts the flags into a simulation config.
func (c *Config) Sim() heat.Config {
	cfg := heat.DefaultConfig()
	cfg.Dimension = c.Dimension
	cfg.Steps = c.Steps
	cfg.Workers = c.Workers
	cfg.Strategy = c.Strategy
	return cfg
}
