package heat

import (
	"strconv"

	"heatsim/internal/core"
)

const (
	// WallTemp is the initial temperature of every cell outside the fireplace.
	WallTemp = 20.0
	// FireplaceTemp is the temperature held on the fireplace segment.
	FireplaceTemp = 100.0
	// DefaultWorkers is the parallel degree used when none is configured.
	DefaultWorkers = 4
	// DefaultStrategy names the registered parallel propagator used by Run.
	DefaultStrategy = "parallel"
)

// Config controls one heat diffusion run.
type Config struct {
	Dimension int
	Steps     int
	Workers   int
	Strategy  string

	Wall      float64
	Fireplace float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Dimension: 100,
		Steps:     100,
		Workers:   DefaultWorkers,
		Strategy:  DefaultStrategy,
		Wall:      WallTemp,
		Fireplace: FireplaceTemp,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Dimension = parsed
		}
	}
	if v, ok := cfg["t"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["strategy"]; ok && v != "" {
		c.Strategy = v
	}
	if v, ok := cfg["wall"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Wall = parsed
		}
	}
	if v, ok := cfg["fireplace"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Fireplace = parsed
		}
	}
	return c
}

// Params derives the run parameters, including the fireplace interval.
func (c Config) Params() core.Params {
	return core.NewParams(c.Dimension, c.Steps)
}
