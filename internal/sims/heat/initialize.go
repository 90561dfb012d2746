package heat

import "heatsim/internal/core"

// Initialize seeds both slots of g: row 0 inside fp holds source, every
// other cell holds wall. Slot 0 becomes current.
func Initialize(g *core.Grid, fp core.Interval, wall, source float64) error {
	n := g.Dimension()
	if err := fp.Validate(n); err != nil {
		return err
	}
	g.Rewind()
	for s := 0; s < 2; s++ {
		cells := g.Slot(s)
		for i := range cells {
			cells[i] = wall
		}
		for j := fp.Begin; j <= fp.End; j++ {
			cells[j] = source
		}
	}
	return nil
}

// NewGrid allocates and initializes a grid for cfg.
func NewGrid(cfg Config) (*core.Grid, core.Interval, error) {
	p := cfg.Params()
	if err := p.Validate(); err != nil {
		return nil, core.Interval{}, err
	}
	g, err := core.NewGrid(p.Dimension)
	if err != nil {
		return nil, core.Interval{}, err
	}
	if err := Initialize(g, p.Fireplace, cfg.Wall, cfg.Fireplace); err != nil {
		return nil, core.Interval{}, err
	}
	return g, p.Fireplace, nil
}
