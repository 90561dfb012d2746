//go:build !ebiten

package app

import "heatsim/internal/core"

// Viewer is a placeholder that satisfies the API expected by the GUI build.
type Viewer struct{}

// New returns a viewer that cannot open a window.
func New(int, core.ParameterSnapshot) *Viewer { return &Viewer{} }

// Show always reports that the GUI build tag is missing.
func (v *Viewer) Show(core.Snapshot) error { return ErrHeadless }
