//go:build !ebiten

package ui

import "heatsim/internal/core"

// Legend is a no-op placeholder for headless builds.
type Legend struct{}

// NewLegend returns an empty legend in the headless build.
func NewLegend(core.ParameterSnapshot) *Legend { return &Legend{} }

// Width is zero in the headless build.
func (l *Legend) Width() int { return 0 }

// Height is zero in the headless build.
func (l *Legend) Height() int { return 0 }

// Draw is a no-op in the headless build.
func (l *Legend) Draw(any, int) {}
