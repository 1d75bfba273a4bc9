//go:build !ebiten

package ui

import "nfa-ca/internal/stats"

// Chart is a no-op placeholder for headless builds.
type Chart struct{}

// NewChart returns nil in the headless build.
func NewChart(*stats.Recorder) *Chart { return nil }

// Update is a no-op in the headless build.
func (c *Chart) Update() {}

// Draw is a no-op in the headless build.
func (c *Chart) Draw(any) {}
