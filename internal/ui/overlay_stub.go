//go:build !ebiten

package ui

import "gridsnake/internal/sims/snake"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// ShowGrid always reports false in headless builds.
func (o *Overlay) ShowGrid() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, snake.Snapshot, int, int) {}
