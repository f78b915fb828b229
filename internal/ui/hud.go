//go:build ebiten

package ui

import (
	"image/color"

	"gridsnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	provider   core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []panelLine
	title      string
}

// NewHUD constructs a HUD reading from provider. A non-positive width
// disables the panel.
func NewHUD(provider core.ParameterProvider, name string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{provider: provider, width: width, title: buildTitle(name)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter rows.
func (h *HUD) Update() {
	if h == nil || h.provider == nil {
		return
	}
	h.lines = panelLines(h.provider.Parameters())
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += sectionGap
	for _, line := range h.lines {
		if line.header {
			y += sectionGap / 2
			text.Draw(h.panel, line.text, face, panelPadding, y, color.RGBA{R: 150, G: 190, B: 150, A: 255})
		} else {
			text.Draw(h.panel, line.text, face, panelPadding+indent, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
		y += lineHeight
		if y > height {
			break
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	indent         = 8
	headerBaseline = 18
	sectionGap     = 14
)
