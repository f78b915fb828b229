//go:build ebiten

package ui

import (
	"image/color"

	"gridsnake/internal/sims/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the score line and the game-over banner on top of the board.
type Overlay struct {
	showGrid  bool
	showScore bool

	shade *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{showGrid: true, showScore: true}
	o.shade = ebiten.NewImage(1, 1)
	o.shade.Fill(color.White)
	return o
}

// Update toggles the optional layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.showScore = !o.showScore
	}
}

// ShowGrid reports whether cell boundaries should be drawn.
func (o *Overlay) ShowGrid() bool { return o.showGrid }

// Draw renders the overlay for snap onto a board of w x h pixels.
func (o *Overlay) Draw(screen *ebiten.Image, snap snake.Snapshot, w, h int) {
	face := basicfont.Face7x13
	if o.showScore || snap.Terminated() {
		text.Draw(screen, scoreLine(snap.Score), face, 8, 18, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
	if !snap.Terminated() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 140})
	screen.DrawImage(o.shade, op)

	bounds := text.BoundString(face, snake.GameOverText)
	x := centered(bounds.Dx(), w)
	y := centered(bounds.Dy(), h) + bounds.Dy()
	text.Draw(screen, snake.GameOverText, face, x, y, color.RGBA{R: 255, G: 90, B: 90, A: 255})
}
