package term

import (
	"fmt"

	"gridsnake/internal/core"
	"gridsnake/internal/sims/snake"

	"github.com/gdamore/tcell/v2"
)

// Board placement on the screen. Row 0 carries the status line and the
// border starts on the row below it.
const (
	statusRow = 0
	borderTop = 1
	cellWidth = 2
)

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen

	base   tcell.Style
	border tcell.Style
	body   tcell.Style
	head   tcell.Style
	food   tcell.Style
	banner tcell.Style
}

// NewRenderer wraps an initialised screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	return &Renderer{
		screen: screen,
		base:   base,
		border: base.Foreground(tcell.ColorGray),
		body:   base.Foreground(tcell.ColorGreen),
		head:   base.Foreground(tcell.ColorYellow).Bold(true),
		food:   base.Foreground(tcell.ColorRed),
		banner: base.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true),
	}
}

// BoardSize returns the size of the bordered box drawn for a grid.
func BoardSize(cols, rows int) (int, int) {
	return cols*cellWidth + 2, rows + 2
}

// CellOrigin returns the screen position of the left column of cell (cx, cy).
func CellOrigin(cx, cy int) (int, int) {
	return 1 + cx*cellWidth, borderTop + 1 + cy
}

// Draw renders snap and flushes the screen. paused adds a marker to the
// status line.
func (r *Renderer) Draw(snap snake.Snapshot, paused bool) {
	r.screen.Clear()
	grid := snap.Grid
	r.drawBorder(grid.Cols, grid.Rows)

	if snap.FoodPlaced {
		r.drawCell(grid, snap.Food, '●', ' ', r.food)
	}
	for _, p := range snap.Body {
		r.drawCell(grid, p, '█', '█', r.body)
	}
	r.drawCell(grid, snap.Head, '█', '█', r.head)

	status := fmt.Sprintf("Scores: %d", snap.Score)
	if paused {
		status += "  [paused]"
	}
	r.drawText(0, statusRow, status, r.base)

	if snap.Terminated() {
		w, h := BoardSize(grid.Cols, grid.Rows)
		msg := " " + snake.GameOverText + " "
		x := (w - len([]rune(msg))) / 2
		if x < 0 {
			x = 0
		}
		r.drawText(x, borderTop+h/2, msg, r.banner)
	}
	r.screen.Show()
}

func (r *Renderer) drawCell(grid core.Grid, p core.Point, left, right rune, style tcell.Style) {
	if !grid.Contains(p) {
		return
	}
	cx, cy := grid.Cell(p)
	sx, sy := CellOrigin(cx, cy)
	r.screen.SetContent(sx, sy, left, nil, style)
	r.screen.SetContent(sx+1, sy, right, nil, style)
}

func (r *Renderer) drawBorder(cols, rows int) {
	w, h := BoardSize(cols, rows)
	right := w - 1
	bottom := borderTop + h - 1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, borderTop, '─', nil, r.border)
		r.screen.SetContent(x, bottom, '─', nil, r.border)
	}
	for y := borderTop + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, r.border)
		r.screen.SetContent(right, y, '│', nil, r.border)
	}
	r.screen.SetContent(0, borderTop, '┌', nil, r.border)
	r.screen.SetContent(right, borderTop, '┐', nil, r.border)
	r.screen.SetContent(0, bottom, '└', nil, r.border)
	r.screen.SetContent(right, bottom, '┘', nil, r.border)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
