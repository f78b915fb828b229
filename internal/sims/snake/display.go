package snake

import "image/color"

// Display values written into the Cells buffer.
const (
	CellEmpty uint8 = iota
	CellBody
	CellFood
	CellHead
)

var snakePalette = []color.RGBA{
	CellEmpty: {R: 0, G: 0, B: 0, A: 255},
	CellBody:  {R: 70, G: 160, B: 80, A: 255},
	CellFood:  {R: 220, G: 40, B: 40, A: 255},
	CellHead:  {R: 240, G: 220, B: 90, A: 255},
}

// Palette exposes the color palette used for rendering the board.
func (w *World) Palette() []color.RGBA {
	return snakePalette
}

// Cells rebuilds and returns the per-cell display buffer in row-major order.
// The head is painted last, so a segment under it is never visible.
func (w *World) Cells() []uint8 {
	for i := range w.display {
		w.display[i] = CellEmpty
	}
	if w.food.Placed {
		w.display[w.grid.Index(w.food.Pos)] = CellFood
	}
	w.scratch = w.body.Visible(w.head, w.scratch[:0])
	for _, p := range w.scratch {
		w.display[w.grid.Index(p)] = CellBody
	}
	w.display[w.grid.Index(w.head)] = CellHead
	return w.display
}
