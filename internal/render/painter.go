//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads a palette-indexed cell buffer into a single image and
// draws it scaled to the cell size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	lineColor color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{
		w:         w,
		h:         h,
		buf:       make([]byte, 4*w*h),
		lineColor: color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGrid strokes the cell boundaries over the board.
func (gp *GridPainter) DrawGrid(dst *ebiten.Image, scale int) {
	xs, ys := gridLines(gp.w, gp.h, scale)
	width := float32(gp.w * scale)
	height := float32(gp.h * scale)
	for _, x := range xs {
		vector.StrokeLine(dst, x, 0, x, height, 1, gp.lineColor, false)
	}
	for _, y := range ys {
		vector.StrokeLine(dst, 0, y, width, y, 1, gp.lineColor, false)
	}
}
