package core

// Point is a board coordinate in world units.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Grid describes a toroidal board of Cols x Rows cells, each CellSize world
// units wide. Positions on the board are always multiples of CellSize.
type Grid struct {
	Cols, Rows int
	CellSize   int
}

// NewGrid returns a grid with the given dimensions. Non-positive values are
// clamped to 1.
func NewGrid(cols, rows, cellSize int) Grid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return Grid{Cols: cols, Rows: rows, CellSize: cellSize}
}

// Width is the horizontal extent of the board in world units.
func (g Grid) Width() int { return g.Cols * g.CellSize }

// Height is the vertical extent of the board in world units.
func (g Grid) Height() int { return g.Rows * g.CellSize }

// Size reports the board dimensions in cells.
func (g Grid) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// Cells returns the number of cells on the board.
func (g Grid) Cells() int { return g.Cols * g.Rows }

// Contains reports whether p lies inside the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width() && p.Y >= 0 && p.Y < g.Height()
}

// Cell converts a world position into cell indices.
func (g Grid) Cell(p Point) (int, int) { return p.X / g.CellSize, p.Y / g.CellSize }

// At converts cell indices into a world position.
func (g Grid) At(cx, cy int) Point { return Point{X: cx * g.CellSize, Y: cy * g.CellSize} }

// Index returns the row-major cell index for p.
func (g Grid) Index(p Point) int {
	cx, cy := g.Cell(p)
	return cy*g.Cols + cx
}

// Wrap applies toroidal correction independently per axis. A coordinate at or
// past the far edge restarts at 0; a negative one moves to the last cell.
func (g Grid) Wrap(p Point) Point {
	if p.X >= g.Width() {
		p.X = 0
	}
	if p.X < 0 {
		p.X = g.Width() - g.CellSize
	}
	if p.Y >= g.Height() {
		p.Y = 0
	}
	if p.Y < 0 {
		p.Y = g.Height() - g.CellSize
	}
	return p
}
