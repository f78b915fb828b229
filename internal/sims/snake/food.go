package snake

import "gridsnake/internal/core"

// Food is the single food slot on the board.
type Food struct {
	Pos    core.Point
	Placed bool
}

// FoodSpawner places food on a random cell.
type FoodSpawner struct {
	grid      core.Grid
	rng       *core.RNG
	avoidBody bool

	blocked []bool
	free    []core.Point
	bodyPos []core.Point
}

// NewFoodSpawner constructs a spawner drawing cells from rng. When avoidBody
// is set, food is never placed under a body segment.
func NewFoodSpawner(grid core.Grid, rng *core.RNG, avoidBody bool) *FoodSpawner {
	return &FoodSpawner{grid: grid, rng: rng, avoidBody: avoidBody}
}

// Ensure places food when the slot is empty and reports whether it did.
//
// The default rule only keeps food off the head cell; a sample landing on the
// head is re-rolled. Food may end up under the body.
func (s *FoodSpawner) Ensure(food *Food, head core.Point, body *Body) bool {
	if food.Placed {
		return false
	}
	if s.avoidBody {
		return s.placeFree(food, head, body)
	}
	// A single-cell board has nowhere to go but the head.
	if s.grid.Cells() <= 1 {
		return false
	}
	for {
		p := s.grid.At(s.rng.IntN(s.grid.Cols), s.rng.IntN(s.grid.Rows))
		if p != head {
			food.Pos = p
			food.Placed = true
			return true
		}
	}
}

func (s *FoodSpawner) placeFree(food *Food, head core.Point, body *Body) bool {
	total := s.grid.Cells()
	if len(s.blocked) != total {
		s.blocked = make([]bool, total)
	}
	for i := range s.blocked {
		s.blocked[i] = false
	}
	s.blocked[s.grid.Index(head)] = true
	s.bodyPos = body.Positions(s.bodyPos[:0])
	for _, p := range s.bodyPos {
		s.blocked[s.grid.Index(p)] = true
	}

	s.free = s.free[:0]
	for cy := 0; cy < s.grid.Rows; cy++ {
		for cx := 0; cx < s.grid.Cols; cx++ {
			if !s.blocked[cy*s.grid.Cols+cx] {
				s.free = append(s.free, s.grid.At(cx, cy))
			}
		}
	}
	if len(s.free) == 0 {
		return false
	}
	food.Pos = s.free[s.rng.IntN(len(s.free))]
	food.Placed = true
	return true
}
