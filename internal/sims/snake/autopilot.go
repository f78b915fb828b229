package snake

import "gridsnake/internal/core"

// Autopilot picks a heading for s that moves towards the food without
// stepping onto the body. It never proposes a reversal. When every option is
// blocked it keeps the current heading.
func Autopilot(s Snapshot) Heading {
	occupied := make(map[core.Point]struct{}, len(s.Body))
	for _, p := range s.Body {
		occupied[p] = struct{}{}
	}

	best := s.Heading
	bestDist := -1
	for _, h := range candidates(s.Heading) {
		next := s.Grid.Wrap(s.Head.Add(h.Step(s.Grid.CellSize)))
		if _, hit := occupied[next]; hit {
			continue
		}
		d := 0
		if s.FoodPlaced {
			d = torusDistance(s.Grid, next, s.Food)
		}
		if bestDist < 0 || d < bestDist {
			best = h
			bestDist = d
		}
	}
	return best
}

// candidates lists the current heading first so ties keep going straight.
func candidates(h Heading) []Heading {
	switch h {
	case Up, Down:
		return []Heading{h, Left, Right}
	default:
		return []Heading{h, Up, Down}
	}
}

func torusDistance(g core.Grid, a, b core.Point) int {
	ax, ay := g.Cell(a)
	bx, by := g.Cell(b)
	return wrapAxis(ax-bx, g.Cols) + wrapAxis(ay-by, g.Rows)
}

func wrapAxis(d, n int) int {
	if d < 0 {
		d = -d
	}
	if n-d < d {
		return n - d
	}
	return d
}
