package snake

import "gridsnake/internal/core"

// HitsBody reports whether the head shares a cell with any body segment.
func HitsBody(head core.Point, body *Body) bool {
	return body.Occupies(head)
}

// EatsFood reports whether the head sits on placed food.
func EatsFood(head core.Point, food *Food) bool {
	return food.Placed && food.Pos == head
}
