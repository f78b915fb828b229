package snake

import "gridsnake/internal/core"

// Heading is the actor's direction of travel.
type Heading uint8

const (
	Up Heading = iota + 1
	Down
	Left
	Right
)

// DefaultHeading is the heading a new round starts with.
const DefaultHeading = Right

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool { return h >= Up && h <= Right }

// Opposite returns the reverse of h.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return h
}

// Delta returns the unit step for h. Up points towards smaller y.
func (h Heading) Delta() core.Point {
	switch h {
	case Up:
		return core.Point{Y: -1}
	case Down:
		return core.Point{Y: 1}
	case Left:
		return core.Point{X: -1}
	case Right:
		return core.Point{X: 1}
	}
	return core.Point{}
}

// Step scales the unit step of h by the cell size.
func (h Heading) Step(cellSize int) core.Point {
	d := h.Delta()
	return core.Point{X: d.X * cellSize, Y: d.Y * cellSize}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
