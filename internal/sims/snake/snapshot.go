package snake

import "gridsnake/internal/core"

// Snapshot is the read-only view handed to renderers after an update.
type Snapshot struct {
	RoundID string
	Tick    int
	Grid    core.Grid

	Head    core.Point
	Heading Heading
	// Body lists the drawable segments, tail first. A segment sharing the
	// head's cell is left out.
	Body []core.Point

	Food       core.Point
	FoodPlaced bool

	Phase Phase
	Score int
}

// Snapshot captures the current state. The returned Body slice is freshly
// allocated and safe to retain.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		RoundID:    w.roundID,
		Tick:       w.ticks,
		Grid:       w.grid,
		Head:       w.head,
		Heading:    w.steering.Heading(),
		Body:       w.body.Visible(w.head, make([]core.Point, 0, w.body.Len())),
		Food:       w.food.Pos,
		FoodPlaced: w.food.Placed,
		Phase:      w.phase,
		Score:      w.body.Len(),
	}
}

// Terminated reports whether the snapshot was taken after a crash.
func (s Snapshot) Terminated() bool { return s.Phase == PhaseTerminated }
