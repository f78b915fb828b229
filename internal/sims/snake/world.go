package snake

import (
	"fmt"
	"time"

	"gridsnake/internal/core"

	"github.com/google/uuid"
)

// Origin is the cell every round starts from.
var Origin = core.Point{}

// Input carries the requests collected by a frontend during one frame.
type Input struct {
	Headings []Heading
	Restart  bool
}

// RoundSummary describes a finished round.
type RoundSummary struct {
	RoundID string
	Score   int
	Ticks   int
	Crash   core.Point
}

// StepResult reports what happened during one Update or Step call.
type StepResult struct {
	Ticked     bool
	Ate        bool
	Crashed    bool
	Restarted  bool
	FoodPlaced bool

	// Summary is set on the frame the round terminates.
	Summary *RoundSummary
}

// World owns the complete simulation state of one snake game.
type World struct {
	cfg  Config
	grid core.Grid

	rng      *core.RNG
	clock    *core.TickTimer
	steering Steering
	spawner  *FoodSpawner

	head     core.Point
	prevHead core.Point
	body     Body
	food     Food
	phase    Phase

	ticks   int
	roundID string

	display []uint8
	scratch []core.Point
}

// NewWorld validates cfg and returns a world with a fresh round.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	grid := cfg.Grid()
	rng := core.NewRNG(cfg.Seed)
	w := &World{
		cfg:     cfg,
		grid:    grid,
		rng:     rng,
		clock:   core.NewTickTimer(cfg.TickInterval),
		spawner: NewFoodSpawner(grid, rng, cfg.FoodAvoidsBody),
		display: make([]uint8, grid.Cells()),
	}
	w.newRound()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "snake" }

// Size returns the board dimensions in cells.
func (w *World) Size() core.Size { return w.grid.Size() }

// Grid returns the board geometry.
func (w *World) Grid() core.Grid { return w.grid }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Head returns the head position.
func (w *World) Head() core.Point { return w.head }

// PrevHead returns the head position before the latest move.
func (w *World) PrevHead() core.Point { return w.prevHead }

// Heading returns the committed heading.
func (w *World) Heading() Heading { return w.steering.Heading() }

// Body exposes the body chain for read access.
func (w *World) Body() *Body { return &w.body }

// Food returns the food slot.
func (w *World) Food() Food { return w.food }

// Phase returns the round phase.
func (w *World) Phase() Phase { return w.phase }

// Score is the number of segments grown this round.
func (w *World) Score() int { return w.body.Len() }

// Ticks returns the number of ticks simulated this round.
func (w *World) Ticks() int { return w.ticks }

// RoundID identifies the current round.
func (w *World) RoundID() string { return w.roundID }

// Reset reseeds the world and starts a new round regardless of phase. A zero
// seed reuses the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Seed(seed)
	w.newRound()
}

// Restart starts a new round after a termination. It reports false and does
// nothing while the round is still active.
func (w *World) Restart() bool {
	if w.phase != PhaseTerminated {
		return false
	}
	w.newRound()
	return true
}

// Request submits a heading change for the current tick.
func (w *World) Request(h Heading) bool {
	if w.phase != PhaseActive {
		return false
	}
	return w.steering.Request(h, w.body.Len())
}

// Update advances the world by one frame lasting delta.
func (w *World) Update(delta time.Duration, in Input) StepResult {
	var res StepResult
	if w.phase == PhaseTerminated {
		if in.Restart && w.Restart() {
			res.Restarted = true
		}
		return res
	}

	for _, h := range in.Headings {
		w.Request(h)
	}
	if w.clock.Advance(delta) {
		w.tick(&res)
	}
	if w.phase == PhaseActive {
		res.FoodPlaced = w.spawner.Ensure(&w.food, w.head, &w.body)
	}
	return res
}

// Step runs exactly one tick without consulting the clock.
func (w *World) Step() StepResult {
	var res StepResult
	if w.phase != PhaseActive {
		return res
	}
	w.tick(&res)
	if w.phase == PhaseActive {
		res.FoodPlaced = w.spawner.Ensure(&w.food, w.head, &w.body)
	}
	return res
}

// tick runs the per-tick pipeline. The order of the stages is observable:
// propagation must see the pre-move head and the body check must see the
// propagated chain before food can add a segment under the head.
func (w *World) tick(res *StepResult) {
	w.prevHead = w.head
	w.head = w.grid.Wrap(w.head.Add(w.steering.Heading().Step(w.grid.CellSize)))
	w.body.Propagate(w.prevHead)
	w.ticks++
	res.Ticked = true

	if HitsBody(w.head, &w.body) {
		w.phase = PhaseTerminated
		res.Crashed = true
	}
	if EatsFood(w.head, &w.food) {
		w.food.Placed = false
		w.body.Grow(w.head)
		res.Ate = true
	}
	if res.Crashed {
		res.Summary = &RoundSummary{
			RoundID: w.roundID,
			Score:   w.body.Len(),
			Ticks:   w.ticks,
			Crash:   w.head,
		}
	}

	w.steering.Unlock()
}

func (w *World) newRound() {
	w.head = Origin
	w.prevHead = Origin
	w.steering.Reset(DefaultHeading)
	w.body.Clear()
	w.clock.Reset()
	w.food = Food{}
	w.phase = PhaseActive
	w.ticks = 0
	w.roundID = uuid.NewString()
}
