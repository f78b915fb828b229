package snake

import (
	"errors"
	"slices"
	"testing"
	"time"

	"gridsnake/internal/core"
)

func newTestWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func unitConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.CellSize = 1
	return cfg
}

// parkFood pins the food somewhere the test path never reaches.
func parkFood(w *World, p core.Point) {
	w.food = Food{Pos: p, Placed: true}
}

func TestPropagationUsesPreMoveHead(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	w.head = core.Point{X: 96, Y: 64}
	w.body.Grow(core.Point{X: 64, Y: 64})
	parkFood(w, core.Point{X: 608, Y: 448})

	w.Step()

	if w.Head() != (core.Point{X: 128, Y: 64}) {
		t.Fatalf("head = %v, want (128,64)", w.Head())
	}
	if got := w.Body().At(0).Pos; got != (core.Point{X: 96, Y: 64}) {
		t.Fatalf("segment = %v, want (96,64)", got)
	}
	if w.PrevHead() != (core.Point{X: 96, Y: 64}) {
		t.Fatalf("prev head = %v", w.PrevHead())
	}
}

func TestHeadStaysOnBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 7
	cfg.Height = 5
	w := newTestWorld(t, cfg)
	rng := core.NewRNG(11)
	headings := []Heading{Up, Down, Left, Right}

	for i := 0; i < 2000; i++ {
		if w.Phase() == PhaseTerminated {
			if !w.Restart() {
				t.Fatal("restart refused after termination")
			}
		}
		w.Request(headings[rng.IntN(len(headings))])
		w.Step()
		if !w.Grid().Contains(w.Head()) {
			t.Fatalf("tick %d: head %v left the board", i, w.Head())
		}
	}
}

func TestWrapAroundEachEdge(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	parkFood(w, core.Point{X: 320, Y: 224})

	w.Request(Left)
	w.Step()
	if w.Head() != (core.Point{X: 608, Y: 0}) {
		t.Fatalf("left exit landed at %v", w.Head())
	}
	w.Request(Up)
	w.Step()
	if w.Head() != (core.Point{X: 608, Y: 448}) {
		t.Fatalf("top exit landed at %v", w.Head())
	}
	w.Request(Right)
	w.Step()
	if w.Head() != (core.Point{X: 0, Y: 448}) {
		t.Fatalf("right exit landed at %v", w.Head())
	}
	w.Request(Down)
	w.Step()
	if w.Head() != (core.Point{X: 0, Y: 0}) {
		t.Fatalf("bottom exit landed at %v", w.Head())
	}
}

func TestGrowthCountsFoodEaten(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	const meals = 12

	for i := 0; i < meals; i++ {
		next := w.Grid().Wrap(w.Head().Add(w.Heading().Step(w.Grid().CellSize)))
		parkFood(w, next)
		res := w.Step()
		if !res.Ate {
			t.Fatalf("meal %d not eaten", i)
		}
		if res.Crashed {
			t.Fatalf("unexpected crash on meal %d", i)
		}
	}
	if w.Body().Len() != meals || w.Score() != meals {
		t.Fatalf("body length %d, score %d, want %d", w.Body().Len(), w.Score(), meals)
	}
}

func TestFreshSegmentUnderHeadIsNotACollision(t *testing.T) {
	w := newTestWorld(t, unitConfig(10, 10))
	parkFood(w, core.Point{X: 1})

	res := w.Step()
	if !res.Ate || res.Crashed {
		t.Fatalf("ate=%v crashed=%v", res.Ate, res.Crashed)
	}
	parkFood(w, core.Point{X: 9, Y: 9})
	res = w.Step()
	if res.Crashed || w.Phase() != PhaseActive {
		t.Fatal("segment grown under the head must not end the round")
	}
	if got := w.Body().At(0).Pos; got != (core.Point{X: 1}) {
		t.Fatalf("grown segment at %v, want (1,0)", got)
	}
}

// loopIntoBody grows four segments along row 0 and then turns back into them.
func loopIntoBody(t *testing.T, w *World) []StepResult {
	t.Helper()
	for i := 0; i < 4; i++ {
		parkFood(w, core.Point{X: w.Head().X + 1})
		w.Step()
	}
	var results []StepResult
	for _, h := range []Heading{Down, Left, Up} {
		parkFood(w, core.Point{X: 9, Y: 9})
		if !w.Request(h) {
			t.Fatalf("turn %v refused", h)
		}
		results = append(results, w.Step())
	}
	return results
}

func TestSelfCollisionTerminatesRound(t *testing.T) {
	w := newTestWorld(t, unitConfig(10, 10))
	results := loopIntoBody(t, w)

	if results[0].Crashed || results[1].Crashed {
		t.Fatal("crashed before re-entering the body")
	}
	last := results[2]
	if !last.Crashed || w.Phase() != PhaseTerminated {
		t.Fatalf("expected termination, phase=%v", w.Phase())
	}
	if last.Summary == nil {
		t.Fatal("expected a round summary")
	}
	if last.Summary.Score != 4 || last.Summary.Ticks != 7 || last.Summary.RoundID != w.RoundID() {
		t.Fatalf("unexpected summary %+v", *last.Summary)
	}
	if last.Summary.Crash != (core.Point{X: 3, Y: 0}) {
		t.Fatalf("crash at %v", last.Summary.Crash)
	}

	frozenHead := w.Head()
	frozenBody := w.Body().Positions(nil)
	for i := 0; i < 5; i++ {
		res := w.Update(time.Second, Input{Headings: []Heading{Down, Right}})
		if res.Ticked {
			t.Fatal("terminated world must not tick")
		}
		w.Step()
	}
	if w.Head() != frozenHead || !slices.Equal(frozenBody, w.Body().Positions(nil)) {
		t.Fatal("positions changed after termination")
	}
	if w.Heading() != Up {
		t.Fatalf("heading changed after termination: %v", w.Heading())
	}
}

func TestRestartResetsRound(t *testing.T) {
	w := newTestWorld(t, unitConfig(10, 10))
	oldRound := w.RoundID()

	if w.Restart() {
		t.Fatal("restart must be refused while active")
	}
	if res := w.Update(0, Input{Restart: true}); res.Restarted {
		t.Fatal("restart input ignored while active")
	}

	loopIntoBody(t, w)
	if w.Phase() != PhaseTerminated {
		t.Fatal("setup did not terminate the round")
	}

	res := w.Update(0, Input{Restart: true})
	if !res.Restarted {
		t.Fatal("expected restart")
	}
	if w.Phase() != PhaseActive || w.Head() != Origin || w.Body().Len() != 0 {
		t.Fatalf("phase=%v head=%v body=%d", w.Phase(), w.Head(), w.Body().Len())
	}
	if w.Heading() != DefaultHeading || w.Ticks() != 0 || w.Food().Placed {
		t.Fatalf("heading=%v ticks=%d food=%v", w.Heading(), w.Ticks(), w.Food().Placed)
	}
	if w.RoundID() == oldRound {
		t.Fatal("restart should start a new round id")
	}
}

func TestUpdateGatesTicksOnClock(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())

	res := w.Update(50*time.Millisecond, Input{})
	if res.Ticked {
		t.Fatal("ticked before the interval elapsed")
	}
	if !res.FoodPlaced || !w.Food().Placed {
		t.Fatal("food should be placed on the first active frame")
	}
	if w.Food().Pos == w.Head() {
		t.Fatal("food placed on the head")
	}

	res = w.Update(50*time.Millisecond, Input{})
	if !res.Ticked {
		t.Fatal("expected a tick after 100ms")
	}
	res = w.Update(5*time.Second, Input{})
	if !res.Ticked || w.Ticks() != 2 {
		t.Fatalf("long frame should collapse to one tick, ticks=%d", w.Ticks())
	}
}

func TestUpdateAppliesOneHeadingChangePerTick(t *testing.T) {
	cfg := DefaultConfig()
	w := newTestWorld(t, cfg)
	parkFood(w, core.Point{X: 608, Y: 448})

	w.Update(10*time.Millisecond, Input{Headings: []Heading{Down, Left, Up}})
	if w.Heading() != Down {
		t.Fatalf("heading = %v, want the first accepted request", w.Heading())
	}
	w.Update(10*time.Millisecond, Input{Headings: []Heading{Left}})
	if w.Heading() != Down {
		t.Fatal("lockout must hold until the tick completes")
	}

	w.Update(cfg.TickInterval, Input{})
	if w.Head() != (core.Point{X: 0, Y: 32}) {
		t.Fatalf("head = %v after moving down", w.Head())
	}
	w.Update(0, Input{Headings: []Heading{Left}})
	if w.Heading() != Left {
		t.Fatal("lockout should clear after the tick")
	}
}

func TestReversalAllowedOnlyWithoutBody(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	if !w.Request(Left) {
		t.Fatal("a bodiless snake may reverse")
	}
	w.Step()

	w.body.Grow(w.Head())
	if w.Request(Right) {
		t.Fatal("reversal into the body must be rejected")
	}
}

func TestDeterministicAcrossWorlds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 4242
	a := newTestWorld(t, cfg)
	b := newTestWorld(t, cfg)

	script := map[int]Heading{3: Down, 9: Left, 17: Up, 25: Right, 40: Down}
	for i := 0; i < 60; i++ {
		in := Input{}
		if h, ok := script[i]; ok {
			in.Headings = []Heading{h}
		}
		a.Update(25*time.Millisecond, in)
		b.Update(25*time.Millisecond, in)
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Head != sb.Head || sa.Food != sb.Food || sa.Score != sb.Score || sa.Tick != sb.Tick {
		t.Fatalf("snapshots diverged: %+v vs %+v", sa, sb)
	}
	if !slices.Equal(sa.Body, sb.Body) {
		t.Fatal("bodies diverged")
	}
}

func TestResetReseeds(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	w.Update(0, Input{})
	first := w.Food().Pos

	w.Step()
	w.Reset(0)
	if w.Food().Placed {
		t.Fatal("reset must clear food")
	}
	w.Update(0, Input{})
	if w.Food().Pos != first {
		t.Fatalf("reset with config seed placed food at %v, want %v", w.Food().Pos, first)
	}
}

func TestSnapshotAndCellsHideSegmentUnderHead(t *testing.T) {
	w := newTestWorld(t, unitConfig(4, 4))
	w.head = core.Point{X: 2, Y: 1}
	w.body.Grow(core.Point{X: 1, Y: 1})
	w.body.Grow(w.head)
	parkFood(w, core.Point{X: 3, Y: 3})

	snap := w.Snapshot()
	if snap.Score != 2 {
		t.Fatalf("score = %d, want 2", snap.Score)
	}
	if len(snap.Body) != 1 || snap.Body[0] != (core.Point{X: 1, Y: 1}) {
		t.Fatalf("visible body = %v", snap.Body)
	}

	cells := w.Cells()
	grid := w.Grid()
	if cells[grid.Index(w.head)] != CellHead {
		t.Fatal("head cell not painted as head")
	}
	if cells[grid.Index(core.Point{X: 1, Y: 1})] != CellBody {
		t.Fatal("body cell missing")
	}
	if cells[grid.Index(core.Point{X: 3, Y: 3})] != CellFood {
		t.Fatal("food cell missing")
	}
	if len(w.Palette()) <= int(CellHead) {
		t.Fatal("palette does not cover every display value")
	}
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 0
	if _, err := NewWorld(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
