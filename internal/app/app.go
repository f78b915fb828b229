//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"gridsnake/internal/render"
	"gridsnake/internal/sims/snake"
	"gridsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var headingKeys = []struct {
	key     ebiten.Key
	heading snake.Heading
}{
	{ebiten.KeyArrowUp, snake.Up},
	{ebiten.KeyArrowDown, snake.Down},
	{ebiten.KeyArrowLeft, snake.Left},
	{ebiten.KeyArrowRight, snake.Right},
}

// Game adapts a snake world to the ebiten.Game interface.
type Game struct {
	world   *snake.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	background color.Color

	paused   bool
	tickOnce bool
	input    snake.Input
}

// New constructs a Game for the provided world with a parameter panel of
// hudWidth pixels.
func New(world *snake.World, hudWidth int) *Game {
	size := world.Size()
	return &Game{
		world:      world,
		painter:    render.NewGridPainter(size.W, size.H),
		overlay:    ui.NewOverlay(),
		hud:        ui.NewHUD(world, world.Name(), hudWidth),
		background: color.RGBA{R: 8, G: 8, B: 12, A: 255},
		input:      snake.Input{Headings: make([]snake.Heading, 0, len(headingKeys))},
	}
}

// Update polls the keyboard and advances the world by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	g.overlay.Update()
	g.hud.Update()

	g.input.Headings = g.input.Headings[:0]
	for _, hk := range headingKeys {
		if ebiten.IsKeyPressed(hk.key) {
			g.input.Headings = append(g.input.Headings, hk.heading)
		}
	}
	g.input.Restart = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	var res snake.StepResult
	switch {
	case g.tickOnce:
		for _, h := range g.input.Headings {
			g.world.Request(h)
		}
		res = g.world.Step()
		g.tickOnce = false
	case g.paused:
		return nil
	default:
		res = g.world.Update(frameDelta(), g.input)
	}
	logEvents(g.world, res)
	return nil
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	grid := g.world.Grid()
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), grid.CellSize)
	if g.overlay.ShowGrid() {
		g.painter.DrawGrid(screen, grid.CellSize)
	}
	g.overlay.Draw(screen, g.world.Snapshot(), grid.Width(), grid.Height())
	g.hud.Draw(screen, grid.Width(), grid.Height())
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (N steps)", 8, grid.Height()-20)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.world.Grid()
	return grid.Width() + g.hud.Width(), grid.Height()
}

func frameDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 0
	}
	return time.Second / time.Duration(tps)
}

func logEvents(world *snake.World, res snake.StepResult) {
	if res.Summary != nil {
		log.Printf("round %s over: score=%d ticks=%d crash=(%d,%d)",
			res.Summary.RoundID, res.Summary.Score, res.Summary.Ticks, res.Summary.Crash.X, res.Summary.Crash.Y)
	}
	if res.Restarted {
		log.Printf("round %s started", world.RoundID())
	}
}
