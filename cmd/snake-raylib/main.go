//go:build raylib

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"gridsnake/internal/app"
	"gridsnake/internal/audio"
	"gridsnake/internal/core"
	"gridsnake/internal/sims/snake"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var headingKeys = []struct {
	key     int32
	heading snake.Heading
}{
	{rl.KeyUp, snake.Up},
	{rl.KeyDown, snake.Down},
	{rl.KeyLeft, snake.Left},
	{rl.KeyRight, snake.Right},
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	simCfg, err := cfg.SnakeConfig()
	if err != nil {
		log.Fatal(err)
	}
	world, err := snake.NewWorld(simCfg)
	if err != nil {
		log.Fatal(err)
	}

	sound := audio.NewSoundManager()
	if !*mute {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		}
	}
	defer sound.Cleanup()

	grid := world.Grid()
	rl.InitWindow(int32(grid.Width()), int32(grid.Height()), "gridsnake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TPS))

	log.Printf("snake-raylib %dx%d cell=%d tick=%s round=%s",
		simCfg.Width, simCfg.Height, simCfg.CellSize, simCfg.TickInterval, world.RoundID())

	palette := rlPalette(world.Palette())
	in := snake.Input{Headings: make([]snake.Heading, 0, len(headingKeys))}
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		in.Headings = in.Headings[:0]
		for _, hk := range headingKeys {
			if rl.IsKeyDown(hk.key) {
				in.Headings = append(in.Headings, hk.heading)
			}
		}
		in.Restart = rl.IsKeyPressed(rl.KeySpace)

		delta := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		res := world.Update(delta, in)
		sound.Handle(res)
		if res.Summary != nil {
			log.Printf("round %s over: score=%d ticks=%d", res.Summary.RoundID, res.Summary.Score, res.Summary.Ticks)
		}

		draw(world, palette)
	}
}

func rlPalette(src []color.RGBA) []rl.Color {
	out := make([]rl.Color, len(src))
	for i, c := range src {
		out[i] = rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return out
}

func draw(world *snake.World, palette []rl.Color) {
	grid := world.Grid()
	size := int32(grid.CellSize)

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(palette[snake.CellEmpty])

	for i, v := range world.Cells() {
		if v == snake.CellEmpty {
			continue
		}
		p := grid.At(i%grid.Cols, i/grid.Cols)
		rl.DrawRectangle(int32(p.X)+1, int32(p.Y)+1, size-2, size-2, palette[v])
	}
	drawHeadMarker(world.Head(), world.Heading(), size)

	snap := world.Snapshot()
	rl.DrawText(fmt.Sprintf("Scores: %d", snap.Score), 8, 8, 20, rl.White)
	if snap.Terminated() {
		fontSize := int32(20)
		w := rl.MeasureText(snake.GameOverText, fontSize)
		rl.DrawText(snake.GameOverText, (int32(grid.Width())-w)/2, (int32(grid.Height())-fontSize)/2, fontSize, rl.Red)
	}
}

func drawHeadMarker(head core.Point, h snake.Heading, size int32) {
	x, y := float32(head.X), float32(head.Y)
	s, half := float32(size), float32(size)/2
	var a, b, c rl.Vector2
	switch h {
	case snake.Right:
		a, b, c = rl.Vector2{X: x + s, Y: y + half}, rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x + half, Y: y + s}
	case snake.Left:
		a, b, c = rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + half, Y: y + s}, rl.Vector2{X: x + half, Y: y}
	case snake.Down:
		a, b, c = rl.Vector2{X: x + half, Y: y + s}, rl.Vector2{X: x + s, Y: y + half}, rl.Vector2{X: x, Y: y + half}
	case snake.Up:
		a, b, c = rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + s, Y: y + half}
	default:
		return
	}
	rl.DrawTriangle(a, b, c, rl.Black)
}
