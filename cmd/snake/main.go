//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridsnake/internal/app"
	"gridsnake/internal/sims/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SnakeConfig()
	if err != nil {
		log.Fatal(err)
	}
	world, err := snake.NewWorld(simCfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("snake %dx%d cell=%d tick=%s seed=%d round=%s",
		simCfg.Width, simCfg.Height, simCfg.CellSize, simCfg.TickInterval, simCfg.Seed, world.RoundID())

	game := app.New(world, cfg.HUD)
	grid := world.Grid()

	ebiten.SetWindowTitle("gridsnake")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(grid.Width()+max(cfg.HUD, 0), grid.Height())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
