package snake

import (
	"testing"

	"gridsnake/internal/core"
)

func TestFoodNeverSpawnsOnHead(t *testing.T) {
	grid := core.NewGrid(2, 1, 1)
	spawner := NewFoodSpawner(grid, core.NewRNG(1), false)
	var body Body
	head := core.Point{}

	for i := 0; i < 100; i++ {
		var food Food
		if !spawner.Ensure(&food, head, &body) {
			t.Fatal("expected food to be placed")
		}
		if food.Pos == head {
			t.Fatalf("food placed on head at iteration %d", i)
		}
	}
}

func TestFoodEnsureKeepsPlacedFood(t *testing.T) {
	grid := core.NewGrid(10, 10, 32)
	spawner := NewFoodSpawner(grid, core.NewRNG(1), false)
	var body Body
	food := Food{Pos: core.Point{X: 64, Y: 64}, Placed: true}

	if spawner.Ensure(&food, core.Point{}, &body) {
		t.Fatal("ensure must not move placed food")
	}
	if food.Pos != (core.Point{X: 64, Y: 64}) {
		t.Fatalf("food moved to %v", food.Pos)
	}
}

func TestFoodSamplesAlignToCells(t *testing.T) {
	grid := core.NewGrid(20, 15, 32)
	spawner := NewFoodSpawner(grid, core.NewRNG(9), false)
	var body Body
	for i := 0; i < 200; i++ {
		var food Food
		spawner.Ensure(&food, core.Point{}, &body)
		if !grid.Contains(food.Pos) || food.Pos.X%32 != 0 || food.Pos.Y%32 != 0 {
			t.Fatalf("food at %v is not a board cell", food.Pos)
		}
	}
}

func TestFoodMayLandUnderBodyByDefault(t *testing.T) {
	grid := core.NewGrid(2, 1, 1)
	spawner := NewFoodSpawner(grid, core.NewRNG(1), false)
	var body Body
	body.Grow(core.Point{X: 1})

	var food Food
	spawner.Ensure(&food, core.Point{}, &body)
	if food.Pos != (core.Point{X: 1}) {
		t.Fatalf("food at %v, expected the only non-head cell", food.Pos)
	}
}

func TestFoodAvoidsBodyWhenConfigured(t *testing.T) {
	grid := core.NewGrid(3, 1, 1)
	spawner := NewFoodSpawner(grid, core.NewRNG(1), true)
	var body Body
	body.Grow(core.Point{X: 1})

	for i := 0; i < 20; i++ {
		var food Food
		if !spawner.Ensure(&food, core.Point{}, &body) {
			t.Fatal("expected a free cell")
		}
		if food.Pos != (core.Point{X: 2}) {
			t.Fatalf("food at %v, expected (2,0)", food.Pos)
		}
	}

	body.Grow(core.Point{X: 2})
	var food Food
	if spawner.Ensure(&food, core.Point{}, &body) || food.Placed {
		t.Fatal("full board must leave food absent")
	}
}

func TestFoodSingleCellBoard(t *testing.T) {
	spawner := NewFoodSpawner(core.NewGrid(1, 1, 1), core.NewRNG(1), false)
	var body Body
	var food Food
	if spawner.Ensure(&food, core.Point{}, &body) {
		t.Fatal("a 1x1 board has no legal food cell")
	}
}
