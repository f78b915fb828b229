package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"gridsnake/internal/sims/snake"
)

type paramSet struct {
	width     int
	height    int
	avoidBody bool
}

func (p paramSet) String() string {
	return fmt.Sprintf("board=%dx%d avoidBody=%v", p.width, p.height, p.avoidBody)
}

type scenario struct {
	params paramSet
	seed   int64
}

type scenarioResult struct {
	scenario
	roundID  string
	score    int
	ticks    int
	crashed  bool
	foodless int
}

type summary struct {
	params   paramSet
	runs     int
	crashes  int
	total    int
	best     scenarioResult
	survival int
}

func main() {
	steps := flag.Int("steps", 2000, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 32, "seeds per parameter set")
	baseSeed := flag.Int64("seed", 1, "first seed of the sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if *steps <= 0 || *seeds <= 0 || *workers <= 0 {
		log.Fatal("steps, seeds and workers must be positive")
	}

	boardOptions := []struct{ w, h int }{
		{w: 10, h: 8},
		{w: 20, h: 15},
		{w: 32, h: 24},
	}
	avoidOptions := []bool{false, true}

	var sets []paramSet
	for _, board := range boardOptions {
		for _, avoid := range avoidOptions {
			sets = append(sets, paramSet{width: board.w, height: board.h, avoidBody: avoid})
		}
	}

	fmt.Printf("Sweeping %d parameter sets x %d seeds (%d workers, %d steps)\n", len(sets), *seeds, *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				res, err := runScenario(job, *steps)
				if err != nil {
					log.Printf("scenario %s seed=%d: %v", job.params, job.seed, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			for i := 0; i < *seeds; i++ {
				jobs <- scenario{params: params, seed: *baseSeed + int64(i)}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	byParams := map[paramSet]*summary{}
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		s := byParams[res.params]
		if s == nil {
			s = &summary{params: res.params}
			byParams[res.params] = s
		}
		s.runs++
		s.total += res.score
		if res.crashed {
			s.crashes++
		} else {
			s.survival++
		}
		if res.score > s.best.score || s.runs == 1 {
			s.best = res
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].ticks < all[j].ticks
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 runs (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) score=%d ticks=%d crashed=%v foodless=%d seed=%d round=%s %s\n",
			i+1, res.score, res.ticks, res.crashed, res.foodless, res.seed, res.roundID, res.params)
	}

	summaries := make([]*summary, 0, len(byParams))
	for _, s := range byParams {
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].mean() > summaries[j].mean()
	})

	fmt.Printf("\nPer parameter set:\n")
	for _, s := range summaries {
		fmt.Printf("%s runs=%d mean=%.2f best=%d crashes=%d survived=%d\n",
			s.params, s.runs, s.mean(), s.best.score, s.crashes, s.survival)
	}
}

func (s *summary) mean() float64 {
	if s.runs == 0 {
		return 0
	}
	return float64(s.total) / float64(s.runs)
}

func runScenario(job scenario, steps int) (scenarioResult, error) {
	cfg := snake.DefaultConfig()
	cfg.Width = job.params.width
	cfg.Height = job.params.height
	cfg.FoodAvoidsBody = job.params.avoidBody
	cfg.Seed = job.seed

	world, err := snake.NewWorld(cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	// Place the first food before the autopilot looks at the board.
	world.Update(0, snake.Input{})

	res := scenarioResult{scenario: job, roundID: world.RoundID()}
	for step := 0; step < steps; step++ {
		world.Request(snake.Autopilot(world.Snapshot()))
		out := world.Step()
		if !world.Food().Placed {
			res.foodless++
		}
		if out.Summary != nil {
			res.crashed = true
			break
		}
	}
	res.score = world.Score()
	res.ticks = world.Ticks()
	return res, nil
}
