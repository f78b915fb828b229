package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gridsnake/internal/app"
	"gridsnake/internal/audio"
	"gridsnake/internal/core"
	"gridsnake/internal/sims/snake"
	"gridsnake/internal/term"

	"github.com/gdamore/tcell/v2"
)

type session struct {
	world    *snake.World
	screen   tcell.Screen
	renderer *term.Renderer
	sound    *audio.SoundManager
	clock    *core.FrameClock

	input  snake.Input
	paused bool
	best   int
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append logs to this file (the terminal is busy while playing)")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	if *logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	simCfg, err := cfg.SnakeConfig()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	world, err := snake.NewWorld(simCfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager()
	if !*mute {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the game runs silently.
			log.Printf("audio initialization failed: %v", err)
		}
	}

	s := &session{
		world:    world,
		screen:   screen,
		renderer: term.NewRenderer(screen),
		sound:    sound,
		clock:    core.NewFrameClock(),
	}
	log.Printf("snake-term %dx%d tick=%s seed=%d round=%s",
		simCfg.Width, simCfg.Height, simCfg.TickInterval, simCfg.Seed, world.RoundID())

	s.run(frameInterval(cfg.TPS))

	sound.Cleanup()
	screen.Fini()
	fmt.Printf("best score: %d\n", max(s.best, world.Score()))
}

func frameInterval(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

func (s *session) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go term.PumpEvents(s.screen, events, done)

	s.renderer.Draw(s.world.Snapshot(), s.paused)
	for {
		select {
		case ev := <-events:
			if !s.handle(ev) {
				return
			}
		case <-ticker.C:
			s.frame()
		}
	}
}

func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := term.Translate(ev)
		switch cmd.Action {
		case term.ActionQuit:
			return false
		case term.ActionSteer:
			s.input.Headings = append(s.input.Headings, cmd.Heading)
		case term.ActionRestart:
			s.input.Restart = true
		case term.ActionPause:
			s.paused = !s.paused
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *session) frame() {
	delta := s.clock.Delta()
	if !s.paused {
		res := s.world.Update(delta, s.input)
		s.sound.Handle(res)
		if res.Summary != nil {
			s.best = max(s.best, res.Summary.Score)
			log.Printf("round %s over: score=%d ticks=%d", res.Summary.RoundID, res.Summary.Score, res.Summary.Ticks)
		}
		if res.Restarted {
			log.Printf("round %s started", s.world.RoundID())
		}
	}
	s.input.Headings = s.input.Headings[:0]
	s.input.Restart = false
	s.renderer.Draw(s.world.Snapshot(), s.paused)
}
