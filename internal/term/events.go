package term

import "github.com/gdamore/tcell/v2"

// PumpEvents forwards screen events to events until the screen is finalised
// or done is closed. It blocks, so callers run it on its own goroutine.
func PumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
