package term

import (
	"gridsnake/internal/sims/snake"

	"github.com/gdamore/tcell/v2"
)

// Action is what a key press asks the terminal frontend to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionSteer
	ActionRestart
	ActionPause
	ActionQuit
)

// Command is a translated key press.
type Command struct {
	Action  Action
	Heading snake.Heading
}

var arrowHeadings = map[tcell.Key]snake.Heading{
	tcell.KeyUp:    snake.Up,
	tcell.KeyDown:  snake.Down,
	tcell.KeyLeft:  snake.Left,
	tcell.KeyRight: snake.Right,
}

var runeHeadings = map[rune]snake.Heading{
	'w': snake.Up, 'k': snake.Up,
	's': snake.Down, 'j': snake.Down,
	'a': snake.Left, 'h': snake.Left,
	'd': snake.Right, 'l': snake.Right,
}

// Translate maps a key event to a Command. Unbound keys yield ActionNone.
func Translate(ev *tcell.EventKey) Command {
	if ev == nil {
		return Command{}
	}
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyRune:
	default:
		if h, ok := arrowHeadings[ev.Key()]; ok {
			return Command{Action: ActionSteer, Heading: h}
		}
		return Command{}
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	switch r {
	case ' ':
		return Command{Action: ActionRestart}
	case 'q':
		return Command{Action: ActionQuit}
	case 'p':
		return Command{Action: ActionPause}
	}
	if h, ok := runeHeadings[r]; ok {
		return Command{Action: ActionSteer, Heading: h}
	}
	return Command{}
}
