package snake

// Phase is the round state.
type Phase uint8

const (
	// PhaseActive is a round in progress.
	PhaseActive Phase = iota
	// PhaseTerminated is a round that ended on a self collision. Only a
	// restart leaves it.
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseTerminated:
		return "terminated"
	}
	return "unknown"
}

// GameOverText is shown while a round is terminated.
const GameOverText = "Game over.. Tap space to restart!"
