package mines

import "fmt"

type State int8

const (
	Playing State = iota
	Win
	Lose
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return fmt.Sprintf("State(%d)", int8(s))
	}
}

// Terminal reports whether no further transitions are accepted.
func (s State) Terminal() bool {
	return s == Win || s == Lose
}

// [State] implements [encoding.TextMarshaler]
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// transition moves a playing game into a terminal state and announces it.
// Calls made once the game is over are ignored.
func (g *Game) transition(to State) {
	if g.state.Terminal() || !to.Terminal() {
		return
	}
	g.state = to
	Log.WithField("state", to).Debug("game over")
	g.observers.notifyState(to)
}
