package mines

import (
	"slices"
	"time"

	"github.com/sirupsen/logrus"
)

// Pacer is called between the waves of a cascade. It blocks for as long as
// the caller wants the pause to last. A nil Pacer makes the cascade instant.
type Pacer func()

// Delay returns a Pacer sleeping d between waves, or nil when d is not
// positive.
func Delay(d time.Duration) Pacer {
	if d <= 0 {
		return nil
	}
	return func() { time.Sleep(d) }
}

var (
	orthogonal = [...]point{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	diagonal   = [...]point{{1, -1}, {-1, 1}, {-1, -1}, {1, 1}}
)

// Reveal opens (row, col). The first reveal of a game lays out the mines.
// Hidden regions without neighbouring mines open in waves, and pace (if
// any) is called before each wave. Reveal always runs to completion.
//
// Revealing a flagged or already revealed cell, or any cell once the game
// is over, does nothing.
func (g *Game) Reveal(row, col int, pace Pacer) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	if g.state.Terminal() {
		return nil
	}
	if err := g.generate(row, col); err != nil {
		return err
	}

	if !g.open(row, col) {
		return nil
	}

	if g.board[row][col].IsLandMine {
		g.transition(Lose)
		return nil
	}

	if g.board[row][col].MinesAround == 0 {
		g.cascade(point{row, col}, pace)
	}

	if g.safeLeft == 0 {
		g.transition(Win)
	}
	return nil
}

// cascade spreads a reveal out of a zero cell. Each wave opens the
// orthogonal neighbours of the previous wave's zero cells at once and
// stages the diagonal ones, which open a wave later unless something
// opened them first. Every zero cell is expanded once, when it opens.
// Only waves that have something to open are paced and counted; a wave
// that merely stages corners runs straight through.
func (g *Game) cascade(origin point, pace Pacer) {
	var (
		frontier = []point{origin}
		corners  []point
		next     []point
		staged   []point
		waves    int
		opened   int
	)

	openInto := func(p point) {
		if !g.open(p.row, p.col) {
			return
		}
		opened++
		if g.board[p.row][p.col].MinesAround == 0 {
			next = append(next, p)
		}
	}

	for {
		corners = slices.DeleteFunc(corners, g.settled)
		if len(frontier) == 0 && len(corners) == 0 {
			break
		}
		if len(corners) > 0 || g.canSpread(frontier) {
			if pace != nil {
				pace()
			}
			waves++
		}
		next, staged = next[:0], staged[:0]

		for _, p := range corners {
			openInto(p)
		}
		for _, p := range frontier {
			for _, d := range orthogonal {
				if q := p.add(d); g.inBounds(q.row, q.col) {
					openInto(q)
				}
			}
			for _, d := range diagonal {
				q := p.add(d)
				if !g.inBounds(q.row, q.col) {
					continue
				}
				if !g.settled(q) {
					staged = append(staged, q)
				}
			}
		}

		frontier, next = next, frontier
		corners, staged = staged, corners
	}

	Log.WithFields(logrus.Fields{
		"origin": origin,
		"waves":  waves,
		"opened": opened,
	}).Debug("cascade settled")
}

// settled reports whether p is out of a cascade's reach: already revealed
// or flagged.
func (g *Game) settled(p point) bool {
	c := g.board[p.row][p.col]
	return c.IsRevealed || c.IsFlag
}

// canSpread reports whether any frontier cell has an orthogonal neighbour
// left to open.
func (g *Game) canSpread(frontier []point) bool {
	for _, p := range frontier {
		for _, d := range orthogonal {
			if q := p.add(d); g.inBounds(q.row, q.col) && !g.settled(q) {
				return true
			}
		}
	}
	return false
}
