package mines

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// newLaidGame builds a game from a picture of its mines, '*' for a mine and
// anything else for a safe cell. The layout is installed up front so the
// first reveal does not reshuffle it.
func newLaidGame(t *testing.T, picture ...string) *Game {
	t.Helper()
	rows, cols := len(picture), len(picture[0])
	mines := make([]bool, 0, rows*cols)
	count := 0
	for _, line := range picture {
		require.Len(t, line, cols)
		for _, ch := range line {
			mines = append(mines, ch == '*')
			if ch == '*' {
				count++
			}
		}
	}
	g, err := NewGame(rows, cols, count, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	g.layMines(mines)
	return g
}

type cellEvent struct {
	wave, row, col int
	view           CellView
}

// recorder collects every cell notification along with the wave it
// happened in.
type recorder struct {
	wave   int
	events []cellEvent
	states []State
}

func (r *recorder) pace() { r.wave++ }

func (r *recorder) watch(t *testing.T, g *Game) {
	t.Helper()
	for i := range g.Rows() {
		for j := range g.Cols() {
			require.NoError(t, g.SetCellListener(i, j, func(v CellView) {
				r.events = append(r.events, cellEvent{r.wave, i, j, v})
			}))
		}
	}
	g.AddStateListener(func(s State) { r.states = append(r.states, s) })
}

func (r *recorder) waves() [][]point {
	var out [][]point
	for _, e := range r.events {
		for len(out) <= e.wave {
			out = append(out, nil)
		}
		out[e.wave] = append(out[e.wave], point{e.row, e.col})
	}
	return out
}

func render(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
