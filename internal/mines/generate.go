package mines

import "github.com/sirupsen/logrus"

// generate lays out the mines around a first reveal at (row, col). It runs
// at most once per game.
func (g *Game) generate(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	if g.Generated() {
		return nil
	}

	/*
	 * Candidates are every cell outside the 3x3 block around the origin,
	 * so the first reveal always opens a zero. Crowded boards fall back
	 * to sparing the origin alone.
	 */
	candidates := make([]int, 0, g.rows*g.cols)
	for r := range g.rows {
		for c := range g.cols {
			if absDiff(row, r) > 1 || absDiff(col, c) > 1 {
				candidates = append(candidates, r*g.cols+c)
			}
		}
	}
	if len(candidates) < g.mineCount {
		candidates = candidates[:0]
		for i := range g.rows * g.cols {
			if i != row*g.cols+col {
				candidates = append(candidates, i)
			}
		}
	}

	mines := make([]bool, g.rows*g.cols)
	k := len(candidates)
	for range g.mineCount {
		i := g.rnd.IntN(k)
		mines[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	g.layMines(mines)
	return nil
}

// layMines installs a mine layout given in row-major order and derives the
// neighbour counts and counters from it.
func (g *Game) layMines(mines []bool) {
	g.minesTotal = 0
	for r := range g.rows {
		for c := range g.cols {
			g.board[r][c].IsLandMine = mines[r*g.cols+c]
			if mines[r*g.cols+c] {
				g.minesTotal++
			}
		}
	}
	for r := range g.rows {
		for c := range g.cols {
			n := 0
			for rr, cc := range g.around(r, c) {
				if g.board[rr][cc].IsLandMine {
					n++
				}
			}
			g.board[r][c].MinesAround = n
		}
	}
	g.minesLeft = g.minesTotal
	g.safeLeft = g.rows*g.cols - g.minesTotal

	Log.WithFields(logrus.Fields{
		"rows":  g.rows,
		"cols":  g.cols,
		"mines": g.minesTotal,
	}).Debug("board generated")
}
