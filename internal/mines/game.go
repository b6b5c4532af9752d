package mines

import "math/rand/v2"

// Game owns the board of a single round and every counter derived from it.
// A Game is not safe for concurrent use: callers serialise access to it.
type Game struct {
	rows, cols int
	mineCount  int

	state State

	// safeLeft is -1 until the board is generated.
	safeLeft   int
	minesLeft  int
	minesTotal int

	board     [][]Cell
	observers registry
	rnd       *rand.Rand
}

// NewGame prepares a rows x cols board holding mineCount mines. Mines are
// placed on the first reveal so that it never hits one. A nil r gets a
// freshly seeded source.
func NewGame(rows, cols, mineCount int, r *rand.Rand) (*Game, error) {
	if rows <= 0 || cols <= 0 {
		return nil, invalidArgument("board size must be positive, got %dx%d", rows, cols)
	}
	if mineCount <= 0 {
		return nil, invalidArgument("mine count must be positive, got %d", mineCount)
	}
	if mineCount >= rows*cols {
		return nil, invalidArgument(
			"mine count %d leaves no safe cell on a %dx%d board", mineCount, rows, cols,
		)
	}
	if r == nil {
		r = newRand()
	}

	board := make([][]Cell, rows)
	for i := range board {
		board[i] = make([]Cell, cols)
	}

	g := &Game{
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
		state:     Playing,
		safeLeft:  -1,
		minesLeft: -1,
		board:     board,
		observers: newRegistry(rows, cols),
		rnd:       r,
	}
	return g, nil
}

func (g *Game) Rows() int    { return g.rows }
func (g *Game) Cols() int    { return g.cols }
func (g *Game) State() State { return g.state }

// MineCount is the number of mines requested at construction.
func (g *Game) MineCount() int { return g.mineCount }

// Generated reports whether mines have been laid out yet.
func (g *Game) Generated() bool { return g.safeLeft != -1 }

// SafeLeft is the number of safe cells still hidden, or -1 before the board
// is generated.
func (g *Game) SafeLeft() int { return g.safeLeft }

func (g *Game) MinesTotal() int { return g.minesTotal }

func (g *Game) MinesLeft() int { return g.minesLeft }

// Flags counts the flags currently placed.
func (g *Game) Flags() int {
	n := 0
	for _, row := range g.board {
		for _, c := range row {
			if c.IsFlag {
				n++
			}
		}
	}
	return n
}

func (g *Game) inBounds(row, col int) bool {
	return 0 <= row && row < g.rows && 0 <= col && col < g.cols
}

func (g *Game) validate(row, col int) error {
	if !g.inBounds(row, col) {
		return invalidArgument(
			"cell (%d, %d) is outside the %dx%d board", row, col, g.rows, g.cols,
		)
	}
	return nil
}

// Cell returns the masked view of a single cell.
func (g *Game) Cell(row, col int) (CellView, error) {
	if err := g.validate(row, col); err != nil {
		return CellView{}, err
	}
	return g.board[row][col].View(), nil
}

// Snapshot returns the masked view of the whole board, row by row.
func (g *Game) Snapshot() [][]CellView {
	views := make([][]CellView, g.rows)
	for i, row := range g.board {
		views[i] = make([]CellView, g.cols)
		for j, c := range row {
			views[i][j] = c.View()
		}
	}
	return views
}

// ToggleFlag flips the flag on a hidden cell. Revealed cells keep their
// state. Flags never touch the counters or the game state.
func (g *Game) ToggleFlag(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	c := &g.board[row][col]
	if c.IsRevealed {
		return nil
	}
	c.IsFlag = !c.IsFlag
	g.notifyCell(row, col)
	return nil
}

// open marks a hidden, unflagged cell as revealed and reports whether it
// did so.
func (g *Game) open(row, col int) bool {
	c := &g.board[row][col]
	if c.IsRevealed || c.IsFlag {
		return false
	}
	c.IsRevealed = true
	if !c.IsLandMine {
		g.safeLeft--
	}
	g.notifyCell(row, col)
	return true
}

func (g *Game) notifyCell(row, col int) {
	g.observers.notifyCell(row, col, g.board[row][col].View())
}
