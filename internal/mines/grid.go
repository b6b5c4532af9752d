package mines

import (
	"strconv"
	"strings"
)

// Symbol is the single-character form of a cell as a player sees it.
func (v CellView) Symbol() string {
	switch {
	case !v.IsRevealed && v.IsFlag:
		return "F"
	case !v.IsRevealed:
		return "."
	case v.IsLandMine:
		return "*"
	default:
		return strconv.Itoa(v.MinesAround)
	}
}

// String renders the player's view of the board, one row per line.
func (g *Game) String() string {
	var b strings.Builder
	for _, row := range g.board {
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.View().Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
