package mines

// Cell is the authoritative record of a single square.
type Cell struct {
	IsFlag      bool
	IsLandMine  bool
	IsRevealed  bool
	MinesAround int
}

// CellView is what observers get to see of a cell. Mine identity and the
// neighbour count stay hidden until the cell is revealed.
type CellView struct {
	IsRevealed  bool `json:"is_revealed"`
	IsFlag      bool `json:"is_flag"`
	IsLandMine  bool `json:"is_land_mine"`
	MinesAround int  `json:"mines_around"`
}

// HiddenCount is reported as MinesAround for cells that are not revealed.
const HiddenCount = -1

func (c Cell) View() CellView {
	if !c.IsRevealed {
		return CellView{IsFlag: c.IsFlag, MinesAround: HiddenCount}
	}
	return CellView{
		IsRevealed:  true,
		IsFlag:      c.IsFlag,
		IsLandMine:  c.IsLandMine,
		MinesAround: c.MinesAround,
	}
}

type point struct {
	row, col int
}

func (p point) add(d point) point {
	return point{p.row + d.row, p.col + d.col}
}
