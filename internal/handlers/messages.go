package handlers

import (
	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type helloMessage struct {
	Type      string    `json:"type"`
	SessionID uuid.UUID `json:"session_id"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	MineCount int       `json:"mine_count"`
}

type cellMessage struct {
	Type string         `json:"type"`
	Row  int            `json:"row"`
	Col  int            `json:"col"`
	Cell mines.CellView `json:"cell"`
}

type stateMessage struct {
	Type  string      `json:"type"`
	State mines.State `json:"state"`
}

type snapshotMessage struct {
	Type     string             `json:"type"`
	State    mines.State        `json:"state"`
	SafeLeft int                `json:"safe_left"`
	Flags    int                `json:"flags"`
	Board    [][]mines.CellView `json:"board"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
