package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GameResult struct {
	ResultID  uuid.UUID `db:"result_id" json:"result_id"`
	Width     int       `db:"width" json:"width"`
	Height    int       `db:"height" json:"height"`
	MineCount int       `db:"mine_count" json:"mine_count"`
	Won       bool      `db:"won" json:"won"`
	StartedAt time.Time `db:"started_at" json:"started_at"`
	EndedAt   time.Time `db:"ended_at" json:"ended_at"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

type InsertResultParams struct {
	ResultID  uuid.UUID
	Width     int
	Height    int
	MineCount int
	Won       bool
	StartedAt time.Time
	EndedAt   time.Time
}

func (q *Queries) InsertResult(ctx context.Context, params InsertResultParams) (*GameResult, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_result (
			result_id, width, height, mine_count, won, started_at, ended_at
		)
		VALUES (
			@result_id, @width, @height, @mine_count, @won, @started_at, @ended_at
		)
		RETURNING *;`,
		pgx.NamedArgs{
			"result_id":  params.ResultID,
			"width":      params.Width,
			"height":     params.Height,
			"mine_count": params.MineCount,
			"won":        params.Won,
			"started_at": params.StartedAt,
			"ended_at":   params.EndedAt,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameResult])
}

// ListResults returns the most recently finished games first.
func (q *Queries) ListResults(ctx context.Context, limit int) ([]GameResult, error) {
	rows, err := q.db.Query(
		ctx,
		"SELECT * FROM game_result ORDER BY ended_at DESC LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GameResult])
}
