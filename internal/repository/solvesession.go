package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// SolveSession is one recorded playthrough: the board that was solved
// and how the run went.
type SolveSession struct {
	SolveSessionId int64
	PlayerId       *int64
	Width          int
	Height         int
	MineCount      int
	Won            bool
	Dead           bool
	MoveCount      int
	GuessCount     int
	Board          []byte
	StartedAt      pgtype.Timestamptz
	EndedAt        pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type CreateSolveSessionParams struct {
	PlayerId   *int64
	Width      int
	Height     int
	MineCount  int
	Won        bool
	Dead       bool
	MoveCount  int
	GuessCount int
	Board      []byte
	StartedAt  time.Time
	EndedAt    time.Time
}

func (q *Queries) CreateSolveSession(
	ctx context.Context, params CreateSolveSessionParams,
) (*SolveSession, error) {
	args := pgx.NamedArgs{
		"width":       params.Width,
		"height":      params.Height,
		"mine_count":  params.MineCount,
		"won":         params.Won,
		"dead":        params.Dead,
		"move_count":  params.MoveCount,
		"guess_count": params.GuessCount,
		"board":       params.Board,
		"started_at":  params.StartedAt,
		"ended_at":    params.EndedAt,
		"player_id":   nil,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve_session (
			player_id, width, height, mine_count, won, dead,
			move_count, guess_count, board, started_at, ended_at
		)
		VALUES (
			@player_id, @width, @height, @mine_count, @won, @dead,
			@move_count, @guess_count, @board, @started_at, @ended_at
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[SolveSession],
	)
}

func (q *Queries) FetchSolveSession(
	ctx context.Context, solveSessionId int64,
) (*SolveSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM solve_session WHERE solve_session_id = $1",
		solveSessionId,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[SolveSession],
	)
}
