// custom query
package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vancomm/minesweeper-solver/internal/mines"
)

type Highscore struct {
	SolveSessionId int64   `json:"solve_session_id"`
	Username       *string `json:"username"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	MineCount      int     `json:"mine_count"`
	MoveCount      int     `json:"move_count"`
	GuessCount     int     `json:"guess_count"`
	PlaytimeMs     float64 `json:"playtime_ms"`
}

type HighscoreFilter struct {
	Username   *string
	GameParams *mines.GameParams
}

func (f HighscoreFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.GameParams != nil {
		clauses = append(
			clauses,
			"width = @width",
			"height = @height",
			"mine_count = @mineCount",
		)
		args["width"] = f.GameParams.Width
		args["height"] = f.GameParams.Height
		args["mineCount"] = f.GameParams.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

// GetHighscores returns won runs ordered by how few guesses they took
// and then by how fast they went.
func (q *Queries) GetHighscores(
	ctx context.Context, filter HighscoreFilter,
) ([]Highscore, error) {
	query := `
	SELECT
		solve_session_id,
		username,
		width,
		height,
		mine_count,
		move_count,
		guess_count,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM solve_session
		LEFT OUTER JOIN player using (player_id)
	WHERE
		won = true
		AND dead = false
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY guess_count, playtime_ms;"

	rows, _ := q.db.Query(ctx, query, args)
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}
