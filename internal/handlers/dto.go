package handlers

import (
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-solver/internal/game"
	"github.com/vancomm/minesweeper-solver/internal/mines"
	"github.com/vancomm/minesweeper-solver/internal/repository"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

func ParseGameParams(query url.Values) (mines.GameParams, error) {
	var params mines.GameParams
	if err := dec.Decode(&params, query); err != nil {
		return params, err
	}
	return params, params.Validate()
}

type SolveSessionDTO struct {
	SolveSessionId int64             `json:"solve_session_id"`
	Params         mines.GameParams  `json:"params"`
	Won            bool              `json:"won"`
	Dead           bool              `json:"dead"`
	MoveCount      int               `json:"move_count"`
	GuessCount     int               `json:"guess_count"`
	StartedAt      int64             `json:"started_at"`
	EndedAt        int64             `json:"ended_at"`
	Playthrough    *game.Playthrough `json:"playthrough,omitempty"`
}

func NewSolveSessionDTO(
	s *repository.SolveSession, p *game.Playthrough,
) SolveSessionDTO {
	return SolveSessionDTO{
		SolveSessionId: s.SolveSessionId,
		Params: mines.GameParams{
			Width:     s.Width,
			Height:    s.Height,
			MineCount: s.MineCount,
		},
		Won:         s.Won,
		Dead:        s.Dead,
		MoveCount:   s.MoveCount,
		GuessCount:  s.GuessCount,
		StartedAt:   s.StartedAt.Time.UnixMilli(),
		EndedAt:     s.EndedAt.Time.UnixMilli(),
		Playthrough: p,
	}
}
