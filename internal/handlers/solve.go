package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/minesweeper-solver/internal/config"
	"github.com/vancomm/minesweeper-solver/internal/game"
	"github.com/vancomm/minesweeper-solver/internal/middleware"
	"github.com/vancomm/minesweeper-solver/internal/mines"
	"github.com/vancomm/minesweeper-solver/internal/repository"
	"github.com/vancomm/minesweeper-solver/internal/solver"
)

type Solve struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewSolve(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *Solve {
	return &Solve{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

func (h Solve) playerId(r *http.Request) *int64 {
	claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if !ok {
		return nil
	}
	return &claims.PlayerId
}

// Create generates a fresh board from query params, has the solver play
// it to completion and stores the run.
func (h Solve) Create(w http.ResponseWriter, r *http.Request) {
	params, err := ParseGameParams(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	board, err := mines.NewBoard(params, h.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to generate a board", "error", err)
		return
	}

	startedAt := time.Now().UTC()
	p, err := game.Play(
		board, solver.New(params.Width, params.Height, h.rnd), nil,
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("playthrough failed", "error", err)
		return
	}
	endedAt := time.Now().UTC()

	session, err := h.createSession(r, board, p, startedAt, endedAt)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to store solve session", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewSolveSessionDTO(session, p))
}

func (h Solve) createSession(
	r *http.Request,
	board *mines.Board,
	p *game.Playthrough,
	startedAt, endedAt time.Time,
) (*repository.SolveSession, error) {
	boardBytes, err := board.Bytes()
	if err != nil {
		return nil, err
	}
	return h.repo.CreateSolveSession(
		r.Context(), repository.CreateSolveSessionParams{
			PlayerId:   h.playerId(r),
			Width:      board.Width,
			Height:     board.Height,
			MineCount:  board.MineCount,
			Won:        p.Won,
			Dead:       p.Dead,
			MoveCount:  len(p.Moves),
			GuessCount: p.GuessCount(),
			Board:      boardBytes,
			StartedAt:  startedAt,
			EndedAt:    endedAt,
		},
	)
}

func (h Solve) Fetch(w http.ResponseWriter, r *http.Request) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := h.repo.FetchSolveSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch solve session", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewSolveSessionDTO(session, nil))
}

func (h Solve) Records(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter repository.HighscoreFilter
	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if query.Has("width") {
		params, err := ParseGameParams(query)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.logger, wrapError(err))
			return
		}
		filter.GameParams = &params
	}

	h.sendRecords(w, r, filter)
}

func (h Solve) OwnRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	h.sendRecords(w, r, repository.HighscoreFilter{
		Username: &claims.Username,
	})
}

func (h Solve) sendRecords(
	w http.ResponseWriter, r *http.Request, filter repository.HighscoreFilter,
) {
	records, err := h.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch highscores", "error", err)
		return
	}
	sendJSONOrLog(w, h.logger, records)
}
