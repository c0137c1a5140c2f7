package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-solver/internal/game"
	"github.com/vancomm/minesweeper-solver/internal/mines"
	"github.com/vancomm/minesweeper-solver/internal/solver"
)

type watchEvent struct {
	Move game.Move  `json:"move"`
	Grid mines.Grid `json:"grid"`
	Won  bool       `json:"won"`
	Dead bool       `json:"dead"`
}

// Watch runs a live playthrough over a websocket, streaming one event
// per move and a session summary at the end.
func (h Solve) Watch(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	startedAt := time.Now().UTC()
	p, err := game.Play(
		board, solver.New(params.Width, params.Height, h.rnd),
		func(p game.Playthrough) error {
			return c.WriteJSON(watchEvent{
				Move: p.Moves[len(p.Moves)-1],
				Grid: p.Grid,
				Won:  p.Won,
				Dead: p.Dead,
			})
		},
	)
	if err != nil {
		h.logger.Warn("playthrough aborted", "error", err)
		return
	}
	endedAt := time.Now().UTC()

	session, err := h.createSession(r, board, p, startedAt, endedAt)
	if err != nil {
		h.logger.Error("unable to store solve session", "error", err)
		return
	}

	if err := c.WriteJSON(NewSolveSessionDTO(session, p)); err != nil {
		h.logger.Error("unable to send session summary", "error", err)
		return
	}
	c.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}
