package game

import (
	"github.com/vancomm/minesweeper-solver/internal/mines"
	"github.com/vancomm/minesweeper-solver/internal/solver"
)

// Move is one step of a playthrough. Count is the neighbor mine count
// reported back to the solver, or -1 when the move hit a mine.
type Move struct {
	Cell  solver.Cell `json:"cell"`
	Guess bool        `json:"guess"`
	Count int         `json:"count"`
	Boom  bool        `json:"boom,omitempty"`
}

type Playthrough struct {
	Params mines.GameParams `json:"params"`
	Moves  []Move           `json:"moves"`
	Grid   mines.Grid       `json:"grid"`
	Won    bool             `json:"won"`
	Dead   bool             `json:"dead"`
}

func (p Playthrough) GuessCount() (count int) {
	for _, m := range p.Moves {
		if m.Guess {
			count++
		}
	}
	return
}

/*
Play drives the solver over a board until it wins, steps on a mine or
runs out of moves. Each turn it asks for a known safe move, falls back
to a random one, and reports the outcome back via Observe — exactly
once per cell, which is what Observe requires. Cells the solver has
confirmed as mines are flagged on the player grid as they are found.

onMove, when not nil, is called after every move with the playthrough
so far; a non-nil return stops the game and is passed through.
*/
func Play(
	b *mines.Board, s *solver.Solver, onMove func(p Playthrough) error,
) (*Playthrough, error) {
	p := &Playthrough{
		Params: b.GameParams,
		Grid:   mines.NewGrid(b.CellCount()),
	}
	opened := 0
	for {
		cell, ok := s.MakeSafeMove()
		guess := false
		if !ok {
			cell, ok = s.MakeRandomMove()
			guess = true
		}
		if !ok {
			// nothing left but confirmed mines
			break
		}

		i := cell.Y*b.Width + cell.X
		if b.MineAt(cell.X, cell.Y) {
			p.Dead = true
			p.Moves = append(p.Moves, Move{
				Cell: cell, Guess: guess, Count: -1, Boom: true,
			})
			p.Grid[i] = mines.ExplodedMine
			p.revealMines(b)
		} else {
			count := b.NearbyMines(cell.X, cell.Y)
			if err := s.Observe(cell, count); err != nil {
				return nil, err
			}
			p.Moves = append(p.Moves, Move{
				Cell: cell, Guess: guess, Count: count,
			})
			p.Grid[i] = mines.CellState(count)
			opened++
		}

		for _, c := range s.MineCells() {
			j := c.Y*b.Width + c.X
			if p.Grid[j] == mines.Unknown {
				p.Grid[j] = mines.Flagged
			}
		}

		if opened == b.CellCount()-b.MineCount {
			p.Won = true
		}

		if onMove != nil {
			if err := onMove(*p); err != nil {
				return p, err
			}
		}
		if p.Dead || p.Won {
			break
		}
	}
	return p, nil
}

func (p *Playthrough) revealMines(b *mines.Board) {
	for y := range b.Height {
		for x := range b.Width {
			i := y*b.Width + x
			if b.MineAt(x, y) && p.Grid[i] == mines.Unknown {
				p.Grid[i] = mines.UnflaggedMine
			}
		}
	}
}
