package solver

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
)

var Log *slog.Logger = slog.Default()

/*
Solver accumulates knowledge about a partially revealed board and
deduces which cells are safe to open and which hide mines. Uncertain
cells live only inside sentences; once a cell is resolved it is purged
from every sentence and never leaves the safe or mine set again.

A solver instance is not safe for concurrent use. It is meant to be
driven by a single game loop; anything else must serialize calls
externally.
*/
type Solver struct {
	width, height int

	movesMade map[Cell]struct{}
	safes     map[Cell]struct{}
	mines     map[Cell]struct{}
	unclicked []Cell
	knowledge []*Sentence

	rnd *rand.Rand
}

func New(width, height int, rnd *rand.Rand) *Solver {
	s := &Solver{
		width:     width,
		height:    height,
		movesMade: make(map[Cell]struct{}),
		safes:     make(map[Cell]struct{}),
		mines:     make(map[Cell]struct{}),
		unclicked: make([]Cell, 0, width*height),
		rnd:       rnd,
	}
	for y := range height {
		for x := range width {
			s.unclicked = append(s.unclicked, Cell{x, y})
		}
	}
	return s
}

// IsMine reports whether c has been confirmed as a mine.
func (s *Solver) IsMine(c Cell) bool {
	_, ok := s.mines[c]
	return ok
}

// IsSafe reports whether c has been confirmed safe.
func (s *Solver) IsSafe(c Cell) bool {
	_, ok := s.safes[c]
	return ok
}

// MineCells returns the confirmed mines in row-major order.
func (s *Solver) MineCells() []Cell {
	cells := make([]Cell, 0, len(s.mines))
	for c := range s.mines {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, cellcmp)
	return cells
}

// MarkMine records c as a confirmed mine and spends it in every live
// sentence. Idempotent.
func (s *Solver) MarkMine(c Cell) {
	if _, ok := s.mines[c]; ok {
		return
	}
	s.mines[c] = struct{}{}
	for _, sentence := range s.knowledge {
		sentence.MarkMine(c)
	}
}

// MarkSafe records c as confirmed safe and purges it from every live
// sentence. Idempotent.
func (s *Solver) MarkSafe(c Cell) {
	if _, ok := s.safes[c]; ok {
		return
	}
	s.safes[c] = struct{}{}
	for _, sentence := range s.knowledge {
		sentence.MarkSafe(c)
	}
}

/*
Observe feeds the solver one revealed cell together with the number of
mines among its neighbors. It records the move, marks the cell safe,
adds a sentence over the cell's not-yet-observed neighbors and lets
inference run.

Inference is a single subset-elimination pass followed by a resolution
sweep, retried once when no fresh safe move emerged. It is deliberately
not a fixpoint: some derivable facts only surface after later
observations.

A cell must be observed at most once; a second observation corrupts the
neighbor bookkeeping and fails fast with an AssertionError.
*/
func (s *Solver) Observe(c Cell, count int) error {
	if _, ok := s.movesMade[c]; ok {
		return AssertionError{fmt.Sprintf("cell %s observed twice", c)}
	}

	s.movesMade[c] = struct{}{}
	s.unclicked = slices.DeleteFunc(s.unclicked, func(o Cell) bool {
		return o == c
	})
	s.MarkSafe(c)

	var frontier []Cell
	for _, n := range c.Neighbors(s.width, s.height) {
		if _, ok := s.movesMade[n]; !ok {
			frontier = append(frontier, n)
		}
	}
	sentence := NewSentence(frontier, count)
	// cells resolved earlier must not re-enter knowledge
	for _, n := range frontier {
		if _, ok := s.mines[n]; ok {
			sentence.MarkMine(n)
		} else if _, ok := s.safes[n]; ok {
			sentence.MarkSafe(n)
		}
	}
	s.knowledge = append(s.knowledge, sentence)

	s.propagate()
	s.resolve()

	if !s.hasFreshSafeMove() {
		s.propagate()
		s.resolve()
	}

	Log.Debug("observed cell",
		slog.String("cell", c.String()),
		slog.Int("count", count),
		slog.Int("knowledge", len(s.knowledge)),
		slog.Int("mines", len(s.mines)),
	)
	return nil
}

/*
propagate runs one subset-elimination pass: for every ordered pair of
sentences where the first covers a strict subset of the second, the
difference must hold the difference of the counts. Derived sentences
are deduplicated against the knowledge base before being added. One
pass only; it does not chase the consequences of what it just derived.
*/
func (s *Solver) propagate() {
	var derived []*Sentence
	for _, sub := range s.knowledge {
		for _, super := range s.knowledge {
			if sub == super || !sub.strictSubsetOf(super) {
				continue
			}
			derived = append(derived, super.minus(sub))
		}
	}
	for _, d := range derived {
		if s.hasSentence(d) {
			continue
		}
		s.knowledge = append(s.knowledge, d)
	}
}

func (s *Solver) hasSentence(sentence *Sentence) bool {
	for _, known := range s.knowledge {
		if known.Equal(sentence) {
			return true
		}
	}
	return false
}

/*
resolve sweeps the knowledge base once: empty sentences are dropped,
degenerate sentences (all safe or all mines) are flattened into
confirmed facts. Marking re-propagates into every sentence and may
leave new degenerate or emptied sentences behind; those wait for the
next sweep.
*/
func (s *Solver) resolve() {
	s.knowledge = slices.DeleteFunc(s.knowledge, func(sentence *Sentence) bool {
		return sentence.Empty()
	})

	var safeCells, mineCells []Cell
	for _, sentence := range s.knowledge {
		safeCells = append(safeCells, sentence.KnownSafes()...)
		mineCells = append(mineCells, sentence.KnownMines()...)
	}

	for _, c := range safeCells {
		s.MarkSafe(c)
	}
	for _, c := range mineCells {
		s.MarkMine(c)
	}
}

func (s *Solver) hasFreshSafeMove() bool {
	for c := range s.safes {
		if _, ok := s.movesMade[c]; !ok {
			return true
		}
	}
	return false
}

// MakeSafeMove picks a uniformly random cell confirmed safe but not yet
// played. The second return is false when no such cell is known, which
// is a normal state, not a failure. Pure query: the move is recorded
// only when the caller reports it back via Observe.
func (s *Solver) MakeSafeMove() (Cell, bool) {
	var candidates []Cell
	for c := range s.safes {
		if _, ok := s.movesMade[c]; !ok {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	// map iteration order must not leak into the draw
	slices.SortFunc(candidates, cellcmp)
	return candidates[s.rnd.IntN(len(candidates))], true
}

// MakeRandomMove picks a uniformly random cell that has never been
// played and is not a confirmed mine. The second return is false when
// the board is exhausted. Pure query.
func (s *Solver) MakeRandomMove() (Cell, bool) {
	var candidates []Cell
	for _, c := range s.unclicked {
		if _, ok := s.mines[c]; !ok {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[s.rnd.IntN(len(candidates))], true
}
