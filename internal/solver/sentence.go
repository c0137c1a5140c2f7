package solver

import (
	"fmt"
	"slices"
	"strings"
)

/*
A sentence is a logical statement about the board: exactly `count` of
`cells` are mines. Sentences are mutated in place as cells get resolved
and discarded once no cells remain. A valid sentence always satisfies
0 <= count <= len(cells).
*/
type Sentence struct {
	cells map[Cell]struct{}
	count int
}

func NewSentence(cells []Cell, count int) *Sentence {
	s := &Sentence{
		cells: make(map[Cell]struct{}, len(cells)),
		count: count,
	}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

func (s *Sentence) Count() int { return s.count }

func (s *Sentence) Size() int { return len(s.cells) }

func (s *Sentence) Empty() bool { return len(s.cells) == 0 }

func (s *Sentence) Has(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Cells returns the cell set in row-major order.
func (s *Sentence) Cells() []Cell {
	cells := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, cellcmp)
	return cells
}

// KnownMines returns every cell of the sentence when all of them must be
// mines, nil otherwise. Empty sentences report nothing; callers discard
// them before consulting this.
func (s *Sentence) KnownMines() []Cell {
	if len(s.cells) > 0 && s.count == len(s.cells) {
		return s.Cells()
	}
	return nil
}

// KnownSafes returns every cell of the sentence when none of them can be
// a mine, nil otherwise.
func (s *Sentence) KnownSafes() []Cell {
	if len(s.cells) > 0 && s.count == 0 {
		return s.Cells()
	}
	return nil
}

// MarkMine removes a cell resolved as a mine, spending one of the mines
// the sentence accounts for. No-op when c is not in the set.
func (s *Sentence) MarkMine(c Cell) {
	if _, ok := s.cells[c]; ok {
		delete(s.cells, c)
		s.count--
	}
}

// MarkSafe removes a cell resolved as safe. The count is untouched: no
// mine has been spent. No-op when c is not in the set.
func (s *Sentence) MarkSafe(c Cell) {
	delete(s.cells, c)
}

// Equal compares by unordered cell set and count.
func (s *Sentence) Equal(other *Sentence) bool {
	if s.count != other.count || len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// strictSubsetOf reports whether s covers strictly fewer cells than
// other and all of them belong to other.
func (s *Sentence) strictSubsetOf(other *Sentence) bool {
	if len(s.cells) >= len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// minus derives the complement sentence over s's cells not in sub. Only
// valid when sub is a strict subset of s: sub accounts for sub.count of
// s's mines, so the rest must lie in the difference.
func (s *Sentence) minus(sub *Sentence) *Sentence {
	diff := &Sentence{
		cells: make(map[Cell]struct{}, len(s.cells)-len(sub.cells)),
		count: s.count - sub.count,
	}
	for c := range s.cells {
		if _, ok := sub.cells[c]; !ok {
			diff.cells[c] = struct{}{}
		}
	}
	return diff
}

func (s *Sentence) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, c := range s.Cells() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "} = %d", s.count)
	return b.String()
}
