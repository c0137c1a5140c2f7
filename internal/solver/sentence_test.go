package solver

import (
	"slices"
	"testing"
)

func TestSentenceKnownMines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cells []Cell
		count int
		want  []Cell
	}{
		{
			name:  "all mines",
			cells: []Cell{{0, 0}, {1, 0}},
			count: 2,
			want:  []Cell{{0, 0}, {1, 0}},
		},
		{
			name:  "undetermined",
			cells: []Cell{{0, 0}, {1, 0}},
			count: 1,
			want:  nil,
		},
		{
			name:  "no mines",
			cells: []Cell{{0, 0}, {1, 0}},
			count: 0,
			want:  nil,
		},
		{
			name:  "empty",
			cells: nil,
			count: 0,
			want:  nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := NewSentence(test.cells, test.count).KnownMines()
			if !slices.Equal(got, test.want) {
				t.Errorf("KnownMines() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestSentenceKnownSafes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cells []Cell
		count int
		want  []Cell
	}{
		{
			name:  "all safe",
			cells: []Cell{{0, 0}, {1, 0}, {2, 0}},
			count: 0,
			want:  []Cell{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			name:  "undetermined",
			cells: []Cell{{0, 0}, {1, 0}},
			count: 1,
			want:  nil,
		},
		{
			name:  "empty",
			cells: nil,
			count: 0,
			want:  nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := NewSentence(test.cells, test.count).KnownSafes()
			if !slices.Equal(got, test.want) {
				t.Errorf("KnownSafes() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestSentenceMarkMine(t *testing.T) {
	t.Parallel()

	s := NewSentence([]Cell{{0, 0}, {1, 0}, {2, 0}}, 2)

	s.MarkMine(Cell{1, 0})
	if s.Has(Cell{1, 0}) {
		t.Error("marked mine still in sentence")
	}
	if s.Count() != 1 {
		t.Errorf("count = %d, want 1", s.Count())
	}

	// unknown cell is a no-op
	s.MarkMine(Cell{5, 5})
	if s.Count() != 1 || s.Size() != 2 {
		t.Errorf("sentence changed by foreign cell: %s", s)
	}
}

func TestSentenceMarkSafe(t *testing.T) {
	t.Parallel()

	s := NewSentence([]Cell{{0, 0}, {1, 0}, {2, 0}}, 2)

	s.MarkSafe(Cell{0, 0})
	if s.Has(Cell{0, 0}) {
		t.Error("marked safe still in sentence")
	}
	if s.Count() != 2 {
		t.Errorf("count = %d, want 2", s.Count())
	}

	s.MarkSafe(Cell{5, 5})
	if s.Count() != 2 || s.Size() != 2 {
		t.Errorf("sentence changed by foreign cell: %s", s)
	}
}

func TestSentenceEqual(t *testing.T) {
	t.Parallel()

	a := NewSentence([]Cell{{0, 0}, {1, 0}}, 1)
	b := NewSentence([]Cell{{1, 0}, {0, 0}}, 1)
	c := NewSentence([]Cell{{0, 0}, {1, 0}}, 2)
	d := NewSentence([]Cell{{0, 0}, {2, 0}}, 1)

	if !a.Equal(b) {
		t.Error("order must not matter")
	}
	if a.Equal(c) {
		t.Error("counts differ")
	}
	if a.Equal(d) {
		t.Error("cell sets differ")
	}
}

func TestSentenceMinus(t *testing.T) {
	t.Parallel()

	sub := NewSentence([]Cell{{0, 0}, {1, 0}}, 1)
	super := NewSentence([]Cell{{0, 0}, {1, 0}, {2, 0}}, 1)

	if !sub.strictSubsetOf(super) {
		t.Fatal("expected strict subset")
	}
	diff := super.minus(sub)
	if want := []Cell{{2, 0}}; !slices.Equal(diff.Cells(), want) {
		t.Errorf("diff cells = %v, want %v", diff.Cells(), want)
	}
	if diff.Count() != 0 {
		t.Errorf("diff count = %d, want 0", diff.Count())
	}
}
