package solver

import (
	"slices"
	"testing"
)

func TestNeighbors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell Cell
		want []Cell
	}{
		{
			name: "center",
			cell: Cell{1, 1},
			want: []Cell{
				{0, 0}, {1, 0}, {2, 0},
				{0, 1}, {2, 1},
				{0, 2}, {1, 2}, {2, 2},
			},
		},
		{
			name: "corner",
			cell: Cell{0, 0},
			want: []Cell{{1, 0}, {0, 1}, {1, 1}},
		},
		{
			name: "edge",
			cell: Cell{2, 1},
			want: []Cell{{1, 0}, {2, 0}, {1, 1}, {1, 2}, {2, 2}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := test.cell.Neighbors(3, 3)
			if !slices.Equal(got, test.want) {
				t.Errorf("Neighbors() = %v, want %v", got, test.want)
			}
		})
	}
}
