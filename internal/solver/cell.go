package solver

import "fmt"

// Cell is a board coordinate. Cells are plain values: compared with ==,
// used as map keys, never shared by pointer.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d:%d)", c.X, c.Y)
}

// Neighbors returns every in-bounds cell within one row and column of c,
// excluding c itself.
func (c Cell) Neighbors(width, height int) []Cell {
	neighbors := make([]Cell, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := c.X+dx, c.Y+dy
			if 0 <= x && x < width && 0 <= y && y < height {
				neighbors = append(neighbors, Cell{x, y})
			}
		}
	}
	return neighbors
}

func cellcmp(a, b Cell) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
