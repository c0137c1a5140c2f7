package mines

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand/v2"
	"strings"
)

/*
Board holds the hidden mine layout of one game. It answers pure queries
only; tracking of what has been revealed lives with the caller.
*/
type Board struct {
	GameParams
	Grid []bool /* real mine points */
}

// NewBoard places MineCount mines uniformly at distinct cells.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		GameParams: params,
		Grid:       make([]bool, params.CellCount()),
	}
	planted := 0
	for planted < params.MineCount {
		i := r.IntN(len(b.Grid))
		if b.Grid[i] {
			continue
		}
		b.Grid[i] = true
		planted++
	}
	return b, nil
}

func ParseBoardFromBytes(buf []byte) (*Board, error) {
	var b Board
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (b Board) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(b)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b Board) MineAt(x, y int) bool {
	return b.Grid[y*b.Width+x]
}

// NearbyMines counts the mines within one row and column of the given
// cell, the cell itself excluded.
func (b Board) NearbyMines(x, y int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if b.ValidatePosition(xx, yy) && b.MineAt(xx, yy) {
				count++
			}
		}
	}
	return
}

func (b Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			if b.MineAt(x, y) {
				fmt.Fprint(&sb, "* ")
			} else {
				fmt.Fprint(&sb, "- ")
			}
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
