package mines

import "fmt"

type GameParams struct {
	Width     int `json:"width" schema:"width,required"`
	Height    int `json:"height" schema:"height,required"`
	MineCount int `json:"mine_count" schema:"mine_count,required"`
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive")
	}
	if p.MineCount < 0 || p.MineCount >= p.CellCount() {
		return fmt.Errorf(
			"mine count must be between 0 and %d", p.CellCount()-1,
		)
	}
	return nil
}

func (p GameParams) ValidatePosition(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}
