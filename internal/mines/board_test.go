package mines

import (
	"math/rand/v2"
	"testing"
)

func TestGameParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  GameParams
		wantErr bool
	}{
		{
			name:   "beginner",
			params: GameParams{Width: 9, Height: 9, MineCount: 10},
		},
		{
			name:   "no mines",
			params: GameParams{Width: 4, Height: 4, MineCount: 0},
		},
		{
			name:    "zero width",
			params:  GameParams{Width: 0, Height: 9, MineCount: 10},
			wantErr: true,
		},
		{
			name:    "negative mines",
			params:  GameParams{Width: 9, Height: 9, MineCount: -1},
			wantErr: true,
		},
		{
			name:    "all cells mined",
			params:  GameParams{Width: 3, Height: 3, MineCount: 9},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := test.params.Validate()
			if (err != nil) != test.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}

func TestNewBoard(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	params := GameParams{Width: 9, Height: 9, MineCount: 10}

	b, err := NewBoard(params, r)
	if err != nil {
		t.Fatal(err)
	}

	planted := 0
	for _, mine := range b.Grid {
		if mine {
			planted++
		}
	}
	if planted != params.MineCount {
		t.Errorf("planted %d mines, want %d", planted, params.MineCount)
	}

	if _, err := NewBoard(GameParams{Width: -1}, r); err == nil {
		t.Error("invalid params must be rejected")
	}
}

func TestNearbyMines(t *testing.T) {
	t.Parallel()

	/*
	 * * - -
	 * - - -
	 * - - *
	 */
	b := &Board{
		GameParams: GameParams{Width: 3, Height: 3, MineCount: 2},
		Grid: []bool{
			true, false, false,
			false, false, false,
			false, false, true,
		},
	}

	tests := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 0},
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 1},
		{2, 2, 0},
	}

	for _, test := range tests {
		if got := b.NearbyMines(test.x, test.y); got != test.want {
			t.Errorf("NearbyMines(%d, %d) = %d, want %d",
				test.x, test.y, got, test.want)
		}
	}
}

func TestBoardBytes(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	b, err := NewBoard(GameParams{Width: 5, Height: 4, MineCount: 6}, r)
	if err != nil {
		t.Fatal(err)
	}

	buf, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := ParseBoardFromBytes(buf)
	if err != nil {
		t.Fatal(err)
	}

	if parsed.GameParams != b.GameParams {
		t.Errorf("params = %v, want %v", parsed.GameParams, b.GameParams)
	}
	if parsed.String() != b.String() {
		t.Errorf("grid mismatch:\n%s\nwant:\n%s", parsed, b)
	}
}
