package game

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-solver/internal/mines"
	"github.com/vancomm/minesweeper-solver/internal/solver"
)

func TestPlayZeroMines(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	params := mines.GameParams{Width: 4, Height: 4, MineCount: 0}
	b, err := mines.NewBoard(params, r)
	require.NoError(t, err)

	p, err := Play(b, solver.New(params.Width, params.Height, r), nil)
	require.NoError(t, err)

	require.True(t, p.Won)
	require.False(t, p.Dead)
	require.Len(t, p.Moves, params.CellCount())
	for _, state := range p.Grid {
		require.GreaterOrEqual(t, state, mines.CellState(0))
	}
}

func TestPlayEndsEveryGame(t *testing.T) {
	t.Parallel()

	for seed := range uint64(20) {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			t.Parallel()

			r := rand.New(rand.NewPCG(seed, seed+1))
			params := mines.GameParams{Width: 9, Height: 9, MineCount: 10}
			b, err := mines.NewBoard(params, r)
			require.NoError(t, err)

			p, err := Play(b, solver.New(params.Width, params.Height, r), nil)
			require.NoError(t, err)

			require.True(t, p.Won || p.Dead, "game must reach a verdict")

			seen := make(map[solver.Cell]struct{})
			for _, m := range p.Moves {
				_, dup := seen[m.Cell]
				require.False(t, dup, "cell %s played twice", m.Cell)
				seen[m.Cell] = struct{}{}

				if !m.Guess {
					require.False(t, m.Boom, "safe move %s hit a mine", m.Cell)
				}
				if !m.Boom {
					require.Equal(t, b.NearbyMines(m.Cell.X, m.Cell.Y), m.Count)
				}
			}

			for y := range params.Height {
				for x := range params.Width {
					state := p.Grid[y*params.Width+x]
					if state == mines.Flagged {
						require.True(t, b.MineAt(x, y),
							"flag on a clear cell (%d:%d)", x, y)
					}
					if 0 <= state && state <= 8 {
						require.False(t, b.MineAt(x, y),
							"opened a mine at (%d:%d)", x, y)
					}
				}
			}
		})
	}
}

func TestPlayOnMoveAborts(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	params := mines.GameParams{Width: 9, Height: 9, MineCount: 10}
	b, err := mines.NewBoard(params, r)
	require.NoError(t, err)

	boom := fmt.Errorf("stop right there")
	p, err := Play(
		b, solver.New(params.Width, params.Height, r),
		func(p Playthrough) error { return boom },
	)
	require.ErrorIs(t, err, boom)
	require.NotNil(t, p)
	require.Len(t, p.Moves, 1)
}

func TestGuessCount(t *testing.T) {
	t.Parallel()

	p := Playthrough{Moves: []Move{
		{Guess: true},
		{Guess: false},
		{Guess: true},
	}}
	require.Equal(t, 2, p.GuessCount())
}
