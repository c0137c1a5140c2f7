package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-solver/internal/mines"
)

func TestParseGameParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   url.Values
		want    mines.GameParams
		wantErr bool
	}{
		{
			name: "beginner",
			query: url.Values{
				"width":      {"9"},
				"height":     {"9"},
				"mine_count": {"10"},
			},
			want: mines.GameParams{Width: 9, Height: 9, MineCount: 10},
		},
		{
			name: "unknown keys ignored",
			query: url.Values{
				"width":      {"9"},
				"height":     {"9"},
				"mine_count": {"10"},
				"hint":       {"please"},
			},
			want: mines.GameParams{Width: 9, Height: 9, MineCount: 10},
		},
		{
			name: "missing field",
			query: url.Values{
				"width":  {"9"},
				"height": {"9"},
			},
			wantErr: true,
		},
		{
			name: "not a number",
			query: url.Values{
				"width":      {"nine"},
				"height":     {"9"},
				"mine_count": {"10"},
			},
			wantErr: true,
		},
		{
			name: "too many mines",
			query: url.Values{
				"width":      {"3"},
				"height":     {"3"},
				"mine_count": {"9"},
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseGameParams(test.query)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}
