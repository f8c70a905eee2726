package game_test

import (
	"testing"

	"github.com/plus3/letterfall/game"
	"github.com/stretchr/testify/require"
)

// scripted feeds a fixed letter sequence and counts how often it is drawn.
type scripted struct {
	seq   []game.Symbol
	calls int
}

func (s *scripted) Next() game.Symbol {
	sym := s.seq[s.calls%len(s.seq)]
	s.calls++
	return sym
}

func mustSet(t *testing.T, g *game.Grid, col, row int, sym game.Symbol) {
	t.Helper()
	require.NoError(t, g.Set(game.Cell{Col: col, Row: row}, sym))
}

// fillRows writes a board from string rows, top row first. '_' means Empty,
// anything else is stored as a Symbol.
func fillRows(t *testing.T, g *game.Grid, rows ...string) {
	t.Helper()
	require.Equal(t, g.Height(), len(rows))
	for r, row := range rows {
		require.Equal(t, g.Width(), len(row))
		for c := 0; c < len(row); c++ {
			sym := game.Empty
			if row[c] != '_' {
				sym = game.Symbol(row[c])
			}
			mustSet(t, g, c, r, sym)
		}
	}
}

// boardString renders the grid the same way fillRows reads it, for
// comparisons in failure messages.
func boardString(g *game.Grid) string {
	out := ""
	for r, row := range g.Snapshot() {
		if r > 0 {
			out += "\n"
		}
		for _, sym := range row {
			out += sym.String()
		}
	}
	return out
}

// requireBoard asserts the full grid contents, top row first.
func requireBoard(t *testing.T, g *game.Grid, rows ...string) {
	t.Helper()
	want := ""
	for i, row := range rows {
		if i > 0 {
			want += "\n"
		}
		want += row
	}
	require.Equal(t, want, boardString(g))
}

// requireNoFloating asserts the gravity invariant: no Empty cell has a
// non-Empty cell anywhere above it in the same column.
func requireNoFloating(t *testing.T, g *game.Grid) {
	t.Helper()
	for col := 0; col < g.Width(); col++ {
		seenEmptyBelow := false
		for row := g.Height() - 1; row >= 0; row-- {
			empty := g.IsEmpty(game.Cell{Col: col, Row: row})
			if empty {
				seenEmptyBelow = true
			} else {
				require.False(t, seenEmptyBelow,
					"column %d: symbol at row %d floats above an empty cell\n%s",
					col, row, boardString(g))
			}
		}
	}
}

// requireStable asserts that no cell on the board seeds a qualifying run.
func requireStable(t *testing.T, g *game.Grid, threshold int) {
	t.Helper()
	for col := 0; col < g.Width(); col++ {
		for row := 0; row < g.Height(); row++ {
			c := game.Cell{Col: col, Row: row}
			sym, err := g.Get(c)
			require.NoError(t, err)
			if sym == game.Empty {
				continue
			}
			set := game.Destructions(g, c, sym, threshold)
			require.Zero(t, set.Len(),
				"qualifying run remains through %v\n%s", c, boardString(g))
		}
	}
}
