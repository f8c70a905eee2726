package game_test

import (
	"testing"

	"github.com/plus3/letterfall/game"
	"github.com/stretchr/testify/assert"
)

func TestResolveNoQualifyingRun(t *testing.T) {
	g := game.NewGrid(3, 3)
	fillRows(t, g,
		"___",
		"___",
		"ABA")

	r := game.Resolver{Threshold: 3}
	out := r.Resolve(g, game.Cell{Col: 2, Row: 2}, 'A')

	assert.Zero(t, out.Destroyed)
	assert.Zero(t, out.Score)
	assert.Zero(t, out.Depth)
	requireBoard(t, g,
		"___",
		"___",
		"ABA")
}

func TestResolveEmptySeedLetter(t *testing.T) {
	g := game.NewGrid(3, 3)
	fillRows(t, g,
		"___",
		"___",
		"AAA")

	r := game.Resolver{Threshold: 3}
	out := r.Resolve(g, game.Cell{Col: 0, Row: 2}, game.Empty)

	assert.Zero(t, out.Destroyed)
	assert.Zero(t, out.Score)
	requireBoard(t, g,
		"___",
		"___",
		"AAA")
}

func TestResolveOutOfBoundsSeed(t *testing.T) {
	g := game.NewGrid(3, 3)

	r := game.Resolver{Threshold: 3}
	out := r.Resolve(g, game.Cell{Col: 7, Row: 0}, 'A')

	assert.Zero(t, out.Destroyed)
}

func TestResolveSingleLevel(t *testing.T) {
	g := game.NewGrid(5, 2)
	fillRows(t, g,
		"_____",
		"AAAA_")

	r := game.Resolver{Threshold: 3}
	out := r.Resolve(g, game.Cell{Col: 2, Row: 1}, 'A')

	assert.Equal(t, 4, out.Destroyed)
	assert.Equal(t, 40, out.Score)
	assert.Equal(t, 1, out.Depth)
	requireBoard(t, g,
		"_____",
		"_____")
}

func TestResolveCascadeHorizontalThenHorizontal(t *testing.T) {
	// Clearing the bottom row drops three Bs into a new horizontal run:
	// depth 1 scores 10*3*1, depth 2 scores 10*3*2, total 90.
	g := game.NewGrid(3, 3)
	fillRows(t, g,
		"___",
		"BBB",
		"AAA")

	r := game.Resolver{Threshold: 3}
	out := r.Resolve(g, game.Cell{Col: 2, Row: 2}, 'A')

	assert.Equal(t, 6, out.Destroyed)
	assert.Equal(t, 90, out.Score)
	assert.Equal(t, 2, out.Depth)
	requireBoard(t, g,
		"___",
		"___",
		"___")
}

func TestResolveCascadeHorizontalThenVertical(t *testing.T) {
	// Column 1 carries three stacked Bs above the cleared row; they fall
	// one step and form a vertical run at depth 2.
	g := game.NewGrid(3, 4)
	fillRows(t, g,
		"_B_",
		"_B_",
		"_B_",
		"AAA")

	r := game.Resolver{Threshold: 3}
	out := r.Resolve(g, game.Cell{Col: 2, Row: 3}, 'A')

	assert.Equal(t, 6, out.Destroyed)
	assert.Equal(t, 90, out.Score)
	assert.Equal(t, 2, out.Depth)
	requireBoard(t, g,
		"___",
		"___",
		"___",
		"___")
}

func TestResolveCascadeInTwoColumnsAtOnce(t *testing.T) {
	// One horizontal clear feeds two independent vertical runs, both at
	// depth 2: 10*5*1 + 10*3*2 + 10*3*2 = 170.
	g := game.NewGrid(5, 4)
	fillRows(t, g,
		"B___B",
		"B___B",
		"B___B",
		"AAAAA")

	r := game.Resolver{Threshold: 3}
	out := r.Resolve(g, game.Cell{Col: 2, Row: 3}, 'A')

	assert.Equal(t, 11, out.Destroyed)
	assert.Equal(t, 170, out.Score)
	assert.Equal(t, 2, out.Depth)
	requireBoard(t, g,
		"_____",
		"_____",
		"_____",
		"_____")
}

func TestResolveLeavesBoardStable(t *testing.T) {
	g := game.NewGrid(4, 4)
	fillRows(t, g,
		"____",
		"BBCB",
		"AAAC",
		"CABA")

	r := game.Resolver{Threshold: 3}
	out := r.Resolve(g, game.Cell{Col: 2, Row: 2}, 'A')

	assert.GreaterOrEqual(t, out.Destroyed, 3)
	requireNoFloating(t, g)
	requireStable(t, g, 3)
}

func TestResolveDeterministic(t *testing.T) {
	build := func() *game.Grid {
		g := game.NewGrid(5, 4)
		fillRows(t, g,
			"B___B",
			"B___B",
			"B___B",
			"AAAAA")
		return g
	}

	r := game.Resolver{Threshold: 3}

	g1 := build()
	out1 := r.Resolve(g1, game.Cell{Col: 2, Row: 3}, 'A')
	g2 := build()
	out2 := r.Resolve(g2, game.Cell{Col: 2, Row: 3}, 'A')

	assert.Equal(t, out1, out2)
	assert.Equal(t, boardString(g1), boardString(g2))
	requireNoFloating(t, g1)
}
