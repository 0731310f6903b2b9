package bot

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"gomoku/game"
)

func emptyGrid(size int) game.Grid {
	return game.NewBoard(size).Snapshot()
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestHeuristicTakesImmediateWin(t *testing.T) {
	g := emptyGrid(15)
	// Black four in a row with the fifth cell open at (6, 2).
	for i := 0; i < 4; i++ {
		g[2+i][2] = game.CellBlack
	}
	// A white threat elsewhere must not distract from the win.
	for i := 0; i < 4; i++ {
		g[10][4+i] = game.CellWhite
	}

	h := NewHeuristic(WithRand(seeded(1)))
	move, err := h.Move(g, game.Black)

	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, move,
		"the first winning cell in row-major order completes the five")
}

func TestHeuristicBlocksImmediateLoss(t *testing.T) {
	g := emptyGrid(15)
	// White four in a column; black has no win of its own.
	for i := 0; i < 4; i++ {
		g[5][5+i] = game.CellWhite
	}

	h := NewHeuristic(WithRand(seeded(1)))
	move, err := h.Move(g, game.Black)

	require.NoError(t, err)
	require.Equal(t, []int{5, 4}, move,
		"the first cell completing the opponent five, scanning row-major, is the block")
}

func TestHeuristicWinBeatsBlock(t *testing.T) {
	g := emptyGrid(15)
	for i := 0; i < 4; i++ {
		g[3][1+i] = game.CellBlack // black four, completable at (3,0) or (3,5)
		g[9][1+i] = game.CellWhite // white four, completable at (9,0) or (9,5)
	}

	h := NewHeuristic(WithRand(seeded(1)))
	move, err := h.Move(g, game.Black)

	require.NoError(t, err)
	require.Equal(t, []int{3, 0}, move, "completing an own five outranks blocking")
}

func TestHeuristicOverlineIsNotAWinTarget(t *testing.T) {
	g := emptyGrid(15)
	// Black stones at columns 2,3,4 and 6,7,8 of row 5: filling (5,5) would
	// make seven in a row, which the exactly-five rule rejects, so the win
	// search must not pick it.
	for _, y := range []int{2, 3, 4, 6, 7, 8} {
		g[5][y] = game.CellBlack
	}

	_, _, ok := findWinningCell(g, game.CellBlack)
	require.False(t, ok, "a cell that would form an overline is not a winning cell")
}

func TestHeuristicCenterOpening(t *testing.T) {
	h := NewHeuristic(WithRand(seeded(1)))
	move, err := h.Move(emptyGrid(15), game.Black)

	require.NoError(t, err)
	require.Equal(t, []int{7, 7}, move, "an empty board opens at the center")
}

func TestHeuristicScoresNearStones(t *testing.T) {
	g := emptyGrid(15)
	g[3][3] = game.CellBlack

	h := NewHeuristic(WithRadius(1), WithRand(seeded(1)))
	move, err := h.Move(g, game.White)

	require.NoError(t, err)
	require.Equal(t, []int{4, 4}, move,
		"with radius 1 the only candidates ring the lone stone and (4,4) is nearest the center")
}

func TestHeuristicExtendsOpenThree(t *testing.T) {
	g := emptyGrid(15)
	for i := 0; i < 3; i++ {
		g[6+i][7] = game.CellBlack
	}

	h := NewHeuristic(WithRand(seeded(42)))
	move, err := h.Move(g, game.Black)

	require.NoError(t, err)
	require.Contains(t, [][]int{{5, 7}, {9, 7}}, move,
		"the cells extending an open three to a four dominate the scoring")
}

func TestHeuristicTieBreakIsSeeded(t *testing.T) {
	g := emptyGrid(15)
	g[7][7] = game.CellBlack

	first, err := NewHeuristic(WithRand(seeded(99))).Move(g, game.White)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		move, err := NewHeuristic(WithRand(seeded(99))).Move(g, game.White)
		require.NoError(t, err)
		require.Equal(t, first, move, "identical seeds must break ties identically")
	}
}

func TestRandomPlaysOnlyEmptyCells(t *testing.T) {
	g := emptyGrid(3)
	g[0][0] = game.CellBlack
	g[1][1] = game.CellWhite

	r := NewRandom(seeded(7))
	for i := 0; i < 20; i++ {
		move, err := r.Move(g, game.Black)
		require.NoError(t, err)
		require.Len(t, move, 2)
		require.Equal(t, game.CellEmpty, g[move[0]][move[1]])
	}
}

func TestRandomErrorsOnFullBoard(t *testing.T) {
	g := emptyGrid(2)
	for x := range g {
		for y := range g[x] {
			g[x][y] = game.CellBlack
		}
	}

	_, err := NewRandom(seeded(7)).Move(g, game.White)
	require.Error(t, err)
}
