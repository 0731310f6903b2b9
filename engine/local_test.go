package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gomoku/game"
	"gomoku/player"
)

// scripted returns a strategy that plays a fixed move sequence.
func scripted(moves ...[2]int) player.MoveFunc {
	i := 0
	return func(game.Grid, game.Color) ([]int, error) {
		if i >= len(moves) {
			return nil, errors.New("script exhausted")
		}
		mv := moves[i]
		i++
		return []int{mv[0], mv[1]}, nil
	}
}

// firstEmpty plays the first empty cell in row-major order.
func firstEmpty(grid game.Grid, _ game.Color) ([]int, error) {
	for x := range grid {
		for y := range grid[x] {
			if grid[x][y] == game.CellEmpty {
				return []int{x, y}, nil
			}
		}
	}
	return nil, errors.New("board full")
}

func boundary(name string, fn player.MoveFunc) *player.Boundary {
	return player.NewBoundary(name, fn, time.Second)
}

func TestLocalRunsToWin(t *testing.T) {
	black := boundary("black", scripted([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{4, 0}))
	white := boundary("white", scripted([2]int{0, 5}, [2]int{1, 5}, [2]int{2, 5}, [2]int{3, 5}))

	result := NewLocal(15, black, white).Run()

	require.Equal(t, game.Won, result.Status)
	require.Equal(t, game.Black, result.Winner)
	require.Nil(t, result.Fault)
	require.False(t, result.Exhausted)
	require.Len(t, result.Moves, 9)
	require.Equal(t, game.Move{Color: game.Black, X: 4, Y: 0}, result.Moves[8])
	require.False(t, result.End.Before(result.Start))
}

func TestLocalFaultAwardsOpponent(t *testing.T) {
	cases := []struct {
		name   string
		white  player.MoveFunc
		kind   player.FaultKind
		nmoves int
	}{
		{
			name: "error mid-match",
			white: func(game.Grid, game.Color) ([]int, error) {
				return nil, errors.New("boom")
			},
			kind:   player.FaultInvocation,
			nmoves: 1,
		},
		{
			name: "malformed coordinate",
			white: func(game.Grid, game.Color) ([]int, error) {
				return []int{1, 2, 3}, nil
			},
			kind:   player.FaultFormat,
			nmoves: 1,
		},
		{
			name:   "occupied cell",
			white:  scripted([2]int{0, 0}),
			kind:   player.FaultLegality,
			nmoves: 1,
		},
		{
			name:   "out of bounds",
			white:  scripted([2]int{-3, 40}),
			kind:   player.FaultLegality,
			nmoves: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			black := boundary("black", firstEmpty)
			white := boundary("white", tc.white)

			result := NewLocal(15, black, white).Run()

			require.Equal(t, game.Won, result.Status, "a fault never yields a draw")
			require.Equal(t, game.Black, result.Winner, "the fault must award the opponent")
			require.NotNil(t, result.Fault)
			require.Equal(t, tc.kind, result.Fault.Kind)
			require.Len(t, result.Moves, tc.nmoves, "only accepted moves belong to the history")
		})
	}
}

func TestLocalBlackFaultAwardsWhite(t *testing.T) {
	black := boundary("black", func(game.Grid, game.Color) ([]int, error) {
		panic("unhinged strategy")
	})
	white := boundary("white", firstEmpty)

	result := NewLocal(15, black, white).Run()

	require.Equal(t, game.Won, result.Status)
	require.Equal(t, game.White, result.Winner)
	require.NotNil(t, result.Fault)
	require.Equal(t, player.FaultInvocation, result.Fault.Kind)
	require.Empty(t, result.Moves)
}

func TestLocalDrawOnFullBoard(t *testing.T) {
	// No five fits on a 4x4 board, so two fill bots must draw it.
	black := boundary("black", firstEmpty)
	white := boundary("white", firstEmpty)

	result := NewLocal(4, black, white).Run()

	require.Equal(t, game.Drawn, result.Status)
	require.Nil(t, result.Fault)
	require.False(t, result.Exhausted)
	require.Len(t, result.Moves, 16)
}
