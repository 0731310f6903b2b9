package bot

import (
	"errors"

	"golang.org/x/exp/rand"

	"gomoku/game"
)

// Random plays a uniformly random empty cell. It exists as a baseline
// opponent and as a quick way to exercise the fault-free path end to end.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Uint64()))
	}
	return &Random{rng: rng}
}

// Move implements player.MoveFunc.
func (r *Random) Move(board game.Grid, _ game.Color) ([]int, error) {
	var empty [][2]int
	for x := range board {
		for y := range board[x] {
			if board[x][y] == game.CellEmpty {
				empty = append(empty, [2]int{x, y})
			}
		}
	}
	if len(empty) == 0 {
		return nil, errors.New("no empty cell left")
	}
	pick := empty[r.rng.Intn(len(empty))]
	return []int{pick[0], pick[1]}, nil
}
