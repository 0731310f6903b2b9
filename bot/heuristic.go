// Package bot provides the built-in reference strategies.
package bot

import (
	"golang.org/x/exp/rand"

	"gomoku/game"
)

// Positional scoring tiers. Defensive bonuses sit at roughly half the
// offensive tier so strong opponent shapes get blocked before they turn
// into forced wins.
const (
	scoreFour       = 10000
	scoreOpenThree  = 1000
	scoreThree      = 100
	scoreOpenTwo    = 50
	scoreTwo        = 10
	scoreBlockFour  = 5000
	scoreBlockThree = 500
	scoreBlockAny   = 50
	scoreBlockTwo   = 25
)

// Heuristic is the reference strategy: take an immediate win, block the
// opponent's immediate win, otherwise score cells near existing stones and
// pick uniformly among the best.
type Heuristic struct {
	radius int
	rng    *rand.Rand
}

// Option configures a Heuristic.
type Option func(*Heuristic)

// WithRadius sets the neighborhood radius used to shortlist candidate
// cells. Reference variants use 1 or 2; the default is 2.
func WithRadius(radius int) Option {
	return func(h *Heuristic) {
		h.radius = radius
	}
}

// WithRand sets the source for tie-breaks, so runs can be reproduced from
// a fixed seed.
func WithRand(rng *rand.Rand) Option {
	return func(h *Heuristic) {
		h.rng = rng
	}
}

func NewHeuristic(options ...Option) *Heuristic {
	h := &Heuristic{radius: 2}
	for _, option := range options {
		option(h)
	}
	if h.rng == nil {
		h.rng = rand.New(rand.NewSource(rand.Uint64()))
	}
	return h
}

// Move implements player.MoveFunc.
func (h *Heuristic) Move(board game.Grid, color game.Color) ([]int, error) {
	own := color.Cell()
	opp := color.Other().Cell()

	// 1. Complete an own five.
	if x, y, ok := findWinningCell(board, own); ok {
		return []int{x, y}, nil
	}
	// 2. Deny the opponent's five.
	if x, y, ok := findWinningCell(board, opp); ok {
		return []int{x, y}, nil
	}
	// 3. Score cells near existing stones.
	if x, y, ok := h.bestScoredCell(board, own, opp); ok {
		return []int{x, y}, nil
	}
	// 4. Empty or scattered board: center first, then any empty cell.
	return h.fallback(board), nil
}

// findWinningCell scans row-major for the first empty cell where a stone of
// c would complete exactly five in a row.
func findWinningCell(g game.Grid, c game.Cell) (int, int, bool) {
	for x := range g {
		for y := range g[x] {
			if g[x][y] == game.CellEmpty && game.CheckWin(g, x, y, c) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func (h *Heuristic) bestScoredCell(g game.Grid, own, opp game.Cell) (int, int, bool) {
	bestScore := -1
	var best [][2]int
	for x := range g {
		for y := range g[x] {
			if g[x][y] != game.CellEmpty || !hasNeighbor(g, x, y, h.radius) {
				continue
			}
			score := evaluateCell(g, x, y, own, opp)
			if score > bestScore {
				bestScore = score
				best = best[:0]
				best = append(best, [2]int{x, y})
			} else if score == bestScore {
				best = append(best, [2]int{x, y})
			}
		}
	}
	if len(best) == 0 {
		return 0, 0, false
	}
	pick := best[h.rng.Intn(len(best))]
	return pick[0], pick[1], true
}

// hasNeighbor reports whether any stone sits within radius of (x, y) in
// Chebyshev distance.
func hasNeighbor(g game.Grid, x, y, radius int) bool {
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) && g[nx][ny] != game.CellEmpty {
				return true
			}
		}
	}
	return false
}

// evaluateCell scores a candidate cell: a center-proximity base plus tiered
// bonuses for the lines it would extend or block on each of the four axes.
func evaluateCell(g game.Grid, x, y int, own, opp game.Cell) int {
	center := g.Size() / 2
	distance := abs(x-center) + abs(y-center)
	score := max(0, 10-distance)

	for _, d := range game.Directions {
		ownCount, oppCount, openEnds := countLine(g, x, y, d[0], d[1], own, opp)

		switch {
		case ownCount >= 4:
			score += scoreFour
		case ownCount == 3 && openEnds == 2:
			score += scoreOpenThree
		case ownCount == 3:
			score += scoreThree
		case ownCount == 2 && openEnds == 2:
			score += scoreOpenTwo
		case ownCount == 2:
			score += scoreTwo
		}

		switch {
		case oppCount >= 4:
			score += scoreBlockFour
		case oppCount == 3 && openEnds == 2:
			score += scoreBlockThree
		case oppCount == 3:
			score += scoreBlockAny
		case oppCount == 2 && openEnds == 2:
			score += scoreBlockTwo
		}
	}
	return score
}

// countLine walks outward from (x, y) in both directions of one axis. Own
// stones accumulate until the first non-own cell; an opponent stone there
// bumps the opponent count and stops the walk, an empty cell bumps the
// open-end count and stops. This mirrors the reference scoring literally,
// including its asymmetries.
func countLine(g game.Grid, x, y, dx, dy int, own, opp game.Cell) (ownCount, oppCount, openEnds int) {
	for _, sign := range [2]int{1, -1} {
		nx, ny := x+sign*dx, y+sign*dy
		for g.InBounds(nx, ny) {
			if g[nx][ny] == own {
				ownCount++
			} else if g[nx][ny] == opp {
				oppCount++
				break
			} else {
				openEnds++
				break
			}
			nx += sign * dx
			ny += sign * dy
		}
	}
	return ownCount, oppCount, openEnds
}

func (h *Heuristic) fallback(g game.Grid) []int {
	center := g.Size() / 2
	if g[center][center] == game.CellEmpty {
		return []int{center, center}
	}
	var empty [][2]int
	for x := range g {
		for y := range g[x] {
			if g[x][y] == game.CellEmpty {
				empty = append(empty, [2]int{x, y})
			}
		}
	}
	if len(empty) == 0 {
		// Unreachable behind the engine's move cap.
		return []int{0, 0}
	}
	pick := empty[h.rng.Intn(len(empty))]
	return []int{pick[0], pick[1]}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
