package game

// Directions are the four axes through a cell; each entry is paired with its
// opposite when scanning, so the four cover all eight rays.
var Directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// CheckWin reports whether a stone of color c at (x, y) completes a line of
// exactly five contiguous same-color stones along one of the four axes. The
// probed cell itself always counts as c regardless of its current content,
// so callers may test empty cells for hypothetical wins.
//
// A line of six or more is deliberately not a win: the comparison is
// == 5, never >= 5.
func CheckWin(g Grid, x, y int, c Cell) bool {
	for _, d := range Directions {
		count := 1
		count += countRun(g, x, y, d[0], d[1], c)
		count += countRun(g, x, y, -d[0], -d[1], c)
		if count == 5 {
			return true
		}
	}
	return false
}

// countRun counts contiguous stones of color c walking from (x, y) in
// direction (dx, dy), excluding the starting cell.
func countRun(g Grid, x, y, dx, dy int, c Cell) int {
	count := 0
	nx, ny := x+dx, y+dy
	for g.InBounds(nx, ny) && g[nx][ny] == c {
		count++
		nx += dx
		ny += dy
	}
	return count
}
