package game

// DefaultSize is the standard Gomoku board side length.
const DefaultSize = 15

// Cell is the content of a single board intersection.
type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Color identifies one of the two sides. Black always moves first.
type Color int

const (
	Black Color = iota
	White
)

func (c Color) Other() Color {
	if c == Black {
		return White
	}
	return Black
}

// Cell returns the stone a player of this color places.
func (c Color) Cell() Cell {
	if c == Black {
		return CellBlack
	}
	return CellWhite
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	if string(text) == "white" {
		*c = White
	} else {
		*c = Black
	}
	return nil
}

// Grid is a row-indexed snapshot of board contents: Grid[x][y] is the cell
// at column x, row y. Strategies receive a fresh Grid each turn and may
// scribble on it freely without affecting the live board.
type Grid [][]Cell

func (g Grid) Size() int {
	return len(g)
}

func (g Grid) InBounds(x, y int) bool {
	n := len(g)
	return x >= 0 && y >= 0 && x < n && y < n
}

// Board is an N×N grid of stones. It owns no game logic beyond bounds and
// occupancy checks; the Match is its sole mutator.
type Board struct {
	size  int
	cells Grid
	empty int
}

func NewBoard(size int) *Board {
	cells := make(Grid, size)
	for x := range cells {
		cells[x] = make([]Cell, size)
	}
	return &Board{size: size, cells: cells, empty: size * size}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) At(x, y int) Cell {
	return b.cells[x][y]
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

// Place marks (x, y) with the given stone. It returns false without
// mutating anything if the coordinate is out of bounds or the cell is
// already occupied.
func (b *Board) Place(x, y int, cell Cell) bool {
	if !b.InBounds(x, y) {
		return false
	}
	if b.cells[x][y] != CellEmpty {
		return false
	}
	b.cells[x][y] = cell
	b.empty--
	return true
}

func (b *Board) IsFull() bool {
	return b.empty == 0
}

// Snapshot returns an independent copy of the board contents.
func (b *Board) Snapshot() Grid {
	grid := make(Grid, b.size)
	for x := range grid {
		grid[x] = make([]Cell, b.size)
		copy(grid[x], b.cells[x])
	}
	return grid
}
