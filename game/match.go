package game

// Status is the lifecycle state of a match. Won and Drawn are terminal and
// absorbing: once reached, AttemptMove rejects everything.
type Status int

const (
	Ongoing Status = iota
	Won
	Drawn
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return "ongoing"
	}
}

// Move is one accepted placement, immutable once appended to the history.
type Move struct {
	Color Color `json:"color"`
	X     int   `json:"x"`
	Y     int   `json:"y"`
}

// Match couples a board with the turn order, terminal status and move
// history. It is the only mutator of its board.
type Match struct {
	board   *Board
	turn    Color
	status  Status
	winner  Color
	history []Move
}

func NewMatch(size int) *Match {
	return &Match{board: NewBoard(size), turn: Black}
}

// AttemptMove is the single legal state transition. It returns false, with
// no mutation of board or history, when the match is already terminal or
// the coordinate is out of bounds or occupied.
func (m *Match) AttemptMove(x, y int) bool {
	if m.status != Ongoing {
		return false
	}
	stone := m.turn.Cell()
	if !m.board.Place(x, y, stone) {
		return false
	}
	m.history = append(m.history, Move{Color: m.turn, X: x, Y: y})

	if CheckWin(m.board.cells, x, y, stone) {
		m.status = Won
		m.winner = m.turn
		// Turn is not flipped: the last history entry stays the winner's.
		return true
	}
	if m.board.IsFull() {
		m.status = Drawn
		return true
	}
	m.turn = m.turn.Other()
	return true
}

func (m *Match) Status() Status {
	return m.status
}

// Winner returns the winning color; the bool is false unless the match
// ended in a win.
func (m *Match) Winner() (Color, bool) {
	return m.winner, m.status == Won
}

// Turn is the color expected to move next.
func (m *Match) Turn() Color {
	return m.turn
}

func (m *Match) Size() int {
	return m.board.Size()
}

// Snapshot exposes a defensive copy of the board for strategies.
func (m *Match) Snapshot() Grid {
	return m.board.Snapshot()
}

// History returns a copy of the accepted moves in order.
func (m *Match) History() []Move {
	history := make([]Move, len(m.history))
	copy(history, m.history)
	return history
}

func (m *Match) MoveCount() int {
	return len(m.history)
}
