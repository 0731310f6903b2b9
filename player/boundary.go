package player

import (
	"fmt"
	"time"

	"gomoku/game"
)

// Boundary wraps one untrusted MoveFunc and applies the fault containment
// policy: a panic, an error return, a malformed coordinate or an overrun of
// the move timeout all come back as a Fault instead of propagating. A
// faulting strategy gets no second chance within a match.
type Boundary struct {
	name    string
	fn      MoveFunc
	timeout time.Duration
}

// NewBoundary wraps fn. A timeout of zero disables the per-move clock.
func NewBoundary(name string, fn MoveFunc, timeout time.Duration) *Boundary {
	return &Boundary{name: name, fn: fn, timeout: timeout}
}

func (b *Boundary) Name() string {
	return b.name
}

type outcome struct {
	coords []int
	err    error
}

// Request asks the strategy for a move. Exactly one of fault or a usable
// (x, y) is returned. Legality against the live board is not checked here;
// that stays with the match.
func (b *Boundary) Request(grid game.Grid, color game.Color) (x, y int, fault *Fault) {
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		coords, err := b.fn(grid, color)
		ch <- outcome{coords: coords, err: err}
	}()

	var out outcome
	if b.timeout > 0 {
		timer := time.NewTimer(b.timeout)
		defer timer.Stop()
		select {
		case out = <-ch:
		case <-timer.C:
			// The strategy goroutine is abandoned; its late result, if any,
			// lands in the buffered channel and is never read.
			return 0, 0, &Fault{
				Kind:   FaultTimeout,
				Reason: fmt.Sprintf("move timeout after %s", b.timeout),
			}
		}
	} else {
		out = <-ch
	}

	if out.err != nil {
		return 0, 0, &Fault{
			Kind:   FaultInvocation,
			Reason: fmt.Sprintf("strategy failed: %v", out.err),
		}
	}
	if len(out.coords) != 2 {
		return 0, 0, &Fault{
			Kind:   FaultFormat,
			Reason: fmt.Sprintf("invalid move format: %v", out.coords),
		}
	}
	return out.coords[0], out.coords[1], nil
}

// LegalityFault builds the fault recorded when a well-formed coordinate is
// rejected by the match (out of bounds or occupied).
func LegalityFault(x, y int) *Fault {
	return &Fault{
		Kind:   FaultLegality,
		Reason: fmt.Sprintf("invalid move: (%d, %d)", x, y),
	}
}

// LoadFault builds the tournament-scoped fault for a strategy that could
// not be resolved before play started.
func LoadFault(name string, err error) *Fault {
	return &Fault{
		Kind:   FaultLoad,
		Reason: fmt.Sprintf("failed to load %s: %v", name, err),
	}
}
