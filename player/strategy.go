package player

import (
	"fmt"
	"sort"

	"gomoku/game"
)

// MoveFunc is the raw strategy capability: given a board snapshot and the
// color it plays, produce a coordinate pair. The return is deliberately a
// loose []int so that hostile implementations can be caught violating the
// two-element contract instead of being ruled out by the type system.
// Implementations are untrusted: they may return an error, a malformed or
// illegal coordinate, panic, or hang. The Boundary contains all of that.
type MoveFunc func(board game.Grid, color game.Color) ([]int, error)

// Registry maps strategy names to move functions. Each tournament owns its
// own registry; there is no process-wide registration.
type Registry struct {
	funcs map[string]MoveFunc
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]MoveFunc)}
}

func (r *Registry) Register(name string, fn MoveFunc) {
	r.funcs[name] = fn
}

// Lookup resolves a strategy by name. A failed lookup is the Go analogue of
// a module load failure and forfeits every scheduled match.
func (r *Registry) Lookup(name string) (MoveFunc, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, r.Names())
	}
	return fn, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
