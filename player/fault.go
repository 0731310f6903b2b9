package player

import "fmt"

// FaultKind classifies a strategy contract violation. Any fault loses the
// match for the offending side; a load fault loses the whole tournament.
type FaultKind int

const (
	FaultLoad FaultKind = iota
	FaultInvocation
	FaultFormat
	FaultLegality
	FaultTimeout
)

func (k FaultKind) String() string {
	switch k {
	case FaultLoad:
		return "load"
	case FaultInvocation:
		return "invocation"
	case FaultFormat:
		return "format"
	case FaultLegality:
		return "legality"
	case FaultTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Fault carries the kind and human-readable reason for a violation. It is a
// plain result value, not an error: the caller decides the match outcome.
type Fault struct {
	Kind   FaultKind
	Reason string
}

func (f Fault) String() string {
	return fmt.Sprintf("%s fault: %s", f.Kind, f.Reason)
}
