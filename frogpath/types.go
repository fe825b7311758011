package frogpath

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNilPond is returned when FindPath receives a nil *pond.Pond.
	ErrNilPond = errors.New("frogpath: pond is nil")

	// ErrNoStart is returned when the pond has no start cell.
	ErrNoStart = errors.New("frogpath: pond has no start cell")
)

// State is the outcome of a search.
type State int

const (
	Searching  State = iota // loop still running
	Solved                  // the end cell was reached
	NoSolution              // the path emptied before reaching the end
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case Solved:
		return "solved"
	case NoSolution:
		return "no solution"
	default:
		return "unknown"
	}
}

// Option configures FindPath.
type Option func(*Options)

// Options holds the observer hooks for a search. Hooks only observe; they
// cannot change or abort the search.
type Options struct {
	// OnVisit is called with the ID of the active cell on every iteration,
	// in the same order as Result.Trace.
	OnVisit func(id string)

	// OnHop is called when a candidate is pushed, with the score it won by.
	OnHop func(from, to string, score float64)

	// OnRetire is called when a cell with no candidate is popped.
	OnRetire func(id string)

	// OnEat is called when a food cell is emptied, with the flies eaten.
	OnEat func(id string, flies int)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(id string)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnHop installs fn as the hop hook.
func WithOnHop(fn func(from, to string, score float64)) Option {
	return func(o *Options) {
		o.OnHop = fn
	}
}

// WithOnRetire installs fn as the retire hook.
func WithOnRetire(fn func(id string)) Option {
	return func(o *Options) {
		o.OnRetire = fn
	}
}

// WithOnEat installs fn as the eat hook.
func WithOnEat(fn func(id string, flies int)) Option {
	return func(o *Options) {
		o.OnEat = fn
	}
}

// Result captures the outcome of FindPath.
type Result struct {
	// State is Solved or NoSolution.
	State State

	// Trace lists the ID of the active cell on every iteration, including
	// cells later retired and cells revisited after backtracking.
	Trace []string

	// Path is the start-to-end route when Solved; nil otherwise.
	Path []string

	// Flies is the number of flies eaten along the way.
	Flies int

	// Steps counts loop iterations; Retired counts popped dead ends.
	Steps   int
	Retired int
}

// Solved reports whether the end cell was reached.
func (r *Result) Solved() bool { return r.State == Solved }

// String renders "<ids> ate <n> flies", or "No solution".
func (r *Result) String() string {
	if r.State != Solved {
		return "No solution"
	}
	var sb strings.Builder
	for _, id := range r.Trace {
		sb.WriteString(id)
		sb.WriteByte(' ')
	}
	sb.WriteString("ate ")
	sb.WriteString(strconv.Itoa(r.Flies))
	sb.WriteString(" flies")

	return sb.String()
}
