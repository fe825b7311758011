package pond

import "errors"

// Sentinel errors for pond construction.
var (
	// ErrEmptyPond indicates the description has no rows or no columns.
	ErrEmptyPond = errors.New("pond: description must have at least one row and one column")
	// ErrNonRectangular indicates rows with differing token counts.
	ErrNonRectangular = errors.New("pond: all rows must have the same number of cells")
	// ErrUnknownToken indicates a token that names no terrain.
	ErrUnknownToken = errors.New("pond: unknown cell token")
	// ErrBadFlies indicates a food token outside 1..MaxFlies.
	ErrBadFlies = errors.New("pond: fly count out of range")
	// ErrNoStart indicates the description has no start cell.
	ErrNoStart = errors.New("pond: no start cell")
	// ErrMultipleStart indicates more than one start cell.
	ErrMultipleStart = errors.New("pond: more than one start cell")
	// ErrNoEnd indicates the description has no end cell.
	ErrNoEnd = errors.New("pond: no end cell")
	// ErrMultipleEnd indicates more than one end cell.
	ErrMultipleEnd = errors.New("pond: more than one end cell")
)

// Sides is the number of neighbours a hexagon can have.
const Sides = 6

// MaxFlies is the largest fly count a food cell may start with.
const MaxFlies = 3

// Kind is the terrain of a cell. It never changes after construction.
type Kind int

const (
	Water Kind = iota
	Mud
	Reeds
	LilyPad
	Alligator
	Food
)

// String returns the terrain name.
func (k Kind) String() string {
	switch k {
	case Water:
		return "water"
	case Mud:
		return "mud"
	case Reeds:
		return "reeds"
	case LilyPad:
		return "lilypad"
	case Alligator:
		return "alligator"
	case Food:
		return "food"
	default:
		return "unknown"
	}
}

// Role marks the start and end cells. It is orthogonal to Kind.
type Role int

const (
	RoleNone Role = iota
	RoleStart
	RoleEnd
)

// State is the traversal state of a cell during one search.
type State int

const (
	Unvisited State = iota // never pushed, or reset
	InStack                // on the current path
	Retired                // proven to lead nowhere; never revisited
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case InStack:
		return "in-stack"
	case Retired:
		return "retired"
	default:
		return "unknown"
	}
}
