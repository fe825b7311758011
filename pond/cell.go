package pond

import "strconv"

// Cell is a single hexagon in a Pond. Cells are created by the Pond and
// shared by pointer; compare them with ==.
type Cell struct {
	id    int
	row   int
	col   int
	kind  Kind
	role  Role
	state State

	flies   int // remaining flies; Food only
	initial int // flies at construction, restored by Reset

	nbrs [Sides]*Cell
}

// ID returns the printable identifier: the row-major index of the cell.
func (c *Cell) ID() string { return strconv.Itoa(c.id) }

// Index returns the row-major index of the cell.
func (c *Cell) Index() int { return c.id }

// Position returns the (row, col) coordinates of the cell.
func (c *Cell) Position() (row, col int) { return c.row, c.col }

// Kind returns the terrain of the cell.
func (c *Cell) Kind() Kind { return c.kind }

// Role returns whether the cell is the start, the end, or neither.
func (c *Cell) Role() Role { return c.role }

// Neighbor returns the neighbour in direction i (0..5).
// ok is false at a grid edge, next to a hole, or for an out-of-range index.
func (c *Cell) Neighbor(i int) (*Cell, bool) {
	if i < 0 || i >= Sides {
		return nil, false
	}
	n := c.nbrs[i]

	return n, n != nil
}

// Neighbors returns the present neighbours in direction order.
func (c *Cell) Neighbors() []*Cell {
	out := make([]*Cell, 0, Sides)
	for _, n := range c.nbrs {
		if n != nil {
			out = append(out, n)
		}
	}

	return out
}

// HasNeighbor reports whether any neighbour satisfies pred.
func (c *Cell) HasNeighbor(pred func(*Cell) bool) bool {
	for _, n := range c.nbrs {
		if n != nil && pred(n) {
			return true
		}
	}

	return false
}

func (c *Cell) IsStart() bool     { return c.role == RoleStart }
func (c *Cell) IsEnd() bool       { return c.role == RoleEnd }
func (c *Cell) IsWater() bool     { return c.kind == Water }
func (c *Cell) IsMud() bool       { return c.kind == Mud }
func (c *Cell) IsReeds() bool     { return c.kind == Reeds }
func (c *Cell) IsLilyPad() bool   { return c.kind == LilyPad }
func (c *Cell) IsAlligator() bool { return c.kind == Alligator }

// State returns the traversal state.
func (c *Cell) State() State { return c.state }

// IsRetired reports whether the cell was proven to lead nowhere.
func (c *Cell) IsRetired() bool { return c.state == Retired }

// IsMarked reports whether the cell is on the path or retired.
func (c *Cell) IsMarked() bool { return c.state != Unvisited }

// MarkInStack records that the cell is on the current path.
func (c *Cell) MarkInStack() { c.state = InStack }

// MarkRetired records that the cell leads nowhere. Retirement is final for
// the rest of the search.
func (c *Cell) MarkRetired() { c.state = Retired }

// AsFood returns the food view of the cell; ok is false for any other kind.
func (c *Cell) AsFood() (FoodView, bool) {
	if c.kind != Food {
		return FoodView{}, false
	}

	return FoodView{c: c}, true
}

// FoodView exposes the fly count of a food cell.
type FoodView struct {
	c *Cell
}

// Flies returns the number of flies still on the cell.
func (f FoodView) Flies() int { return f.c.flies }

// Consume eats every remaining fly and returns how many were taken.
func (f FoodView) Consume() int {
	n := f.c.flies
	f.c.flies = 0

	return n
}

// reset restores the state and fly count recorded at construction.
func (c *Cell) reset() {
	c.state = Unvisited
	c.flies = c.initial
}

// token renders the cell in the text format.
func (c *Cell) token() string {
	var t string
	switch c.kind {
	case Mud:
		t = "M"
	case Reeds:
		t = "R"
	case LilyPad:
		t = "L"
	case Alligator:
		t = "A"
	case Food:
		t = strconv.Itoa(c.initial)
	default:
		t = "."
	}
	switch c.role {
	case RoleStart:
		if c.kind == Water {
			return "S"
		}
		return "S" + t
	case RoleEnd:
		if c.kind == Water {
			return "E"
		}
		return "E" + t
	}

	return t
}
