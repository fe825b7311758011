package pond

import (
	"fmt"
	"strconv"
	"strings"
)

// hexOffsets holds the (dcol, drow) step for each direction, indexed by row
// parity: hexOffsets[row&1][dir]. Odd rows sit half a cell to the right.
var hexOffsets = [2][Sides][2]int{
	// even rows: E, SE, SW, W, NW, NE
	{{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}},
	// odd rows
	{{1, 0}, {1, 1}, {0, 1}, {-1, 0}, {0, -1}, {1, -1}},
}

// Pond is a rectangular hex grid of cells, possibly with holes.
// Rows and Cols give the dimensions; cells[row][col] is nil for a hole.
type Pond struct {
	Name       string
	Rows, Cols int
	cells      [][]*Cell
	start, end *Cell
}

// New builds a Pond from a rectangular grid of tokens (see package doc).
// Returns ErrEmptyPond, ErrNonRectangular, ErrUnknownToken, ErrBadFlies,
// ErrNoStart, ErrMultipleStart, ErrNoEnd or ErrMultipleEnd, wrapped with the
// offending position where one exists.
// Complexity: O(R×C) time and memory.
func New(grid [][]string) (*Pond, error) {
	// 1. Shape checks
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyPond
	}
	rows, cols := len(grid), len(grid[0])
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	// 2. Decode tokens into cells
	p := &Pond{Rows: rows, Cols: cols, cells: make([][]*Cell, rows)}
	for r := 0; r < rows; r++ {
		p.cells[r] = make([]*Cell, cols)
		for c := 0; c < cols; c++ {
			cell, err := decodeToken(grid[r][c])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			if cell == nil {
				continue // hole
			}
			cell.id, cell.row, cell.col = r*cols+c, r, c
			if err = p.assignRole(cell); err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			p.cells[r][c] = cell
		}
	}
	if p.start == nil {
		return nil, ErrNoStart
	}
	if p.end == nil {
		return nil, ErrNoEnd
	}

	// 3. Wire neighbours
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := p.cells[r][c]
			if cell == nil {
				continue
			}
			for dir, d := range hexOffsets[r&1] {
				if n, ok := p.Cell(r+d[1], c+d[0]); ok {
					cell.nbrs[dir] = n
				}
			}
		}
	}

	return p, nil
}

// assignRole records cell as the start or end, rejecting duplicates.
func (p *Pond) assignRole(cell *Cell) error {
	switch cell.role {
	case RoleStart:
		if p.start != nil {
			return ErrMultipleStart
		}
		p.start = cell
	case RoleEnd:
		if p.end != nil {
			return ErrMultipleEnd
		}
		p.end = cell
	}

	return nil
}

// decodeToken turns one token into a Cell. A hole yields (nil, nil).
func decodeToken(tok string) (*Cell, error) {
	if tok == "-" {
		return nil, nil
	}
	cell := &Cell{}
	switch {
	case strings.HasPrefix(tok, "S"):
		cell.role, tok = RoleStart, tok[1:]
	case strings.HasPrefix(tok, "E"):
		cell.role, tok = RoleEnd, tok[1:]
	}
	if cell.role != RoleNone && tok == "" {
		return cell, nil // start/end on open water
	}

	switch tok {
	case ".", "W":
		cell.kind = Water
	case "M":
		cell.kind = Mud
	case "R":
		cell.kind = Reeds
	case "L":
		cell.kind = LilyPad
	case "A":
		cell.kind = Alligator
	default:
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownToken, tok)
		}
		if n < 1 || n > MaxFlies {
			return nil, fmt.Errorf("%w: %d", ErrBadFlies, n)
		}
		cell.kind, cell.flies, cell.initial = Food, n, n
	}

	return cell, nil
}

// Start returns the start cell.
func (p *Pond) Start() *Cell { return p.start }

// End returns the end cell.
func (p *Pond) End() *Cell { return p.end }

// InBounds reports whether (row, col) lies within the grid.
func (p *Pond) InBounds(row, col int) bool {
	return row >= 0 && row < p.Rows && col >= 0 && col < p.Cols
}

// Cell returns the cell at (row, col); ok is false out of bounds or on a hole.
func (p *Pond) Cell(row, col int) (*Cell, bool) {
	if !p.InBounds(row, col) {
		return nil, false
	}
	c := p.cells[row][col]

	return c, c != nil
}

// CellByID returns the cell whose ID is id.
func (p *Pond) CellByID(id string) (*Cell, bool) {
	idx, err := strconv.Atoi(id)
	if err != nil || idx < 0 {
		return nil, false
	}

	return p.Cell(idx/p.Cols, idx%p.Cols)
}

// Cells returns every cell in row-major order, holes skipped.
func (p *Pond) Cells() []*Cell {
	out := make([]*Cell, 0, p.Rows*p.Cols)
	for _, row := range p.cells {
		for _, c := range row {
			if c != nil {
				out = append(out, c)
			}
		}
	}

	return out
}

// Len returns the number of cells, holes excluded.
func (p *Pond) Len() int {
	n := 0
	for _, row := range p.cells {
		for _, c := range row {
			if c != nil {
				n++
			}
		}
	}

	return n
}

// Reset returns every cell to Unvisited and refills food cells, so the pond
// can be searched again.
func (p *Pond) Reset() {
	for _, c := range p.Cells() {
		c.reset()
	}
}

// String renders the pond in the text format, odd rows indented by one space.
func (p *Pond) String() string {
	var sb strings.Builder
	for r, row := range p.cells {
		if r&1 == 1 {
			sb.WriteByte(' ')
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if cell == nil {
				sb.WriteByte('-')
				continue
			}
			sb.WriteString(cell.token())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// IDMap renders the pond with each cell replaced by its ID, right aligned,
// odd rows shifted by half a column.
func (p *Pond) IDMap() string {
	width := len(strconv.Itoa(p.Rows*p.Cols - 1))
	var sb strings.Builder
	for r, row := range p.cells {
		if r&1 == 1 {
			sb.WriteString(strings.Repeat(" ", (width+1)/2))
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if cell == nil {
				sb.WriteString(fmt.Sprintf("%*s", width, "-"))
				continue
			}
			sb.WriteString(fmt.Sprintf("%*d", width, cell.id))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
