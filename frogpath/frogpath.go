package frogpath

import (
	"errors"

	"github.com/katalvlaran/hexhop/pond"
	"github.com/katalvlaran/hexhop/upq"
)

// twoHopCapacity fits every direct and two-hop candidate of one step.
const twoHopCapacity = pond.Sides + pond.Sides*pond.Sides

// walker holds the mutable state of one FindPath call.
type walker struct {
	pond  *pond.Pond
	opts  Options
	path  []*pond.Cell // LIFO; last element is the active cell
	res   *Result
	start *pond.Cell
}

// FindPath searches p from its start cell toward its end cell.
//
// Each iteration records the active cell in Result.Trace, stops if it is the
// end, eats any flies on it, then pushes the best candidate from findBest or,
// when there is none, pops the cell and retires it.
//
// The search mutates cell state and fly counts; call p.Reset before searching
// the same pond again. Only a nil pond or a missing start cell is an error;
// an unreachable end is reported as State NoSolution.
//
// Complexity: Time O(|cells|), Memory O(|cells|).
func FindPath(p *pond.Pond, opts ...Option) (*Result, error) {
	// 1. Validate input
	if p == nil {
		return nil, ErrNilPond
	}
	start := p.Start()
	if start == nil {
		return nil, ErrNoStart
	}

	// 2. Apply options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Seed the path with the start cell
	n := p.Len()
	w := &walker{
		pond:  p,
		opts:  cfg,
		path:  make([]*pond.Cell, 0, n),
		res:   &Result{State: Searching, Trace: make([]string, 0, 2*n)},
		start: start,
	}
	w.push(start)

	// 4. Run
	w.run()

	return w.res, nil
}

// run drives the search until the end is reached or the path empties.
func (w *walker) run() {
	for len(w.path) > 0 {
		curr := w.path[len(w.path)-1]
		w.res.Steps++
		w.res.Trace = append(w.res.Trace, curr.ID())
		if w.opts.OnVisit != nil {
			w.opts.OnVisit(curr.ID())
		}

		if curr.IsEnd() {
			w.res.State = Solved
			w.res.Path = w.pathIDs()
			return
		}

		w.eat(curr)

		next, score, ok := w.findBest(curr)
		if !ok {
			w.pop()
			continue
		}
		if w.opts.OnHop != nil {
			w.opts.OnHop(curr.ID(), next.ID(), score)
		}
		w.push(next)
	}

	w.res.State = NoSolution
}

// eat empties a food cell into the tally. Flies are taken once; a revisit
// after backtracking finds none left.
func (w *walker) eat(cell *pond.Cell) {
	food, ok := cell.AsFood()
	if !ok || food.Flies() == 0 {
		return
	}
	n := food.Consume()
	w.res.Flies += n
	if w.opts.OnEat != nil {
		w.opts.OnEat(cell.ID(), n)
	}
}

// push appends cell to the path and marks it in-stack.
func (w *walker) push(cell *pond.Cell) {
	w.path = append(w.path, cell)
	cell.MarkInStack()
}

// pop removes the active cell and retires it.
func (w *walker) pop() {
	last := len(w.path) - 1
	cell := w.path[last]
	w.path[last] = nil
	w.path = w.path[:last]

	cell.MarkRetired()
	w.res.Retired++
	if w.opts.OnRetire != nil {
		w.opts.OnRetire(cell.ID())
	}
}

// findBest returns the lowest-scoring valid candidate from curr and its score.
// ok is false when no candidate exists.
func (w *walker) findBest(curr *pond.Cell) (*pond.Cell, float64, bool) {
	q := upq.New[*pond.Cell](upq.WithCapacity(twoHopCapacity))

	// 1. Direct neighbours
	for i := 0; i < pond.Sides; i++ {
		nb, ok := curr.Neighbor(i)
		if ok && w.valid(nb) {
			q.Add(nb, Score(nb))
		}
	}

	// 2. Two-hop jumps from a lily pad or the start. The middle cell need not
	//    be valid; the frog jumps over it. First score wins on duplicates.
	if curr.IsLilyPad() || curr.IsStart() {
		for i := 0; i < pond.Sides; i++ {
			nb, ok := curr.Neighbor(i)
			if !ok {
				continue
			}
			for j := 0; j < pond.Sides; j++ {
				far, ok := nb.Neighbor(j)
				if ok && w.valid(far) {
					q.Add(far, ScoreFrom(far, curr))
				}
			}
		}
	}

	// 3. Take the best
	head, err := q.Peek()
	if errors.Is(err, upq.ErrEmptyQueue) {
		return nil, 0, false
	}
	score, _ := q.Priority(head)
	best, _ := q.RemoveMin()

	return best, score, true
}

// valid reports whether cell may be pushed. It rejects the start cell, cells
// on the path or retired, mud, alligators, and non-reeds cells that border an
// alligator.
func (w *walker) valid(cell *pond.Cell) bool {
	switch {
	case cell == nil:
		return false
	case cell == w.start:
		return false
	case cell.IsMarked(), cell.IsMud(), cell.IsAlligator():
		return false
	case cell.IsReeds():
		return true
	}

	return !nearAlligator(cell)
}

// pathIDs returns the IDs of the cells currently on the path.
func (w *walker) pathIDs() []string {
	ids := make([]string, len(w.path))
	for i, c := range w.path {
		ids[i] = c.ID()
	}

	return ids
}
