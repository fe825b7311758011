// Package frogpath computes a frog's route across a pond of hexagonal cells.
//
// What:
//
//   - FindPath runs a greedy depth-first search from the pond's start cell.
//     At each step the best-scoring valid candidate is pushed onto the path;
//     a cell with no candidate is popped and retired for good.
//   - Score / ScoreFrom rank candidates (lower is better): food by fly count,
//     then End, LilyPad, Reeds, Water, with reeds next to an alligator pushed
//     to the back.
//   - From a lily pad or the start cell the frog may also jump two cells,
//     at a penalty of 0.5 for a roughly straight jump and 1.0 otherwise.
//
// Why:
//
//   - Deterministic, explainable routing on small hex boards where a local
//     preference order matters more than global optimality.
//
// Validity:
//
// A candidate is skipped when it is absent, the start cell, already on the
// path or retired, mud, an alligator, or (unless it is reeds) next to an
// alligator.
//
// Complexity:
//
//   - Each iteration either pushes an unvisited cell or retires one, so the
//     loop runs at most 2×|cells| times.
//   - Each step scores ≤ 6 direct and ≤ 36 two-hop candidates: O(1) per step.
//   - Time O(|cells|), Memory O(|cells|).
//
// Options:
//
//   - WithOnVisit(fn)   called with the ID of each active cell, in trace order.
//   - WithOnHop(fn)     called for every push with the chosen score.
//   - WithOnRetire(fn)  called when a dead-end cell is popped.
//   - WithOnEat(fn)     called when a food cell is emptied.
//
// Errors:
//
//   - ErrNilPond  the pond pointer is nil.
//   - ErrNoStart  the pond has no start cell.
//
// Not finding a route is not an error: the Result reports NoSolution.
package frogpath
