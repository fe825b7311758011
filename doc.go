// Package hexhop routes a frog across a pond of hexagonal cells.
//
// A pond is a finite hex grid whose cells are water, mud, reeds, lily pads,
// alligators, or food (cells holding 1 to 3 flies). One cell is the start and
// one the end. The frog walks greedily: at every step it hops to the best
// cell it can reach, backs out of dead ends, and eats any flies it lands on.
//
// Under the hood, everything is organized under three subpackages:
//
//	upq/       unique priority queue: ascending order, FIFO ties, no duplicates
//	pond/      cells, hex adjacency, text and YAML loaders
//	frogpath/  candidate scoring, validity rules, backtracking search
//
// and one command:
//
//	cmd/hexhop  `hexhop solve <file>` and `hexhop show <file>`
//
// Quick example:
//
//	E . . S 3 M
//
// The frog starts at S (cell 3), eats the 3 flies next door (cell 4), finds
// only mud beyond, backs out to S, and hops west to E:
//
//	3 4 3 2 1 0 ate 3 flies
//
//	go get github.com/katalvlaran/hexhop
package hexhop
