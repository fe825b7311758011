package frogpath

import "github.com/katalvlaran/hexhop/pond"

// Candidate scores; lower is better.
const (
	ScoreThreeFlies         = 0.0
	ScoreTwoFlies           = 1.0
	ScoreOneFly             = 2.0
	ScoreEnd                = 3.0
	ScoreLilyPad            = 4.0
	ScoreReeds              = 5.0
	ScoreWater              = 6.0
	ScoreReedsNearAlligator = 10.0

	// Added to two-hop candidates by ScoreFrom.
	PenaltyStraightJump = 0.5
	PenaltyJump         = 1.0
)

// Score ranks cell as a one-hop candidate. Rules apply in order and each
// later match overwrites the earlier score:
//
//  1. food: 3 flies → 0, 2 → 1, 1 → 2, none → 0
//  2. end → 3, else lily pad → 4, else reeds → 5, else water → 6
//  3. reeds next to an alligator → 10
func Score(cell *pond.Cell) float64 {
	var s float64
	if food, ok := cell.AsFood(); ok {
		switch food.Flies() {
		case 3:
			s = ScoreThreeFlies
		case 2:
			s = ScoreTwoFlies
		case 1:
			s = ScoreOneFly
		}
	}

	switch {
	case cell.IsEnd():
		s = ScoreEnd
	case cell.IsLilyPad():
		s = ScoreLilyPad
	case cell.IsReeds():
		s = ScoreReeds
	case cell.IsWater():
		s = ScoreWater
	}

	if cell.IsReeds() && nearAlligator(cell) {
		s = ScoreReedsNearAlligator
	}

	return s
}

// ScoreFrom ranks cell as a two-hop candidate reached from occupied:
// Score(cell) plus PenaltyStraightJump when the jump is roughly straight,
// PenaltyJump otherwise.
func ScoreFrom(cell, occupied *pond.Cell) float64 {
	if straightJump(cell, occupied) {
		return Score(cell) + PenaltyStraightJump
	}

	return Score(cell) + PenaltyJump
}

// straightJump reports whether exactly one (i, j) pair has
// occupied.Neighbor(j) == cell.Neighbor(i). Absent neighbours never match.
func straightJump(cell, occupied *pond.Cell) bool {
	count := 0
	for i := 0; i < pond.Sides; i++ {
		a, ok := cell.Neighbor(i)
		if !ok {
			continue
		}
		for j := 0; j < pond.Sides; j++ {
			if b, ok := occupied.Neighbor(j); ok && a == b {
				count++
			}
		}
	}

	return count == 1
}

// nearAlligator reports whether any neighbour of cell is an alligator.
func nearAlligator(cell *pond.Cell) bool {
	return cell.HasNeighbor((*pond.Cell).IsAlligator)
}
