package frogpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexhop/frogpath"
)

// TestScore covers each rule of the scoring cascade, including overrides.
func TestScore(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		id   string
		want float64
	}{
		{"ThreeFlies", []string{"S 3 E"}, "1", frogpath.ScoreThreeFlies},
		{"TwoFlies", []string{"S 2 E"}, "1", frogpath.ScoreTwoFlies},
		{"OneFly", []string{"S 1 E"}, "1", frogpath.ScoreOneFly},
		{"EndOnWater", []string{"S . E"}, "2", frogpath.ScoreEnd},
		{"EndOnFood", []string{"S . E3"}, "2", frogpath.ScoreEnd},
		{"LilyPad", []string{"S L E"}, "1", frogpath.ScoreLilyPad},
		{"Reeds", []string{"S R E"}, "1", frogpath.ScoreReeds},
		{"Water", []string{"S . E"}, "1", frogpath.ScoreWater},
		{"ReedsNearAlligator", []string{"S R A E"}, "1", frogpath.ScoreReedsNearAlligator},
		{"EndOnReedsNearAlligator", []string{"S A ER"}, "2", frogpath.ScoreReedsNearAlligator},
		{"WaterNearAlligatorKeepsWater", []string{"S . A E"}, "1", frogpath.ScoreWater},
		{"Mud", []string{"S M E"}, "1", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPond(t, tc.rows...)
			assert.Equal(t, tc.want, frogpath.Score(cellAt(t, p, tc.id)))
		})
	}
}

// TestScore_EatenFood checks that an emptied food cell falls through to 0.
func TestScore_EatenFood(t *testing.T) {
	p := mustPond(t, "S 2 E")
	food, ok := cellAt(t, p, "1").AsFood()
	require.True(t, ok)
	food.Consume()

	assert.Equal(t, 0.0, frogpath.Score(cellAt(t, p, "1")))
}

// TestScoreFrom checks the straight and bent jump penalties.
//
// Layout (odd-r), IDs:
//
//	0 1 2
//	 3 4 5
//	6 7 8
func TestScoreFrom(t *testing.T) {
	p := mustPond(t,
		"S . .",
		". L .",
		". . E",
	)
	from := p.Start()

	cases := []struct {
		name string
		id   string
		want float64
	}{
		{"StraightEast", "2", frogpath.ScoreWater + frogpath.PenaltyStraightJump},
		{"StraightSouth", "6", frogpath.ScoreWater + frogpath.PenaltyStraightJump},
		{"AdjacentSharesTwo", "4", frogpath.ScoreLilyPad + frogpath.PenaltyJump},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, frogpath.ScoreFrom(cellAt(t, p, tc.id), from))
		})
	}
}
