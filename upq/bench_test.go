package upq_test

import (
	"testing"

	"github.com/katalvlaran/hexhop/upq"
)

// BenchmarkQueue_TwoHopStep models one search step: 36 candidates added, one removed.
func BenchmarkQueue_TwoHopStep(b *testing.B) {
	for i := 0; i < b.N; i++ {
		q := upq.New[int]()
		for c := 0; c < 36; c++ {
			q.Add(c, float64(c%7)+0.5)
		}
		_, _ = q.RemoveMin()
	}
}
