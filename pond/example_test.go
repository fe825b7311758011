package pond_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hexhop/pond"
)

// ExamplePond_IDMap parses a small pond and prints the cell identifiers in
// their hex layout.
func ExamplePond_IDMap() {
	p, err := pond.Parse(strings.NewReader("S . L\n. 2 E\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(p.IDMap())
	fmt.Println("start:", p.Start().ID(), "end:", p.End().ID())

	// Output:
	// 0 1 2
	//  3 4 5
	// start: 0 end: 5
}
