package frogpath_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hexhop/frogpath"
	"github.com/katalvlaran/hexhop/pond"
)

// ExampleFindPath crosses a small pond. The frog takes the food first, finds
// it a dead end, backtracks to the start, and then hops along the water.
//
//	E . . S 3 M
func ExampleFindPath() {
	p, err := pond.Parse(strings.NewReader("E . . S 3 M"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := frogpath.FindPath(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	fmt.Println("path:", strings.Join(res.Path, " "))

	// Output:
	// 3 4 3 2 1 0 ate 3 flies
	// path: 3 2 1 0
}
