package upq_test

import (
	"fmt"

	"github.com/katalvlaran/hexhop/upq"
)

// ExampleQueue shows uniqueness and the FIFO tie-break among equal priorities.
func ExampleQueue() {
	q := upq.New[string]()
	q.Add("reeds", 5)
	q.Add("lily", 4)
	q.Add("pad", 4)
	q.Add("lily", 0) // already queued: ignored

	for !q.IsEmpty() {
		item, _ := q.RemoveMin()
		fmt.Println(item)
	}

	// Output:
	// lily
	// pad
	// reeds
}
