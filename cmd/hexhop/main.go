// hexhop finds a frog's route across a hexagonal pond.
//
// Usage:
//
//	hexhop solve <pond-file> [--trace] [--verbose]
//	hexhop show  <pond-file>
//
// Pond files use the text format of package pond, or YAML when the file ends
// in .yaml or .yml.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errNoSolution) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
