// Command closet runs the closet manager terminal UI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "closet: %v\n", err)
		os.Exit(1)
	}
}
