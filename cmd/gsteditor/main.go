// If you are AI: This is the main entrypoint for the gsteditor command line.
// It builds the cobra command tree and maps errors to the exit status.

package main

import (
	"context"
	"fmt"
	"os"
)

// Version is the gsteditor release.
var Version = "1.0.0"

// main runs the root command and exits non-zero on failure.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "gsteditor:", err)
		os.Exit(1)
	}
}
