package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			restoreTerminal()

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDISPENSER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
