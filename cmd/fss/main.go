package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/dumblebots/fss/internal/cli"
	"github.com/dumblebots/fss/pkg/fss"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(fss.ExitPanic)
		}
	}()

	if os.Getenv("FSS_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(fss.ExitCodeForError(err))
	}
}
