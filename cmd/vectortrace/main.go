// vectortrace replays a script of vector operations and prints how the
// size and capacity of the vector evolve.
//
// # Usage
//
//	vectortrace [FLAGS] OPS...
//
// # Examples
//
// Watch capacity double while appending:
//
//	vectortrace push:1 push:2 push:3 push:4 push:5
//
// Shrink and regrow a literal vector, as a markdown table:
//
//	vectortrace --init 1,2,3 --markdown resize:0 resize:5
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pavanmanishd/vector/internal/cli"
)

var version = "dev" // set by ldflags

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
