// Package cli implements the vectortrace command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/trace"
)

// options holds the flag values of one command invocation.
type options struct {
	reserve    int
	initial    []int
	markdown   bool
	noContents bool
}

// NewRootCommand returns the vectortrace root command.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "vectortrace [flags] OPS...",
		Short: "Replay vector operations and print the size/capacity history",
		Long: `vectortrace applies a script of operations to a vector of ints and prints
one table row per operation with the resulting size, capacity and contents.

Operations:
  push:V        append V
  pop           remove the last element
  insert:P:V    insert V at position P (0 <= P <= size)
  erase:P       remove the element at position P (0 <= P < size)
  resize:N      set the size to N
  reserve:N     make the capacity at least N
  clear         set the size to 0`,
		Example:       "  vectortrace push:1 push:2 push:3 insert:0:9 erase:1\n  vectortrace --init 1,2,3 --markdown resize:0 resize:5",
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.reserve, "reserve", "r", 0, "start from an empty vector with N slots reserved")
	cmd.Flags().IntSliceVarP(&opts.initial, "init", "i", nil, "start from these elements, e.g. 1,2,3")
	cmd.Flags().BoolVarP(&opts.markdown, "markdown", "m", false, "render a markdown table")
	cmd.Flags().BoolVar(&opts.noContents, "no-contents", false, "omit the contents column")

	return cmd
}

// Execute runs the root command with the given arguments.
func Execute(ctx context.Context, version string, args []string) error {
	cmd := NewRootCommand(version)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if opts.reserve < 0 {
		return fmt.Errorf("--reserve must not be negative, got %d", opts.reserve)
	}

	ops, err := trace.ParseOps(args)
	if err != nil {
		return err
	}

	var v *vector.Vector[int]
	if len(opts.initial) > 0 {
		v = vector.Of(opts.initial...)
		v.Reserve(opts.reserve)
	} else {
		v = vector.NewReserved[int](vector.Reserve(opts.reserve))
	}

	steps, replayErr := trace.Replay(v, ops)
	if err := trace.Render(cmd.OutOrStdout(), steps, trace.RenderOptions{
		Markdown: opts.markdown,
		Contents: !opts.noContents,
	}); err != nil {
		return err
	}
	return replayErr
}
