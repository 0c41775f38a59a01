// Command burrow solves token-sorting burrow diagrams at minimum cost.
//
// Usage:
//
//	burrow solve [file] [--config burrow.yaml] [--trace] [--unfold]
//	                    [--max-expansions N] [--log-level debug]
//
// The diagram is read from file, or from stdin when no file is given.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "burrow",
		Short:        "Sort tokens into their home rooms at minimum cost",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd())

	return root
}
