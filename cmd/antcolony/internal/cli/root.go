// Package cli wires the antcolony command's subcommands: run (one solver
// invocation against a graph file) and bench (the CSV benchmark harness).
package cli

import (
	"github.com/spf13/cobra"
)

// Root returns the top-level antcolony command with run and bench wired
// in as subcommands.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "antcolony",
		Short: "Parallel ant colony optimization for the Traveling Salesman Problem",
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newBenchCommand())
	return root
}
