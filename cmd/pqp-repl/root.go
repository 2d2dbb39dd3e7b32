package main

import (
	"github.com/spf13/cobra"
)

var verbose bool

// newRootCmd builds the pqp-repl command tree: identify and estimate,
// each taking a --config YAML file describing the graph and/or dataset.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pqp-repl",
		Short:         "Symbolic causal identification and estimation",
		Long:          "pqp-repl loads a causal graph and query from a YAML config and either identifies the query against the graph or estimates it against an inline dataset.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerologSetDebug()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newIdentifyCmd())
	root.AddCommand(newEstimateCmd())

	return root
}
