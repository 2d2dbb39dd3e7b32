package main

import (
	"fmt"

	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/identify"
	"github.com/spf13/cobra"
)

func newIdentifyCmd() *cobra.Command {
	var configPath string
	var showLedger bool
	var latex bool

	cmd := &cobra.Command{
		Use:   "identify",
		Short: "Identify a causal query against a graph",
		Long:  "Identify loads a graph and an ATE/CATE query from --config and rewrites it into an expression over the observational distribution, or reports Hedge if no such rewrite exists.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			g, err := buildGraph(cfg.Graph)
			if err != nil {
				return err
			}

			est, err := buildEstimand(cfg.Query)
			if err != nil {
				return fmt.Errorf("building query: %w", err)
			}

			log.Debug().Strs("nodes", g.Nodes()).Msg("graph built")

			result, err := identify.IdentifyEstimand(est, g)
			if err != nil {
				return fmt.Errorf("identify: %w", err)
			}

			expr, err := result.IdentifiedEstimand()
			if err != nil {
				return err
			}

			if algebra.ContainsHedge(expr) {
				log.Warn().Msg("query is not identifiable in this graph")
			}

			if latex {
				fmt.Fprintln(cmd.OutOrStdout(), algebra.Latex(expr))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), algebra.ASCII(expr))
			}

			if showLedger {
				explain, err := result.Explain(true)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), explain)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML graph/query config (required)")
	cmd.Flags().BoolVar(&showLedger, "ledger", false, "print the provenance ledger explanation")
	cmd.Flags().BoolVar(&latex, "latex", false, "print the identified expression as LaTeX instead of ASCII")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
