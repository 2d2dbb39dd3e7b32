package main

import (
	"fmt"

	"github.com/leoware/pqp-go/estimand"
	"github.com/leoware/pqp-go/estimate"
	"github.com/leoware/pqp-go/identify"
	"github.com/leoware/pqp-go/symbols"
	"github.com/spf13/cobra"
)

func newEstimateCmd() *cobra.Command {
	var configPath string
	var showLedger bool

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Identify and numerically estimate a causal query",
		Long:  "Estimate loads a graph, an ATE/CATE query, and an inline dataset from --config, identifies the query against the graph, then evaluates the resulting expression with a Dirichlet-smoothed multinomial estimator.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cfg.Dataset == nil {
				return fmt.Errorf("config: dataset is required for estimate")
			}

			g, err := buildGraph(cfg.Graph)
			if err != nil {
				return err
			}

			est, err := buildEstimand(cfg.Query)
			if err != nil {
				return fmt.Errorf("building query: %w", err)
			}

			idResult, err := identify.IdentifyEstimand(est, g)
			if err != nil {
				return fmt.Errorf("identify: %w", err)
			}
			expr, err := idResult.IdentifiedEstimand()
			if err != nil {
				return err
			}

			view, err := buildView(*cfg.Dataset)
			if err != nil {
				return fmt.Errorf("building dataset: %w", err)
			}

			opts := []estimate.EstimatorOption{estimate.WithPrior(cfg.Dataset.Prior)}
			if cfg.Dataset.Coerce != nil {
				opts = append(opts, estimate.WithCoerce(*cfg.Dataset.Coerce))
			}

			estimator, err := estimate.NewMultinomialEstimator(view, opts...)
			if err != nil {
				return fmt.Errorf("building estimator: %w", err)
			}

			log.Debug().Int("rows", view.RowsCount()).Float64("prior", cfg.Dataset.Prior).Msg("dataset loaded")

			identifiedEst := estimand.NewGeneric(expr)
			result, err := estimator.Estimate(identifiedEst, map[symbols.Variable]interface{}{})
			if err != nil {
				return fmt.Errorf("estimate: %w", err)
			}

			value, err := result.Value()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)

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

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML graph/query/dataset config (required)")
	cmd.Flags().BoolVar(&showLedger, "ledger", false, "print the provenance ledger explanation")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
