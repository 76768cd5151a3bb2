package cmd

import (
	"github.com/spf13/cobra"

	"tariff-compare/core/catalog"
	"tariff-compare/core/output"
	"tariff-compare/internal/errors"
)

func newRankCmd(opts *rootOptions) *cobra.Command {
	var quantity, format string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank every plan at one consumption quantity",
		Long: `Price every vendor plan at the given quantity (kWh) and list them
cheapest first. Plans with equal totals keep catalog order: built-in vendors
first, then your own in the order they were added.`,
		Args: cobra.NoArgs,
		RunE: runWithEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			if quantity == "" {
				return errors.Input("--quantity is required")
			}
			q, err := catalog.ParseAmount(quantity)
			if err != nil {
				return err
			}
			f, err := e.format(format)
			if err != nil {
				return err
			}

			ranked, status := e.engine.RankAt(cmd.Context(), q)
			e.reportStore("loaded", status)
			return output.RenderRanking(e.out, f, q, ranked, e.outputOptions())
		}),
	}

	cmd.Flags().StringVarP(&quantity, "quantity", "q", "", "consumption in kWh [REQUIRED]")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (cli, json, markdown, csv)")
	return cmd
}

func newLadderCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ladder",
		Short: "Rank every plan at each standard consumption level",
		Long:  `Rank every vendor plan at 100, 200, ... 1500 kWh.`,
		Args:  cobra.NoArgs,
		RunE: runWithEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			f, err := e.format(format)
			if err != nil {
				return err
			}

			buckets, status := e.engine.RankAllLevels(cmd.Context())
			e.reportStore("loaded", status)
			return output.RenderLadder(e.out, f, buckets, e.outputOptions())
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (cli, json, markdown, csv)")
	return cmd
}
