package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tariff-compare/adapters/importer"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import vendor plans from a CSV, HCL or YAML file",
		Long: `Import vendor plans from a file. The format is picked by extension:

  .csv, .txt   header line, then vendorName,planName,fixedFee,unitRate,infoLink
  .hcl         vendor "<name>" { plan "<name>" { fixed_fee, unit_rate, info_link } }
  .yaml, .yml  vendors: [{vendorName, planName, fixedFee, unitRate, infoLink}]

A malformed document is rejected as a whole. Without --save the parsed plans
are only printed.`,
		Args: cobra.ExactArgs(1),
		RunE: runWithEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			plans, err := importer.ParseFile(args[0])
			if err != nil {
				return err
			}
			e.logger.Debug("import parsed", zap.String("file", args[0]), zap.Int("count", len(plans)))

			e.ui.SubHeader(fmt.Sprintf("%d plans in %s", len(plans), args[0]))
			renderPlans(e.ui, plans)
			if !save {
				e.ui.Info("%d plans parsed; use --save to keep them", len(plans))
				return nil
			}

			status := e.engine.ImportCustom(cmd.Context(), plans)
			if !status.OK() {
				e.reportStore("saved", status)
				return nil
			}
			e.ui.Success("saved %d plans", len(plans))
			return nil
		}),
	}

	cmd.Flags().BoolVar(&save, "save", false, "add the imported plans to your custom vendors")
	return cmd
}
