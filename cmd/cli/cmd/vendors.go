package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"tariff-compare/core/catalog"
	"tariff-compare/core/types"
	"tariff-compare/core/ui"
	"tariff-compare/internal/errors"
)

func newVendorsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "List and manage your own vendors",
	}
	cmd.AddCommand(
		newVendorsListCmd(opts),
		newVendorsAddCmd(opts),
		newVendorsEditCmd(opts),
		newVendorsRemoveCmd(opts),
	)
	return cmd
}

func newVendorsListCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom vendors (with --all, the built-in ones too)",
		Args:  cobra.NoArgs,
		RunE: runWithEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			var (
				plans  []types.VendorPlan
				status types.StoreStatus
			)
			if all {
				plans, status = e.engine.Vendors(cmd.Context())
			} else {
				plans, status = e.engine.Custom(cmd.Context())
			}
			e.reportStore("loaded", status)

			if len(plans) == 0 {
				e.ui.Info("no custom vendors; add one with 'tariffs vendors add' or 'tariffs import'")
				return nil
			}
			renderPlans(e.ui, plans)
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include built-in vendors")
	return cmd
}

func newVendorsAddCmd(opts *rootOptions) *cobra.Command {
	var vendor, plan, fee, rate, link string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom vendor plan",
		Args:  cobra.NoArgs,
		RunE: runWithEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			p, err := catalog.FromFields(vendor, plan, fee, rate, link)
			if err != nil {
				return err
			}

			status := e.engine.AddCustom(cmd.Context(), p)
			if !status.OK() {
				e.reportStore("saved", status)
				return nil
			}
			e.ui.Success("added %s", p.Key())
			return nil
		}),
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name [REQUIRED]")
	cmd.Flags().StringVar(&plan, "plan", "", "plan name [REQUIRED]")
	cmd.Flags().StringVar(&fee, "fee", "", "fixed monthly fee [REQUIRED]")
	cmd.Flags().StringVar(&rate, "rate", "", "price per kWh [REQUIRED]")
	cmd.Flags().StringVar(&link, "link", "", "link to the vendor's plan page")
	return cmd
}

func newVendorsEditCmd(opts *rootOptions) *cobra.Command {
	var vendor, plan, fee, rate, link string

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Replace a custom vendor plan; the edited plan moves to the end of the list",
		Long: `Replace the custom vendor at <index> in 'vendors list'. Flags left out
keep the plan's current value.`,
		Args: cobra.ExactArgs(1),
		RunE: runWithEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			custom, status := e.engine.Custom(cmd.Context())
			if !status.OK() {
				e.reportStore("loaded", status)
				return nil
			}
			if index < 0 || index >= len(custom) {
				return errors.NotFound("custom vendor", args[0])
			}

			// unset flags keep the current values
			current := custom[index]
			flags := cmd.Flags()
			if !flags.Changed("vendor") {
				vendor = current.VendorName
			}
			if !flags.Changed("plan") {
				plan = current.PlanName
			}
			if !flags.Changed("fee") {
				fee = strconv.FormatFloat(current.FixedFee, 'f', -1, 64)
			}
			if !flags.Changed("rate") {
				rate = strconv.FormatFloat(current.UnitRate, 'f', -1, 64)
			}
			if !flags.Changed("link") {
				link = current.InfoLink
			}

			p, err := catalog.FromFields(vendor, plan, fee, rate, link)
			if err != nil {
				return err
			}
			status, err = e.engine.ReplaceCustom(cmd.Context(), index, p)
			if err != nil {
				return err
			}
			if !status.OK() {
				e.reportStore("saved", status)
				return nil
			}
			e.ui.Success("replaced %s with %s", current.Key(), p.Key())
			return nil
		}),
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name")
	cmd.Flags().StringVar(&plan, "plan", "", "plan name")
	cmd.Flags().StringVar(&fee, "fee", "", "fixed monthly fee")
	cmd.Flags().StringVar(&rate, "rate", "", "price per kWh")
	cmd.Flags().StringVar(&link, "link", "", "link to the vendor's plan page")
	return cmd
}

func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Input("index must be an integer").WithContext("index", raw)
	}
	return index, nil
}

func newVendorsRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove a custom vendor by its index in 'vendors list'",
		Args:  cobra.ExactArgs(1),
		RunE: runWithEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			removed, status, err := e.engine.RemoveCustom(cmd.Context(), index)
			if err != nil {
				return err
			}
			if !status.OK() {
				e.reportStore("saved", status)
				return nil
			}
			e.ui.Success("removed %s", removed.Key())
			return nil
		}),
	}
}

func newDefaultsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "List the built-in vendor catalog",
		Args:  cobra.NoArgs,
		RunE: runWithEnv(opts, func(cmd *cobra.Command, args []string, e *env) error {
			renderPlans(e.ui, e.engine.Defaults())
			return nil
		}),
	}
}

// renderPlans prints plans as an indexed table
func renderPlans(w *ui.Writer, plans []types.VendorPlan) {
	table := w.NewTable("#", "Vendor", "Plan", "Fixed fee", "Rate/kWh", "Link")
	for i, p := range plans {
		table.AddRow(strconv.Itoa(i), p.VendorName, p.PlanName,
			strconv.FormatFloat(p.FixedFee, 'f', -1, 64),
			strconv.FormatFloat(p.UnitRate, 'f', -1, 64),
			p.InfoLink)
	}
	table.Render()
}
