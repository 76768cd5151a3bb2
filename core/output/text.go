package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tariff-compare/core/ui"
)

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type cliFormatter struct {
	opts Options
}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) RenderRanking(w io.Writer, report RankingReport) error {
	out := ui.NewWriter(w, f.opts.NoColor)
	if len(report.RankedPlans) == 0 {
		out.Warning("no vendors to rank")
		return nil
	}

	best := report.RankedPlans[0]
	box := out.NewCheapestBox()
	box.Quantity = number(report.Quantity)
	box.Vendor = best.VendorName
	box.Plan = best.PlanName
	box.Total = best.TotalCost.Display(f.opts.Currency)
	box.Plans = len(report.RankedPlans)
	box.Render()

	out.Println("")
	table := out.NewTable("#", "Vendor", "Plan", "Fixed fee", "Rate/kWh", "Total").HighlightFirst()
	for _, r := range report.RankedPlans {
		table.AddRow(strconv.Itoa(r.Rank), r.VendorName, r.PlanName,
			number(r.FixedFee), number(r.UnitRate), r.TotalCost.Display(f.opts.Currency))
	}
	table.Render()
	return nil
}

func (f *cliFormatter) RenderLadder(w io.Writer, report LadderReport) error {
	out := ui.NewWriter(w, f.opts.NoColor)
	out.Header("Cheapest plan per consumption level")
	if len(report.Cheapest) == 0 {
		out.Warning("no vendors to rank")
		return nil
	}

	table := out.NewTable("kWh", "Vendor", "Plan", "Total", "Runner-up")
	for _, c := range report.Cheapest {
		runnerUp := "-"
		if c.RunnerUp != nil {
			runnerUp = c.RunnerUp.Display(f.opts.Currency)
		}
		table.AddRow(number(c.Quantity), c.Plan.VendorName, c.Plan.PlanName,
			c.Plan.TotalCost.Display(f.opts.Currency), runnerUp)
	}
	table.Render()
	return nil
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) RenderRanking(w io.Writer, report RankingReport) error {
	return writeJSON(w, report)
}

func (f *jsonFormatter) RenderLadder(w io.Writer, report LadderReport) error {
	return writeJSON(w, report)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type markdownFormatter struct {
	opts Options
}

func (f *markdownFormatter) Format() Format { return FormatMarkdown }

func (f *markdownFormatter) RenderRanking(w io.Writer, report RankingReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "## Ranking at %s kWh\n\n", number(report.Quantity))
	b.WriteString("| # | Vendor | Plan | Fixed fee | Rate/kWh | Total |\n")
	b.WriteString("|---|---|---|---:|---:|---:|\n")
	for _, r := range report.RankedPlans {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			r.Rank, mdVendor(r), mdEscape(r.PlanName),
			number(r.FixedFee), number(r.UnitRate), r.TotalCost.Display(f.opts.Currency))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *markdownFormatter) RenderLadder(w io.Writer, report LadderReport) error {
	var b strings.Builder
	b.WriteString("## Cheapest plan per consumption level\n\n")
	b.WriteString("| kWh | Vendor | Plan | Total |\n")
	b.WriteString("|---:|---|---|---:|\n")
	for _, c := range report.Cheapest {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			number(c.Quantity), mdVendor(c.Plan), mdEscape(c.Plan.PlanName), c.Plan.TotalCost.Display(f.opts.Currency))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func mdVendor(r RankedRow) string {
	if r.InfoLink == "" {
		return mdEscape(r.VendorName)
	}
	return "[" + mdEscape(r.VendorName) + "](" + r.InfoLink + ")"
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

type csvFormatter struct{}

func (f *csvFormatter) Format() Format { return FormatCSV }

var csvHeader = []string{"quantity", "rank", "vendorName", "planName", "fixedFee", "unitRate", "infoLink", "totalCost"}

func (f *csvFormatter) RenderRanking(w io.Writer, report RankingReport) error {
	return f.RenderLadder(w, LadderReport{Levels: []RankingReport{report}})
}

func (f *csvFormatter) RenderLadder(w io.Writer, report LadderReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, level := range report.Levels {
		for _, r := range level.RankedPlans {
			record := []string{
				number(level.Quantity), strconv.Itoa(r.Rank), r.VendorName, r.PlanName,
				number(r.FixedFee), number(r.UnitRate), r.InfoLink, r.TotalCost.String(),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
