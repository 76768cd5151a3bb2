// Package output provides output formatting for rankings.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"strings"

	"tariff-compare/core/ranking"
	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"

	// FormatCSV is comma-separated values
	FormatCSV Format = "csv"
)

// Formats lists every supported format
func Formats() []Format {
	return []Format{FormatCLI, FormatJSON, FormatMarkdown, FormatCSV}
}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Input("unknown output format: " + s).WithContext("format", s)
}

// Options control rendering
type Options struct {
	// Currency is an ISO 4217 code used for display
	Currency string

	// NoColor disables ANSI colors in CLI output
	NoColor bool
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderRanking renders plans ranked at one quantity
	RenderRanking(w io.Writer, report RankingReport) error

	// RenderLadder renders the ranking at every ladder quantity
	RenderLadder(w io.Writer, report LadderReport) error
}

// New returns the formatter for format
func New(format Format, opts Options) (Formatter, error) {
	if opts.Currency == "" {
		opts.Currency = "EUR"
	}
	switch format {
	case FormatCLI:
		return &cliFormatter{opts: opts}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatMarkdown:
		return &markdownFormatter{opts: opts}, nil
	case FormatCSV:
		return &csvFormatter{}, nil
	default:
		return nil, errors.Input("unknown output format: " + string(format))
	}
}

// RankedRow is one plan in a ranking
type RankedRow struct {
	Rank       int     `json:"rank"`
	VendorName string  `json:"vendorName"`
	PlanName   string  `json:"planName"`
	FixedFee   float64 `json:"fixedFee"`
	UnitRate   float64 `json:"unitRate"`
	InfoLink   string  `json:"infoLink"`
	TotalCost  Amount  `json:"totalCost"`
}

// RankingReport is the ranking at one quantity
type RankingReport struct {
	Quantity    float64     `json:"quantity"`
	Currency    string      `json:"currency,omitempty"`
	RankedPlans []RankedRow `json:"rankedPlans"`
}

// LadderReport is the ranking at every ladder quantity
type LadderReport struct {
	Currency string          `json:"currency,omitempty"`
	Levels   []RankingReport `json:"levels"`

	// Cheapest holds the winner of every level that has plans
	Cheapest []LevelWinner `json:"cheapest"`
}

// LevelWinner is the cheapest plan at one ladder quantity
type LevelWinner struct {
	Quantity float64   `json:"quantity"`
	Plan     RankedRow `json:"plan"`

	// RunnerUp is the second-best total, nil with a single plan
	RunnerUp *Amount `json:"runnerUp,omitempty"`
}

// NewRankingReport numbers ranked plans from 1
func NewRankingReport(quantity float64, ranked []types.PricedPlan, currency string) RankingReport {
	rows := make([]RankedRow, len(ranked))
	for i, p := range ranked {
		rows[i] = rankedRow(i+1, p)
	}
	return RankingReport{Quantity: quantity, Currency: currency, RankedPlans: rows}
}

func rankedRow(rank int, p types.PricedPlan) RankedRow {
	return RankedRow{
		Rank:       rank,
		VendorName: p.VendorName,
		PlanName:   p.PlanName,
		FixedFee:   p.FixedFee,
		UnitRate:   p.UnitRate,
		InfoLink:   p.InfoLink,
		TotalCost:  Amount(p.TotalCost),
	}
}

// NewLadderReport converts buckets into a report, keeping ladder order
func NewLadderReport(buckets []types.ConsumptionBucket, currency string) LadderReport {
	levels := make([]RankingReport, len(buckets))
	for i, b := range buckets {
		levels[i] = NewRankingReport(b.Quantity, b.RankedPlans, "")
	}

	// heads line up with the non-empty buckets in ladder order
	heads := ranking.Cheapest(buckets)
	winners := make([]LevelWinner, 0, len(heads))
	for _, b := range buckets {
		if len(b.RankedPlans) == 0 {
			continue
		}
		winner := LevelWinner{Quantity: b.Quantity, Plan: rankedRow(1, heads[len(winners)])}
		if len(b.RankedPlans) > 1 {
			runnerUp := Amount(b.RankedPlans[1].TotalCost)
			winner.RunnerUp = &runnerUp
		}
		winners = append(winners, winner)
	}
	return LadderReport{Currency: currency, Levels: levels, Cheapest: winners}
}

// RenderRanking renders ranked plans at quantity in format
func RenderRanking(w io.Writer, format Format, quantity float64, ranked []types.PricedPlan, opts Options) error {
	f, err := New(format, opts)
	if err != nil {
		return err
	}
	return f.RenderRanking(w, NewRankingReport(quantity, ranked, currencyOrDefault(opts.Currency)))
}

// RenderLadder renders every bucket in format
func RenderLadder(w io.Writer, format Format, buckets []types.ConsumptionBucket, opts Options) error {
	f, err := New(format, opts)
	if err != nil {
		return err
	}
	return f.RenderLadder(w, NewLadderReport(buckets, currencyOrDefault(opts.Currency)))
}

func currencyOrDefault(c string) string {
	if c == "" {
		return "EUR"
	}
	return c
}
