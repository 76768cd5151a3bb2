// Package importer decodes bulk vendor documents into plans.
//
// The delimited-text format is the primary one: a header line followed by
// comma-separated records with the columns
//
//	vendorName,planName,fixedFee,unitRate,infoLink
//
// Fields are split on every comma. There is no quoting or escaping, so a
// comma inside a value shifts the remaining columns. Header names are never
// checked, only the header's column count.
package importer

import (
	"strings"

	"tariff-compare/core/catalog"
	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

const (
	// Delimiter separates fields in a record
	Delimiter = ","

	// MinColumns is the number of required leading columns
	MinColumns = 5
)

// ParseCSV decodes a delimited-text document. Any malformed line aborts the
// whole document with a TypeFormat error; no partial result is returned.
func ParseCSV(document string) ([]types.VendorPlan, error) {
	lines := strings.Split(document, "\n")

	header := strings.TrimRight(lines[0], "\r")
	if len(strings.Split(header, Delimiter)) < MinColumns {
		return nil, errors.Format(errors.MsgTooFewColumns).
			WithContext("line", 1)
	}

	plans := make([]types.VendorPlan, 0, len(lines)-1)
	for i, line := range lines[1:] {
		lineNo := i + 2
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, Delimiter)
		if len(fields) < MinColumns {
			return nil, errors.Format(errors.MsgTooFewColumns).
				WithContext("line", lineNo).
				WithContext("columns", len(fields))
		}
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}

		plan, err := recordToPlan(fields)
		if err != nil {
			if e, ok := errors.As(err); ok {
				e.WithContext("line", lineNo)
			}
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// recordToPlan maps trimmed positional fields to a plan. Columns past the
// fifth are ignored.
func recordToPlan(fields []string) (types.VendorPlan, error) {
	fee, err := catalog.ParseAmount(fields[2])
	if err != nil {
		return types.VendorPlan{}, numericError(err, "fixedFee", fields[2])
	}
	rate, err := catalog.ParseAmount(fields[3])
	if err != nil {
		return types.VendorPlan{}, numericError(err, "unitRate", fields[3])
	}
	return types.VendorPlan{
		VendorName: fields[0],
		PlanName:   fields[1],
		FixedFee:   fee,
		UnitRate:   rate,
		InfoLink:   fields[4],
	}, nil
}

func numericError(err error, field, value string) error {
	e, ok := errors.As(err)
	if !ok {
		e = errors.Wrap(errors.TypeFormat, errors.MsgInvalidNumber, err)
	}
	return e.WithContext("field", field).WithContext("value", value)
}
