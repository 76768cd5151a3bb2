// Package catalog - Plan validation
// Turns raw user-entered fields into plans and checks plan integrity.
package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

// ParseAmount parses a fee or rate field. Surrounding whitespace is ignored;
// the remainder must be a finite decimal number ("0.15", "-3", "1e2").
// decimal decides the accepted syntax; the float conversion goes through
// strconv, which stays linear in the input for huge exponents.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.Format(errors.MsgInvalidNumber)
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return 0, errors.Wrap(errors.TypeFormat, errors.MsgInvalidNumber, err)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errors.Format(errors.MsgInvalidNumber)
	}
	return f, nil
}

// FromFields builds a plan from user-entered form fields.
func FromFields(vendorName, planName, fixedFee, unitRate, infoLink string) (types.VendorPlan, error) {
	plan := types.VendorPlan{
		VendorName: strings.TrimSpace(vendorName),
		PlanName:   strings.TrimSpace(planName),
		InfoLink:   strings.TrimSpace(infoLink),
	}

	var err error
	if plan.FixedFee, err = ParseAmount(fixedFee); err != nil {
		return types.VendorPlan{}, withField(err, "fixedFee", fixedFee)
	}
	if plan.UnitRate, err = ParseAmount(unitRate); err != nil {
		return types.VendorPlan{}, withField(err, "unitRate", unitRate)
	}

	if errs := Validate(plan, DefaultValidationRules()); len(errs) > 0 {
		return types.VendorPlan{}, errs[0]
	}
	return plan, nil
}

func withField(err error, field, value string) error {
	if e, ok := errors.As(err); ok {
		return e.WithContext("field", field).WithContext("value", value)
	}
	return err
}

// ValidationRule is a plan validation rule
type ValidationRule func(types.VendorPlan) error

// DefaultValidationRules returns the rules applied to user-entered plans
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateVendorName,
		validatePlanName,
		validateFinite,
	}
}

// Validate checks a plan against rules and returns every violation
func Validate(plan types.VendorPlan, rules []ValidationRule) []error {
	var errs []error
	for _, rule := range rules {
		if err := rule(plan); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// CheckAmounts rejects the first plan whose fee or rate is NaN or infinite.
// The error matches ParseAmount's, with the 1-based record position and the
// offending field attached.
func CheckAmounts(plans []types.VendorPlan) error {
	for i, p := range plans {
		for _, f := range []struct {
			name  string
			value float64
		}{{"fixedFee", p.FixedFee}, {"unitRate", p.UnitRate}} {
			if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
				return errors.Format(errors.MsgInvalidNumber).
					WithContext("record", i+1).
					WithContext("field", f.name).
					WithContext("value", strconv.FormatFloat(f.value, 'g', -1, 64))
			}
		}
	}
	return nil
}

func validateVendorName(p types.VendorPlan) error {
	if strings.TrimSpace(p.VendorName) == "" {
		return errors.Input("vendor name is required")
	}
	return nil
}

func validatePlanName(p types.VendorPlan) error {
	if strings.TrimSpace(p.PlanName) == "" {
		return errors.Input("plan name is required")
	}
	return nil
}

func validateFinite(p types.VendorPlan) error {
	for _, v := range []float64{p.FixedFee, p.UnitRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Input("fees and rates must be finite")
		}
	}
	return nil
}
