// Package pricing turns a vendor plan and a consumption quantity into a
// total cost.
//
// Pricing is a total function over float64: it never validates its inputs.
// NaN and infinities in the plan or the quantity flow through to the total
// following IEEE-754 arithmetic, and callers that want range checks do them
// before pricing.
package pricing

import (
	"math"

	"tariff-compare/core/types"
)

// Round2 rounds x to two decimal places, half away from zero on the scaled
// value.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Total is the rounded cost of consuming quantity units under plan.
// Rounding is applied once, to the final sum.
func Total(plan types.VendorPlan, quantity float64) float64 {
	return Round2(plan.FixedFee + plan.UnitRate*quantity)
}

// Price prices plan at quantity.
func Price(plan types.VendorPlan, quantity float64) types.PricedPlan {
	return types.PricedPlan{
		VendorName: plan.VendorName,
		PlanName:   plan.PlanName,
		FixedFee:   plan.FixedFee,
		UnitRate:   plan.UnitRate,
		InfoLink:   plan.InfoLink,
		TotalCost:  Total(plan, quantity),
	}
}
