// Package ranking orders priced plans cheapest-first, at a single quantity or
// across the fixed consumption ladder.
package ranking

import (
	"sort"

	"tariff-compare/core/pricing"
	"tariff-compare/core/types"
)

// ladder is the fixed set of consumption quantities (kWh) every plan is
// ranked at. It is never mutated; Ladder hands out copies.
var ladder = [...]float64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100, 1200, 1300, 1400, 1500}

// LadderSize is the number of consumption levels.
const LadderSize = len(ladder)

// Ladder returns the consumption ladder in ascending order.
func Ladder() []float64 {
	out := make([]float64, LadderSize)
	copy(out, ladder[:])
	return out
}

// RankAt prices every plan at quantity and sorts the results by total cost,
// cheapest first. Plans with equal totals keep their input order. The
// position of NaN totals is unspecified.
func RankAt(plans []types.VendorPlan, quantity float64) []types.PricedPlan {
	ranked := make([]types.PricedPlan, 0, len(plans))
	for _, p := range plans {
		ranked = append(ranked, pricing.Price(p, quantity))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalCost < ranked[j].TotalCost
	})
	return ranked
}

// RankAllLevels ranks plans once per ladder quantity, in ladder order.
func RankAllLevels(plans []types.VendorPlan) []types.ConsumptionBucket {
	buckets := make([]types.ConsumptionBucket, 0, LadderSize)
	for _, q := range ladder {
		buckets = append(buckets, types.ConsumptionBucket{
			Quantity:    q,
			RankedPlans: RankAt(plans, q),
		})
	}
	return buckets
}

// Cheapest returns the first plan of every non-empty bucket.
func Cheapest(buckets []types.ConsumptionBucket) []types.PricedPlan {
	var out []types.PricedPlan
	for _, b := range buckets {
		if len(b.RankedPlans) > 0 {
			out = append(out, b.RankedPlans[0])
		}
	}
	return out
}
