// Package catalog - Built-in vendor catalog
// Defines the seed list of tariff plans offered before any user additions.
// The entries are compile-time constants, not configuration.
package catalog

import "tariff-compare/core/types"

// defaultPlans is the seed catalog. Order matters: ranking ties are broken
// by position, so reordering changes results.
var defaultPlans = [...]types.VendorPlan{
	{VendorName: "Nordvind Energi", PlanName: "Spot", FixedFee: 4.90, UnitRate: 0.2890, InfoLink: "https://nordvind.example/spot"},
	{VendorName: "Nordvind Energi", PlanName: "Fast 12", FixedFee: 0, UnitRate: 0.3290, InfoLink: "https://nordvind.example/fast-12"},
	{VendorName: "Nordvind Energi", PlanName: "Grønn", FixedFee: 9.90, UnitRate: 0.2790, InfoLink: "https://nordvind.example/gronn"},
	{VendorName: "Fjordkraftverk", PlanName: "Basis", FixedFee: 12.00, UnitRate: 0.2650, InfoLink: "https://fjordkraftverk.example/basis"},
	{VendorName: "Fjordkraftverk", PlanName: "Plus", FixedFee: 19.00, UnitRate: 0.2490, InfoLink: "https://fjordkraftverk.example/plus"},
	{VendorName: "Fjordkraftverk", PlanName: "Student", FixedFee: 0, UnitRate: 0.3090, InfoLink: "https://fjordkraftverk.example/student"},
	{VendorName: "Helios Strom", PlanName: "Solar Flex", FixedFee: 8.50, UnitRate: 0.2750, InfoLink: "https://helios-strom.example/solar-flex"},
	{VendorName: "Helios Strom", PlanName: "Solar Fix", FixedFee: 14.50, UnitRate: 0.2590, InfoLink: "https://helios-strom.example/solar-fix"},
	{VendorName: "Helios Strom", PlanName: "Klein", FixedFee: 2.00, UnitRate: 0.3190, InfoLink: ""},
	{VendorName: "Bright Current", PlanName: "Everyday", FixedFee: 10.00, UnitRate: 0.2700, InfoLink: "https://brightcurrent.example/everyday"},
	{VendorName: "Bright Current", PlanName: "Saver 24", FixedFee: 24.00, UnitRate: 0.2390, InfoLink: "https://brightcurrent.example/saver-24"},
	{VendorName: "Bright Current", PlanName: "Pay As You Go", FixedFee: 0, UnitRate: 0.3450, InfoLink: "https://brightcurrent.example/payg"},
	{VendorName: "Kvarn Elhandel", PlanName: "Rörligt", FixedFee: 3.90, UnitRate: 0.2950, InfoLink: "https://kvarn.example/rorligt"},
	{VendorName: "Kvarn Elhandel", PlanName: "Fast 24", FixedFee: 15.90, UnitRate: 0.2550, InfoLink: "https://kvarn.example/fast-24"},
	{VendorName: "Kvarn Elhandel", PlanName: "Vind", FixedFee: 6.90, UnitRate: 0.2850, InfoLink: "https://kvarn.example/vind"},
	{VendorName: "Alpenwatt", PlanName: "Basis", FixedFee: 11.50, UnitRate: 0.2690, InfoLink: "https://alpenwatt.example/basis"},
	{VendorName: "Alpenwatt", PlanName: "Öko", FixedFee: 13.50, UnitRate: 0.2710, InfoLink: "https://alpenwatt.example/oeko"},
	{VendorName: "Alpenwatt", PlanName: "Wärmepumpe", FixedFee: 29.00, UnitRate: 0.2290, InfoLink: "https://alpenwatt.example/waermepumpe"},
	{VendorName: "Lumen Power", PlanName: "Starter", FixedFee: 5.00, UnitRate: 0.3000, InfoLink: "https://lumenpower.example/starter"},
	{VendorName: "Lumen Power", PlanName: "Family", FixedFee: 17.00, UnitRate: 0.2500, InfoLink: "https://lumenpower.example/family"},
	{VendorName: "Lumen Power", PlanName: "EV Night", FixedFee: 21.00, UnitRate: 0.2450, InfoLink: "https://lumenpower.example/ev"},
	{VendorName: "Kestrel Energy", PlanName: "Simple", FixedFee: 10.00, UnitRate: 0.2700, InfoLink: "https://kestrel.example/simple"},
	{VendorName: "Kestrel Energy", PlanName: "Fixed 36", FixedFee: 32.00, UnitRate: 0.2250, InfoLink: "https://kestrel.example/fixed-36"},
	{VendorName: "Kestrel Energy", PlanName: "Green Tariff", FixedFee: 7.50, UnitRate: 0.2990, InfoLink: ""},
}

// DefaultCount is the number of built-in plans.
const DefaultCount = len(defaultPlans)

// Defaults returns the built-in catalog. Each call returns a fresh slice
// with the same entries in the same order.
func Defaults() []types.VendorPlan {
	out := make([]types.VendorPlan, DefaultCount)
	copy(out, defaultPlans[:])
	return out
}

// Combine returns the defaults followed by the custom plans, both in their
// original order.
func Combine(defaults, custom []types.VendorPlan) []types.VendorPlan {
	out := make([]types.VendorPlan, 0, len(defaults)+len(custom))
	out = append(out, defaults...)
	return append(out, custom...)
}
