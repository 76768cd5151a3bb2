// Package types defines the core value types shared by the engine,
// the importers and the persistence layer.
package types

// VendorPlan is one electricity tariff: a fixed monthly fee plus a per-kWh
// rate. Its logical key is (VendorName, PlanName), but duplicates are allowed
// and treated as distinct entries.
type VendorPlan struct {
	// VendorName is the electricity vendor
	VendorName string `json:"vendorName" yaml:"vendorName"`

	// PlanName is the vendor's name for the plan
	PlanName string `json:"planName" yaml:"planName"`

	// FixedFee is charged once per period regardless of consumption
	FixedFee float64 `json:"fixedFee" yaml:"fixedFee"`

	// UnitRate is the price per kWh
	UnitRate float64 `json:"unitRate" yaml:"unitRate"`

	// InfoLink points at the vendor's plan page; may be empty
	InfoLink string `json:"infoLink" yaml:"infoLink"`
}

// Key returns the (vendor, plan) pair identifying the plan for display.
func (p VendorPlan) Key() string {
	return p.VendorName + " / " + p.PlanName
}

// PricedPlan is a VendorPlan priced at one consumption quantity.
type PricedPlan struct {
	VendorName string  `json:"vendorName"`
	PlanName   string  `json:"planName"`
	FixedFee   float64 `json:"fixedFee"`
	UnitRate   float64 `json:"unitRate"`
	InfoLink   string  `json:"infoLink"`
	TotalCost  float64 `json:"totalCost"`
}

// Plan returns the unpriced plan.
func (p PricedPlan) Plan() VendorPlan {
	return VendorPlan{
		VendorName: p.VendorName,
		PlanName:   p.PlanName,
		FixedFee:   p.FixedFee,
		UnitRate:   p.UnitRate,
		InfoLink:   p.InfoLink,
	}
}

// ConsumptionBucket holds the ranking of every plan at one ladder quantity.
type ConsumptionBucket struct {
	Quantity    float64      `json:"quantity"`
	RankedPlans []PricedPlan `json:"rankedPlans"`
}
