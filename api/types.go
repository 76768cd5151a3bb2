// Package api - API types for the tariff comparison endpoints
// Responses carry the store status so clients can tell when custom vendors
// could not be read or written.
package api

import (
	"encoding/json"

	"tariff-compare/core/output"
	"tariff-compare/core/types"
)

// StoreResult reports how persistence went for a request
type StoreResult struct {
	// Status is ok, empty, corrupt or failed
	Status string `json:"status"`

	// Healthy is false when the store could not be read or written
	Healthy bool `json:"healthy"`
}

func storeResult(s types.StoreStatus) StoreResult {
	return StoreResult{Status: s.Outcome.String(), Healthy: s.OK()}
}

// VendorsResponse is returned by GET /vendors and GET /vendors/custom
type VendorsResponse struct {
	Vendors []types.VendorPlan `json:"vendors"`
	Count   int                `json:"count"`
	Store   StoreResult        `json:"store"`
}

// AddVendorRequest is the body of POST /vendors/custom. Numbers may be sent
// as JSON numbers or numeric strings.
type AddVendorRequest struct {
	VendorName string      `json:"vendorName"`
	PlanName   string      `json:"planName"`
	FixedFee   json.Number `json:"fixedFee"`
	UnitRate   json.Number `json:"unitRate"`
	InfoLink   string      `json:"infoLink"`
}

// VendorResponse is returned when a single custom vendor is added or removed
type VendorResponse struct {
	Vendor types.VendorPlan `json:"vendor"`
	Store  StoreResult      `json:"store"`
}

// RankResponse is returned by GET /rank
type RankResponse struct {
	output.RankingReport
	Store StoreResult `json:"store"`
}

// LadderResponse is returned by GET /ladder
type LadderResponse struct {
	output.LadderReport
	Store StoreResult `json:"store"`
}

// ImportResponse is returned by POST /import
type ImportResponse struct {
	Vendors   []types.VendorPlan `json:"vendors"`
	Count     int                `json:"count"`
	Persisted bool               `json:"persisted"`
	Store     *StoreResult       `json:"store,omitempty"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
