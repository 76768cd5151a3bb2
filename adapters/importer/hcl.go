package importer

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"tariff-compare/core/catalog"
	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

// hclDocument is the HCL catalog schema:
//
//	vendor "Nordvind Energi" {
//	  plan "Spot" {
//	    fixed_fee = 4.90
//	    unit_rate = 0.289
//	    info_link = "https://nordvind.example/spot"
//	  }
//	}
type hclDocument struct {
	Vendors []hclVendor `hcl:"vendor,block"`
}

type hclVendor struct {
	Name  string    `hcl:"name,label"`
	Plans []hclPlan `hcl:"plan,block"`
}

type hclPlan struct {
	Name     string  `hcl:"name,label"`
	FixedFee float64 `hcl:"fixed_fee"`
	UnitRate float64 `hcl:"unit_rate"`
	InfoLink string  `hcl:"info_link,optional"`
}

// ParseHCL decodes an HCL vendor catalog. Plans come out in declaration
// order, vendor by vendor.
func ParseHCL(src []byte, filename string) ([]types.VendorPlan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagnosticsError(diags)
	}

	var doc hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, diagnosticsError(diags)
	}

	plans := make([]types.VendorPlan, 0)
	for _, v := range doc.Vendors {
		for _, p := range v.Plans {
			plans = append(plans, types.VendorPlan{
				VendorName: v.Name,
				PlanName:   p.Name,
				FixedFee:   p.FixedFee,
				UnitRate:   p.UnitRate,
				InfoLink:   p.InfoLink,
			})
		}
	}
	// literals beyond float64 range decode as infinities
	if err := catalog.CheckAmounts(plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// diagnosticsError reports the first error diagnostic with its position.
func diagnosticsError(diags hcl.Diagnostics) error {
	err := errors.Wrap(errors.TypeFormat, "invalid hcl document", diags)
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		err.WithContext("summary", diag.Summary)
		if diag.Subject != nil {
			err.WithContext("line", diag.Subject.Start.Line)
		}
		break
	}
	return err
}
