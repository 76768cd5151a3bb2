package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

func requireFormatError(t *testing.T, err error, message string) *errors.Error {
	t.Helper()
	require.Error(t, err)
	e, ok := errors.As(err)
	require.True(t, ok, "expected domain error, got %T", err)
	assert.Equal(t, errors.TypeFormat, e.Type)
	assert.Equal(t, message, e.Message)
	return e
}

func TestParseCSVWellFormed(t *testing.T) {
	doc := "vendorName,planName,fixedFee,unitRate,infoLink\n" +
		"  Nordvind Energi , Spot ,4.90, 0.289 , https://nordvind.example/spot \n" +
		"Kvarn Elhandel,Fast 24,15.90,0.255,\n" +
		"\n" +
		"Lumen Power,Family,17,0.25,https://lumenpower.example/family,extra,columns\n"

	plans, err := ParseCSV(doc)
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, types.VendorPlan{
		VendorName: "Nordvind Energi",
		PlanName:   "Spot",
		FixedFee:   4.90,
		UnitRate:   0.289,
		InfoLink:   "https://nordvind.example/spot",
	}, plans[0])
	assert.Equal(t, "", plans[1].InfoLink)
	assert.Equal(t, "https://lumenpower.example/family", plans[2].InfoLink)
}

func TestParseCSVHeaderNamesIgnored(t *testing.T) {
	plans, err := ParseCSV("a,b,c,d,e\nV,P,1,2,L")
	require.NoError(t, err)
	assert.Equal(t, []types.VendorPlan{{VendorName: "V", PlanName: "P", FixedFee: 1, UnitRate: 2, InfoLink: "L"}}, plans)
}

func TestParseCSVHeaderOnly(t *testing.T) {
	plans, err := ParseCSV("vendorName,planName,fixedFee,unitRate,infoLink\n")
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestParseCSVCRLF(t *testing.T) {
	plans, err := ParseCSV("h1,h2,h3,h4,h5\r\nV,P,1,0.5,L\r\n\r\n")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "L", plans[0].InfoLink)
}

func TestParseCSVTooFewColumns(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		line int
	}{
		{name: "three column header", doc: "vendorName,planName,fixedFee\nV,P,1", line: 1},
		{name: "empty document", doc: "", line: 1},
		{name: "short record", doc: "a,b,c,d,e\nV,P,1,2,L\nV,P,1,2", line: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans, err := ParseCSV(tt.doc)
			assert.Nil(t, plans)
			e := requireFormatError(t, err, errors.MsgTooFewColumns)
			assert.Equal(t, tt.line, e.Context["line"])
		})
	}
}

func TestParseCSVInvalidNumberAbortsDocument(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{name: "non-numeric fee", doc: "a,b,c,d,e\nV,P,1,2,L\nV,P,ten,2,L\nV,P,1,2,L", field: "fixedFee"},
		{name: "empty fee", doc: "a,b,c,d,e\nV,P, ,2,L", field: "fixedFee"},
		{name: "non-numeric rate", doc: "a,b,c,d,e\nV,P,1,0.1x,L", field: "unitRate"},
		{name: "comma inside a name shifts columns", doc: "a,b,c,d,e\nSmith, Jones & Co,Basic,10,0.2,L", field: "fixedFee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans, err := ParseCSV(tt.doc)
			assert.Nil(t, plans)
			e := requireFormatError(t, err, errors.MsgInvalidNumber)
			assert.Equal(t, tt.field, e.Context["field"])
		})
	}
}

func TestParseCSVRowCount(t *testing.T) {
	doc := "a,b,c,d,e"
	for i := 0; i < 40; i++ {
		doc += "\nVendor,Plan,1.5,0.25,"
	}
	plans, err := ParseCSV(doc)
	require.NoError(t, err)
	assert.Len(t, plans, 40)
}
