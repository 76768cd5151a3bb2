package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

const hclCatalog = `
vendor "Nordvind Energi" {
  plan "Spot" {
    fixed_fee = 4.90
    unit_rate = 0.289
    info_link = "https://nordvind.example/spot"
  }
  plan "Fast 12" {
    fixed_fee = 0
    unit_rate = 0.329
  }
}

vendor "Alpenwatt" {
  plan "Basis" {
    fixed_fee = 11.5
    unit_rate = 0.269
  }
}
`

const yamlCatalog = `
vendors:
  - vendorName: Nordvind Energi
    planName: Spot
    fixedFee: 4.90
    unitRate: 0.289
    infoLink: https://nordvind.example/spot
  - vendorName: Alpenwatt
    planName: Basis
    fixedFee: 11.5
    unitRate: 0.269
`

func TestParseHCL(t *testing.T) {
	plans, err := ParseHCL([]byte(hclCatalog), "vendors.hcl")
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, types.VendorPlan{
		VendorName: "Nordvind Energi",
		PlanName:   "Spot",
		FixedFee:   4.90,
		UnitRate:   0.289,
		InfoLink:   "https://nordvind.example/spot",
	}, plans[0])
	assert.Equal(t, "Fast 12", plans[1].PlanName)
	assert.Equal(t, "", plans[1].InfoLink)
	assert.Equal(t, "Alpenwatt", plans[2].VendorName)
}

func TestParseHCLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax", src: `vendor "A" {`},
		{name: "missing rate", src: `
vendor "A" {
  plan "B" {
    fixed_fee = 1
  }
}`},
		{name: "string fee", src: `
vendor "A" {
  plan "B" {
    fixed_fee = "ten"
    unit_rate = 1
  }
}`},
		{name: "unknown attribute", src: `
vendor "A" {
  plan "B" {
    fixed_fee = 1
    unit_rate = 1
    tax       = 2
  }
}`},
		{name: "missing label", src: `
vendor {
  plan "B" {
    fixed_fee = 1
    unit_rate = 1
  }
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHCL([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeFormat))
		})
	}
}

func TestNonFiniteAmounts(t *testing.T) {
	tests := []struct {
		name      string
		parse     func() ([]types.VendorPlan, error)
		wantField string
	}{
		{
			name: "yaml nan fee",
			parse: func() ([]types.VendorPlan, error) {
				return ParseYAML([]byte("vendors:\n  - vendorName: A\n    planName: B\n    fixedFee: .nan\n    unitRate: 1\n"))
			},
			wantField: "fixedFee",
		},
		{
			name: "yaml inf rate",
			parse: func() ([]types.VendorPlan, error) {
				return ParseYAML([]byte("vendors:\n  - vendorName: A\n    planName: B\n    fixedFee: 1\n    unitRate: -.inf\n"))
			},
			wantField: "unitRate",
		},
		{
			name: "hcl overflowing rate",
			parse: func() ([]types.VendorPlan, error) {
				return ParseHCL([]byte(`
vendor "A" {
  plan "B" {
    fixed_fee = 1
    unit_rate = 1e400
  }
}`), "big.hcl")
			},
			wantField: "unitRate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans, err := tt.parse()
			require.Error(t, err)
			assert.Nil(t, plans)
			e, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, errors.TypeFormat, e.Type)
			assert.Equal(t, errors.MsgInvalidNumber, e.Message)
			assert.Equal(t, tt.wantField, e.Context["field"])
			assert.Equal(t, 1, e.Context["record"])
		})
	}
}

func TestParseYAML(t *testing.T) {
	plans, err := ParseYAML([]byte(yamlCatalog))
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 0.289, plans[0].UnitRate)
	assert.Equal(t, "", plans[1].InfoLink)

	empty, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseYAMLErrors(t *testing.T) {
	for _, src := range []string{
		"vendors:\n  - vendorName: A\n    fixedFee: ten\n",
		"vendors:\n  - vendorName: A\n    discount: 3\n",
		"vendors: [",
	} {
		_, err := ParseYAML([]byte(src))
		require.Error(t, err, src)
		assert.True(t, errors.IsType(err, errors.TypeFormat), src)
	}
}

func TestParseFileDispatch(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"vendors.csv":  "a,b,c,d,e\nNordvind Energi,Spot,4.90,0.289,\n",
		"vendors.hcl":  hclCatalog,
		"vendors.yaml": yamlCatalog,
	}
	want := map[string]int{"vendors.csv": 1, "vendors.hcl": 3, "vendors.yaml": 2}

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		plans, err := ParseFile(path)
		require.NoError(t, err, name)
		assert.Len(t, plans, want[name], name)
		assert.Equal(t, "Nordvind Energi", plans[0].VendorName, name)
	}
}

func TestParseFileErrors(t *testing.T) {
	_, err := ParseFile("vendors.xlsx")
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, errors.IsType(err, errors.TypeInput))
}
