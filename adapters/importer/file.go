package importer

import (
	"os"
	"path/filepath"
	"strings"

	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

// Format identifies a bulk import document format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatHCL  Format = "hcl"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the document format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".hcl":
		return FormatHCL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Input("unsupported import file type: " + filepath.Ext(path))
	}
}

// Parse decodes src in the given format.
func Parse(format Format, src []byte, name string) ([]types.VendorPlan, error) {
	switch format {
	case FormatCSV:
		return ParseCSV(string(src))
	case FormatHCL:
		return ParseHCL(src, name)
	case FormatYAML:
		return ParseYAML(src)
	default:
		return nil, errors.Input("unsupported import format: " + string(format))
	}
}

// ParseFile reads path and decodes it according to its extension.
func ParseFile(path string) ([]types.VendorPlan, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "read import file", err)
	}
	return Parse(format, src, path)
}
