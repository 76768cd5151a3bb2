package importer

import (
	"bytes"
	stderrors "errors"
	"io"

	"gopkg.in/yaml.v3"

	"tariff-compare/core/catalog"
	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

// yamlDocument is the YAML catalog schema; plan keys match the JSON
// storage layout.
type yamlDocument struct {
	Vendors []types.VendorPlan `yaml:"vendors"`
}

// ParseYAML decodes a YAML vendor catalog. Unknown keys are rejected.
func ParseYAML(src []byte) ([]types.VendorPlan, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.TypeFormat, "invalid yaml document", err)
	}
	if doc.Vendors == nil {
		return []types.VendorPlan{}, nil
	}
	// yaml accepts .nan and .inf as floats
	if err := catalog.CheckAmounts(doc.Vendors); err != nil {
		return nil, err
	}
	return doc.Vendors, nil
}
