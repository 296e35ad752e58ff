// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

// File is the on-disk representation of a section catalog. An operator can
// export the built-in catalog, trim or reword sections per deployment, and
// point the CLI at the edited file.
type File struct {
	Sections []types.SectionSpec `yaml:"sections"`
}

// WriteFile saves a catalog to a YAML file.
func WriteFile(path string, specs []types.SectionSpec) error {
	data, err := yaml.Marshal(&File{Sections: specs})
	if err != nil {
		return fmt.Errorf("marshaling catalog file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads a catalog from a YAML file and enforces the catalog-order
// contract before returning it.
func ReadFile(path string) ([]types.SectionSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	if err := Validate(f.Sections); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return f.Sections, nil
}
