package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML override file on top of the compiled-in defaults.
// Only the fields present in the file are replaced.
func LoadFile(path string) (*RegulatoryParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters file %s: %w", path, err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse parameters YAML: %w", err)
	}
	return p, nil
}
