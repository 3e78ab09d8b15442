package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Load reads locations.yaml and services.yaml from dir and returns a validated
// Store. Any parse or validation failure is fatal to the caller by design: the
// catalog is static authored data, so a bad entry is a deploy problem, not a
// runtime condition to tolerate.
func Load(dir string) (*Store, error) {
	var locations []Location
	if err := readYAML(filepath.Join(dir, "locations.yaml"), &locations); err != nil {
		return nil, err
	}

	var services []Service
	if err := readYAML(filepath.Join(dir, "services.yaml"), &services); err != nil {
		return nil, err
	}

	return NewStore(locations, services)
}

func readYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
