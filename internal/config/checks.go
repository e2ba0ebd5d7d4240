package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hamed0406/endpointprobe/internal/probe"
)

type checksFile struct {
	Checks []probe.EndpointCheck `yaml:"checks"`
}

// LoadChecks reads a YAML check list. An empty path returns the built-in
// checks. A missing label defaults to the path.
func LoadChecks(path string) ([]probe.EndpointCheck, error) {
	if path == "" {
		return probe.DefaultChecks(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checks file %s: %w", path, err)
	}
	var f checksFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse checks file %s: %w", path, err)
	}
	if len(f.Checks) == 0 {
		return nil, fmt.Errorf("checks file %s: no checks defined", path)
	}

	out := make([]probe.EndpointCheck, 0, len(f.Checks))
	for i, c := range f.Checks {
		c.Path = strings.TrimSpace(c.Path)
		c.Label = strings.TrimSpace(c.Label)
		if c.Path == "" {
			return nil, fmt.Errorf("checks file %s: check %d has no path", path, i+1)
		}
		if !strings.HasPrefix(c.Path, "/") {
			return nil, fmt.Errorf("checks file %s: path %q must start with /", path, c.Path)
		}
		if c.Label == "" {
			c.Label = c.Path
		}
		out = append(out, c)
	}
	return out, nil
}
