package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/vinhnt21/smartmart/internal/config"
)

// LoadConfig reads a YAML config file on top of the environment defaults:
// sections the file omits keep their defaulted values instead of zeroing
// out, so a file without an engine section still gets usable tx timeouts
// and display capacity.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
