package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

type (
	Config struct {
		// Slots maps a slot name to the wiki category listing its items.
		Slots     map[string]string `yaml:"slots"`
		BatchSize int               `yaml:"batchSize"`
		// ThrottleMS is a pointer so an explicit 0 (no throttle, e.g. in
		// tests) is distinguishable from an omitted key.
		ThrottleMS *int `yaml:"throttleMs"`
	}
)

const (
	defaultBatchSize  = 60
	defaultThrottleMS = 250
)

//go:embed config.yaml
var defaultConfig []byte

// LoadConfig parses the YAML config file at path, or the built-in default
// when path is empty. Omitted batchSize and throttleMs keys fall back to
// the built-in values.
func LoadConfig(path string) (*Config, error) {
	contents := defaultConfig

	if path != "" {
		var err error

		contents, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	var cfg Config

	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Slots) == 0 {
		return nil, errors.New("config must map at least one slot to a wiki category")
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}

	if cfg.ThrottleMS == nil {
		ms := defaultThrottleMS
		cfg.ThrottleMS = &ms
	}

	return &cfg, nil
}

func (c *Config) Throttle() time.Duration {
	if c.ThrottleMS == nil {
		return defaultThrottleMS * time.Millisecond
	}

	return time.Duration(*c.ThrottleMS) * time.Millisecond
}
