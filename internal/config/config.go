package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/fragredirect/internal/log"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "FRAGREDIRECT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FRAGREDIRECT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FRAGREDIRECT_DOCS_DIR -> docs_dir, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Lists from the file replace the defaults instead of merging into them.
	if k.Exists("include") {
		cfg.Include = nil
	}
	if k.Exists("exclude") {
		cfg.Exclude = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

func validPort(n int) bool { return n >= 1 && n <= 65535 }

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validPort(c.Port) {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative")
	}

	if !log.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	for _, p := range append(append([]string(nil), c.Include...), c.Exclude...) {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("empty glob pattern in include/exclude")
		}
	}

	return nil
}
