package cmd

import (
	"fmt"
	"os"

	"github.com/ziadkadry99/fragredirect/internal/config"
	"github.com/ziadkadry99/fragredirect/internal/log"
)

// loadConfig loads and validates the config, then configures logging from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `fragredirect init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log.Configure(log.Config{Level: level, Output: os.Stderr, Console: true})
	return cfg, nil
}
