package config

import "time"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".fragredirect.yml"

// DefaultInclude matches every page the link tooling knows how to read.
var DefaultInclude = []string{"**/*.html", "**/*.md"}

// DefaultExcludes are glob patterns skipped by the link tooling.
var DefaultExcludes = []string{
	"_static/**",
	"_sources/**",
	"_images/**",
	"genindex.html",
	"search.html",
	"*.min.js",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DocsDir:        "build/html",
		Port:           8080,
		Include:        append([]string(nil), DefaultInclude...),
		Exclude:        append([]string(nil), DefaultExcludes...),
		LogLevel:       "info",
		RequestTimeout: 30 * time.Second,
	}
}
