package config

import "time"

// Config is the top-level fragredirect configuration, corresponding to .fragredirect.yml.
type Config struct {
	DocsDir         string        `yaml:"docs_dir" koanf:"docs_dir"`
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Include         []string      `yaml:"include" koanf:"include"`
	Exclude         []string      `yaml:"exclude" koanf:"exclude"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
}
