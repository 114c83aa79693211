// internal/config/config.go
package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed config.yml
var defaultYAML []byte

type Feed struct {
	URLs              []string `yaml:"urls"`
	TimeoutSeconds    int      `yaml:"timeout_seconds"`
	UserAgent         string   `yaml:"user_agent"`
	Accept            string   `yaml:"accept"`
	RequestsPerSecond float64  `yaml:"requests_per_second"`
	Burst             int      `yaml:"burst"`
	SourceName        string   `yaml:"source_name"`
}

func (f Feed) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

type Output struct {
	Path     string `yaml:"path"`
	MaxItems int    `yaml:"max_items"`
}

// ResolvePath returns Path, joined onto dir when it is relative. Callers
// pass the executable's directory so the feed lands beside the binary
// whatever the working directory.
func (o Output) ResolvePath(dir string) string {
	if filepath.IsAbs(o.Path) || dir == "" {
		return o.Path
	}
	return filepath.Join(dir, o.Path)
}

type Channel struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
	SelfLink    string `yaml:"self_link"`
}

// Filters holds the keyword and grade sets the classifier works from.
// Keywords are matched as plain substrings of upper-cased text, so the
// surrounding spaces in entries like " ICA" are significant.
type Filters struct {
	ConsultancyKeywords   []string `yaml:"consultancy_keywords"`
	InternshipKeywords    []string `yaml:"internship_keywords"`
	IncludedGrades        []string `yaml:"included_grades"`
	ExcludedGradePrefixes []string `yaml:"excluded_grade_prefixes"`
	ExcludedNOVariants    []string `yaml:"excluded_no_variants"`
}

type Config struct {
	Feed     Feed    `yaml:"feed"`
	Output   Output  `yaml:"output"`
	Channel  Channel `yaml:"channel"`
	Filters  Filters `yaml:"filters"`
	LogLevel string  `yaml:"log_level"`
}

// Parse decodes and validates a YAML document.
func Parse(b []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Default returns the configuration embedded in the binary.
func Default() Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded config.yml: %v", err))
	}
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Feed.TimeoutSeconds == 0 {
		cfg.Feed.TimeoutSeconds = 30
	}
	if cfg.Feed.RequestsPerSecond == 0 {
		cfg.Feed.RequestsPerSecond = 1
	}
	if cfg.Feed.Burst == 0 {
		cfg.Feed.Burst = 1
	}
	if cfg.Output.MaxItems == 0 {
		cfg.Output.MaxItems = 50
	}
	if cfg.Channel.Language == "" {
		cfg.Channel.Language = "en"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
