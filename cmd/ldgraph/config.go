package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/ldgraph-go/ldgraph"
)

// Config is the effective command configuration. Build settings may come
// from a YAML file; the remaining fields are set from flags only.
type Config struct {
	ExpandNames   bool   `yaml:"expand_names"`
	Redescribe    string `yaml:"redescribe"`
	MaxNodes      int    `yaml:"max_nodes"`
	MaxInputBytes int64  `yaml:"max_input_bytes"`
	Vocab         string `yaml:"vocab"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`

	Format string   `yaml:"-"`
	ID     string   `yaml:"-"`
	Type   string   `yaml:"-"`
	Inputs []string `yaml:"-"`
}

func defaultConfig() *Config {
	return &Config{
		Redescribe: ldgraph.RedescribeOverwrite.String(),
		LogLevel:   "warn",
		LogFormat:  "text",
		Format:     formatSummary,
	}
}

// loadConfigFile reads a YAML configuration file on top of the defaults.
func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case formatSummary, formatNQuads, formatCanonical, formatJSONLD:
	default:
		return fmt.Errorf("invalid format %q: must be 'summary', 'nquads', 'canonical' or 'jsonld'", c.Format)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	if c.MaxNodes < 0 || c.MaxInputBytes < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if _, err := ldgraph.ParseRedescribePolicy(c.Redescribe); err != nil {
		return err
	}
	return nil
}

// options translates the configuration into build options.
func (c *Config) options(logger *slog.Logger) ([]ldgraph.Option, error) {
	policy, err := ldgraph.ParseRedescribePolicy(c.Redescribe)
	if err != nil {
		return nil, err
	}
	opts := []ldgraph.Option{
		ldgraph.OptRedescribe(policy),
		ldgraph.OptMaxNodes(c.MaxNodes),
		ldgraph.OptMaxInputBytes(c.MaxInputBytes),
		ldgraph.OptLogger(logger),
	}
	if c.Vocab != "" {
		opts = append(opts, ldgraph.OptVocab(c.Vocab))
	}
	if c.ExpandNames {
		opts = append(opts, ldgraph.OptExpandNames())
	}
	return opts, nil
}
