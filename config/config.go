package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/tagmerge/merger"
)

const (
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

type Config struct {
	Placeholder string `yaml:"placeholder"`
	IDHeader    string `yaml:"idHeader"`
	Separator   string `yaml:"separator"`
	Format      string `yaml:"format"`

	// Output URL, stdout when empty
	Output string `yaml:"output"`
}

// DefaultConfig returns a config producing tab separated output on stdout
func DefaultConfig() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// Load reads a YAML config, an empty filename yields the defaults
func Load(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", filename, err)
	}
	cfg := &Config{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", filename, err)
	}
	cfg.Init()
	return cfg, cfg.Validate()
}

// Init fills unset fields with defaults
func (c *Config) Init() {
	if c.Placeholder == "" {
		c.Placeholder = merger.DefaultPlaceholder
	}
	if c.IDHeader == "" {
		c.IDHeader = merger.DefaultIDHeader
	}
	if c.Separator == "" {
		c.Separator = merger.DefaultSeparator
	}
	if c.Format == "" {
		c.Format = FormatTSV
	}
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatTSV, FormatJSON:
		return nil
	}
	return fmt.Errorf("unsupported format: %v", c.Format)
}

// Options returns render options matching the config
func (c *Config) Options() []merger.Option {
	return []merger.Option{
		merger.WithPlaceholder(c.Placeholder),
		merger.WithIDHeader(c.IDHeader),
		merger.WithSeparator(c.Separator),
	}
}
