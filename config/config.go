// Package config loads the TOML configuration of the analyzer and the
// urinorm command.
//
// The embedded DefaultConfig is decoded first, then the optional file on top
// of it, so a file only needs the keys it changes.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/open-condo-software/condo-sub035/uri"
)

// ErrInvalidConfig is wrapped around every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const DefaultConfig = `
# urinorm configuration.

[analyzer]
# enabled recognizer families; empty enables all of them
families = []
# extra generic scheme keywords, one per line
schemes-file = ""
max-input-bytes = 1048576

[output]
# json, yaml or text
format = "json"
with-offsets = true

[log]
# glog -v level
verbosity = 0
`

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

type Config struct {
	AnalyzerCfg AnalyzerConfig `toml:"analyzer" json:"analyzer" yaml:"analyzer"`
	OutputCfg   OutputConfig   `toml:"output" json:"output" yaml:"output"`
	LogCfg      LogConfig      `toml:"log" json:"log" yaml:"log"`
}

type AnalyzerConfig struct {
	Families      []string `toml:"families" json:"families" yaml:"families"`
	SchemesFile   string   `toml:"schemes-file" json:"schemes-file" yaml:"schemes-file"`
	MaxInputBytes int      `toml:"max-input-bytes" json:"max-input-bytes" yaml:"max-input-bytes"`

	families []uri.Family
}

type OutputConfig struct {
	Format      string `toml:"format" json:"format" yaml:"format"`
	WithOffsets bool   `toml:"with-offsets" json:"with-offsets" yaml:"with-offsets"`
}

type LogConfig struct {
	Verbosity int `toml:"verbosity" json:"verbosity" yaml:"verbosity"`
}

// Default returns the configuration described by DefaultConfig.
func Default() (*Config, error) {
	return Load("")
}

// Load decodes DefaultConfig, then the file at path when path is not empty,
// and validates the result.
func Load(path string) (*Config, error) {
	c := new(Config)
	if _, err := toml.Decode(DefaultConfig, c); err != nil {
		return nil, errors.Wrap(err, "config: decode defaults")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, errors.Wrapf(err, "config: decode %s", path)
		}
	}
	if err := c.adjust(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) adjust() error {
	if err := c.AnalyzerCfg.adjust(); err != nil {
		return err
	}
	if err := c.OutputCfg.adjust(); err != nil {
		return err
	}
	return c.LogCfg.adjust()
}

func (c *AnalyzerConfig) adjust() error {
	c.families = c.families[:0]
	for _, name := range c.Families {
		f, err := uri.ParseFamily(name)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "analyzer.families: unknown family %q", name)
		}
		c.families = append(c.families, f)
	}
	if c.MaxInputBytes <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "analyzer.max-input-bytes: %d", c.MaxInputBytes)
	}
	return nil
}

func (c *OutputConfig) adjust() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatJSON, FormatYAML, FormatText:
		return nil
	}
	return errors.Wrapf(ErrInvalidConfig, "output.format: %q", c.Format)
}

func (c *LogConfig) adjust() error {
	if c.Verbosity < 0 {
		return errors.Wrapf(ErrInvalidConfig, "log.verbosity: %d", c.Verbosity)
	}
	return nil
}

// AnalyzerOptions translates the analyzer section into uri options.
func (c *Config) AnalyzerOptions() []uri.Option {
	opts := []uri.Option{uri.WithMaxInputBytes(c.AnalyzerCfg.MaxInputBytes)}
	if len(c.AnalyzerCfg.families) > 0 {
		opts = append(opts, uri.WithFamilies(c.AnalyzerCfg.families...))
	}
	if c.AnalyzerCfg.SchemesFile != "" {
		opts = append(opts, uri.WithSchemesFile(c.AnalyzerCfg.SchemesFile))
	}
	return opts
}

// NewAnalyzer builds the analyzer the configuration describes.
func (c *Config) NewAnalyzer() (*uri.Analyzer, error) {
	return uri.NewAnalyzer(c.AnalyzerOptions()...)
}
