// File: config.go
// Title: Core Configuration Implementation
// Description: Typed configuration for the tod tool loaded from TOML or YAML
//              files. Time-of-day and unit settings decode directly into
//              timex types through their text codecs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Replaced key/value store with typed sections

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	coreerr "github.com/msto63/tod/foundation/core/error"
	"github.com/msto63/tod/foundation/utils/timex"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Default values applied to settings missing from the file
const (
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "text"
	DefaultOutputFormat = timex.FormatLong
	DefaultStep         = 1
)

// Config holds the complete tool configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Range   RangeConfig   `toml:"range" yaml:"range"`

	filePath string
	format   Format
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// OutputConfig controls how times are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Pretty bool   `toml:"pretty" yaml:"pretty"`
}

// RangeConfig holds the defaults of the range command. Nil fields are unset
// and receive defaults in Load.
type RangeConfig struct {
	Start           *timex.TimeOfDay `toml:"start" yaml:"start"`
	End             *timex.TimeOfDay `toml:"end" yaml:"end"`
	Unit            *timex.Unit      `toml:"unit" yaml:"unit"`
	Step            int              `toml:"step" yaml:"step"`
	IncludeExtremes *bool            `toml:"include_extremes" yaml:"include_extremes"`
}

// StartTime returns the configured start or timex.Min.
func (r RangeConfig) StartTime() timex.TimeOfDay {
	if r.Start == nil {
		return timex.Min
	}
	return *r.Start
}

// EndTime returns the configured end or timex.Max.
func (r RangeConfig) EndTime() timex.TimeOfDay {
	if r.End == nil {
		return timex.Max
	}
	return *r.End
}

// StepUnit returns the configured unit. Without one, a step of 1 builds by
// timex.DefaultArrayUnit and larger steps by timex.DefaultStepUnit.
func (r RangeConfig) StepUnit() timex.Unit {
	if r.Unit != nil {
		return *r.Unit
	}
	if r.Step > 1 {
		return timex.DefaultStepUnit
	}
	return timex.DefaultArrayUnit
}

// Extremes reports whether range bounds are included, true when unset.
func (r RangeConfig) Extremes() bool {
	return r.IncludeExtremes == nil || *r.IncludeExtremes
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{format: FormatAuto}
	cfg.applyDefaults()
	return cfg
}

// Load loads and validates configuration from a file, choosing the format
// from its extension.
func Load(filePath string) (*Config, error) {
	const op = "config.Load"

	filePath = os.ExpandEnv(filePath)
	if strings.TrimSpace(filePath) == "" {
		return nil, coreerr.New("config file path cannot be empty").
			WithCode(coreerr.CodeInvalidInput).
			WithOperation(op)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := coreerr.CodeConfigError
		if os.IsNotExist(err) {
			code = coreerr.CodeMissingConfig
		}
		return nil, coreerr.Wrap(err, fmt.Sprintf("failed to read config file %s", filePath)).
			WithCode(code).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}

	format := detectFormat(filePath)
	cfg, err := parse(content, format)
	if err != nil {
		return nil, coreerr.Wrap(err, "failed to parse config file").
			WithOperation(op).
			WithDetail("filePath", filePath)
	}
	cfg.filePath = filePath
	return cfg, nil
}

// LoadFromString loads and validates configuration from content in the given
// format. FormatAuto is treated as TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	cfg, err := parse([]byte(content), format)
	if err != nil {
		return nil, coreerr.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return cfg, nil
}

func parse(content []byte, format Format) (*Config, error) {
	cfg := &Config{format: format}
	if err := decode(content, format, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return coreerr.Wrap(err, "TOML parse error").
				WithCode(coreerr.CodeInvalidConfig).
				WithOperation("config.decode")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return coreerr.Wrap(err, "YAML parse error").
				WithCode(coreerr.CodeInvalidConfig).
				WithOperation("config.decode")
		}
	default:
		return coreerr.Newf("unsupported format: %s", format).
			WithCode(coreerr.CodeInvalidConfig).
			WithOperation("config.decode").
			WithDetail("format", format.String())
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = DefaultLogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = DefaultLogFormat
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if c.Range.Step == 0 {
		c.Range.Step = DefaultStep
	}
}

// FilePath returns the file the configuration was loaded from, if any.
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format the configuration was decoded from.
func (c *Config) Format() Format {
	return c.format
}

// String renders the effective configuration as TOML.
func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[general]\nlog_level = %q\nlog_format = %q\n\n", c.General.LogLevel, c.General.LogFormat)
	fmt.Fprintf(&b, "[output]\nformat = %q\npretty = %t\n\n", c.Output.Format, c.Output.Pretty)
	fmt.Fprintf(&b, "[range]\nstart = %q\nend = %q\nunit = %q\nstep = %d\ninclude_extremes = %t\n",
		c.Range.StartTime(), c.Range.EndTime(), c.Range.StepUnit(), c.Range.Step, c.Range.Extremes())
	return b.String()
}
