// Package config provides project configuration loading and management.
package config

import (
	"github.com/reactkit/crc/internal/layout"
)

// CasingConfig controls how generated file names are cased.
type CasingConfig struct {
	// Legacy keeps the first file of each list in its typed case and
	// capitalizes the rest.
	// Env: CRC_CASING_LEGACY, Default: false
	Legacy bool `json:"legacy" yaml:"legacy" mapstructure:"legacy"`

	// Uppercase capitalizes test file names by default (same as --uppercase).
	// Env: CRC_CASING_UPPERCASE, Default: false
	Uppercase bool `json:"uppercase" yaml:"uppercase" mapstructure:"uppercase"`

	// Policy overrides the casing rule of individual artifact kinds, e.g.
	// `container: never`. Rules are always, never and flag (follow
	// --uppercase). Not used in legacy mode.
	Policy map[string]string `json:"policy,omitempty" yaml:"policy,omitempty" mapstructure:"policy"`
}

// GenerateConfig holds defaults for the generation flags.
// A flag given on the command line always wins.
type GenerateConfig struct {
	Functional    bool `json:"functional" yaml:"functional" mapstructure:"functional"`
	NoTest        bool `json:"noTest" yaml:"noTest" mapstructure:"noTest"`
	WithContainer bool `json:"withContainer" yaml:"withContainer" mapstructure:"withContainer"`
	Storybook     bool `json:"storybook" yaml:"storybook" mapstructure:"storybook"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the crc project configuration, loaded from .crc.yaml.
type Config struct {
	// Layout describes the project's directory conventions.
	Layout layout.Layout `json:"layout" yaml:"layout" mapstructure:"layout"`

	// Casing contains file name casing settings.
	Casing CasingConfig `json:"casing" yaml:"casing" mapstructure:"casing"`

	// Generate contains defaults for the generation flags.
	Generate GenerateConfig `json:"generate" yaml:"generate" mapstructure:"generate"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `crc config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Layout: layout.DefaultLayout(),
	}
}

// WithDefaults returns a copy of c with empty layout fields defaulted.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	out := *c
	out.Layout = c.Layout.WithDefaults()
	return &out
}
