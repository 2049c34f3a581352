package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for crc configuration.
const envPrefix = "CRC"

// envBindings maps config keys to their environment variables.
var envBindings = map[string]string{
	"layout.componentsDir":   "CRC_LAYOUT_COMPONENTS_DIR",
	"layout.containersDir":   "CRC_LAYOUT_CONTAINERS_DIR",
	"layout.testsDir":        "CRC_LAYOUT_TESTS_DIR",
	"layout.sharedName":      "CRC_LAYOUT_SHARED_NAME",
	"layout.importPrefix":    "CRC_LAYOUT_IMPORT_PREFIX",
	"casing.legacy":          "CRC_CASING_LEGACY",
	"casing.uppercase":       "CRC_CASING_UPPERCASE",
	"generate.functional":    "CRC_GENERATE_FUNCTIONAL",
	"generate.noTest":        "CRC_GENERATE_NO_TEST",
	"generate.withContainer": "CRC_GENERATE_WITH_CONTAINER",
	"generate.storybook":     "CRC_GENERATE_STORYBOOK",
	"log.timestamps":         "CRC_LOG_TIMESTAMPS",
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper

	// file is the config file the last Load read, empty if none was found.
	file string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	d := DefaultConfig()
	v.SetDefault("layout.componentsDir", d.Layout.ComponentsDir)
	v.SetDefault("layout.containersDir", d.Layout.ContainersDir)
	v.SetDefault("layout.testsDir", d.Layout.TestsDir)
	v.SetDefault("layout.sharedName", d.Layout.SharedName)
	v.SetDefault("layout.importPrefix", d.Layout.ImportPrefix)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// A missing file is not an error: defaults and environment variables apply.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		expandedPath, err := ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}

		l.v.SetConfigFile(expandedPath)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else {
			l.file = expandedPath
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}

// ConfigFileUsed returns the config file read by the last Load, or "".
func (l *Loader) ConfigFileUsed() string {
	return l.file
}

// Source reports where the value of key came from.
func (l *Loader) Source(key string) ConfigSource {
	if env, ok := envBindings[key]; ok {
		if _, set := os.LookupEnv(env); set {
			return SourceEnv
		}
	}
	if l.file != "" && l.v.InConfig(key) {
		return SourceConfig
	}
	return SourceDefault
}

// Keys returns all known configuration keys.
func Keys() []string {
	return []string{
		"layout.componentsDir",
		"layout.containersDir",
		"layout.testsDir",
		"layout.sharedName",
		"layout.importPrefix",
		"casing.legacy",
		"casing.uppercase",
		"casing.policy",
		"generate.functional",
		"generate.noTest",
		"generate.withContainer",
		"generate.storybook",
		"log.timestamps",
	}
}
