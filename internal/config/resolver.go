package config

import (
	"os"
	"path/filepath"

	"github.com/reactkit/crc/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CRC_CONFIG env, (3) .crc.yaml in workDir.
func ResolveConfigPath(flagValue, workDir string) ResolveConfigPathResult {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("CRC_CONFIG")
	defaultPath := filepath.Join(workDir, DefaultConfigFileName)

	if flagValue != "" {
		result.ConfigPath = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	} else if envValue != "" {
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	} else {
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result
}

// ResolveAll reports every configuration key of cfg with its source.
func ResolveAll(l *Loader, cfg *Config) []ResolvedValue {
	values := make([]ResolvedValue, 0, len(Keys()))
	for _, key := range Keys() {
		values = append(values, ResolvedValue{
			Key:    key,
			Value:  valueOf(cfg, key),
			Source: l.Source(key),
		})
	}
	return values
}

// ResolveBool applies flag > config precedence for a boolean option.
func ResolveBool(key string, flagChanged, flagValue, configValue bool, configSource ConfigSource) ResolvedValue {
	if flagChanged {
		rv := ResolvedValue{Key: key, Value: flagValue, Source: SourceFlag}
		if configSource != SourceDefault {
			rv.Shadowed = map[ConfigSource]string{configSource: boolString(configValue)}
		}
		return rv
	}
	return ResolvedValue{Key: key, Value: configValue, Source: configSource}
}

// Bool returns the value as a bool, false if it is not one.
func (v ResolvedValue) Bool() bool {
	b, _ := v.Value.(bool)
	return b
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

func valueOf(cfg *Config, key string) any {
	switch key {
	case "layout.componentsDir":
		return cfg.Layout.ComponentsDir
	case "layout.containersDir":
		return cfg.Layout.ContainersDir
	case "layout.testsDir":
		return cfg.Layout.TestsDir
	case "layout.sharedName":
		return cfg.Layout.SharedName
	case "layout.importPrefix":
		return cfg.Layout.ImportPrefix
	case "casing.legacy":
		return cfg.Casing.Legacy
	case "casing.uppercase":
		return cfg.Casing.Uppercase
	case "casing.policy":
		return cfg.Casing.Policy
	case "generate.functional":
		return cfg.Generate.Functional
	case "generate.noTest":
		return cfg.Generate.NoTest
	case "generate.withContainer":
		return cfg.Generate.WithContainer
	case "generate.storybook":
		return cfg.Generate.Storybook
	case "log.timestamps":
		if cfg.Log.Timestamps == nil {
			return true
		}
		return *cfg.Log.Timestamps
	default:
		return nil
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
