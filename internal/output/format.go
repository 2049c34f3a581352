package output

import (
	"slices"
	"strings"
)

// OutputFormat is a machine-readable output encoding.
type OutputFormat string

const (
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

var validFormats = []OutputFormat{FormatYAML, FormatJSON}

// IsValid reports whether f is a supported format.
func (f OutputFormat) IsValid() bool {
	return slices.Contains(validFormats, f)
}

// ParseOutputFormat normalizes s into an OutputFormat. An empty string
// selects FormatYAML and "yml" is accepted as an alias. Unknown values are
// returned as is and fail IsValid.
func ParseOutputFormat(s string) OutputFormat {
	switch f := strings.ToLower(s); f {
	case "", "yml":
		return FormatYAML
	default:
		if slices.Contains(validFormats, OutputFormat(f)) {
			return OutputFormat(f)
		}
		return OutputFormat(s)
	}
}

// ValidFormats returns the supported format names.
func ValidFormats() []string {
	names := make([]string, len(validFormats))
	for i, f := range validFormats {
		names[i] = string(f)
	}
	return names
}
