package templates

import (
	"fmt"
	"regexp"
)

// jsIdentifierRegex matches identifiers usable as a JS class or import binding.
var jsIdentifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ValidateIdentifier checks that name renders into valid import and class
// statements. Rendering does not require it; callers use it for warnings.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if !jsIdentifierRegex.MatchString(name) {
		return fmt.Errorf("invalid identifier %q: must start with a letter, '_' or '$' and contain only letters, digits, '_' and '$'", name)
	}
	return nil
}
