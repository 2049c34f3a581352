package generator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/reactkit/crc/internal/naming"
)

// CasingRule decides whether a file name is capitalized.
type CasingRule int

const (
	// Always capitalizes the file name.
	Always CasingRule = iota

	// Never keeps the name as typed.
	Never

	// FollowFlag capitalizes only when --uppercase is given.
	FollowFlag
)

var casingRuleNames = map[string]CasingRule{
	"always": Always,
	"never":  Never,
	"flag":   FollowFlag,
}

// ParseCasingRule parses a rule name: "always", "never" or "flag".
func ParseCasingRule(s string) (CasingRule, error) {
	rule, ok := casingRuleNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown casing rule %q (want always, never or flag)", s)
	}
	return rule, nil
}

// CasingPolicy maps artifact kinds to their file name casing rule.
// Kinds missing from the policy are left as typed.
type CasingPolicy map[Kind]CasingRule

// DefaultCasingPolicy capitalizes component, container and storybook files
// and lets --uppercase decide for test files.
func DefaultCasingPolicy() CasingPolicy {
	return CasingPolicy{
		KindIndex:              Always,
		KindWebComponent:       Always,
		KindNativeComponent:    Always,
		KindContainer:          Always,
		KindStorybookComponent: Always,
		KindStorybookTest:      Always,
		KindTestWeb:            FollowFlag,
		KindTestNative:         FollowFlag,
		KindFolderIndex:        Never,
	}
}

// WithOverrides returns a copy of p where overrides, keyed by kind name and
// holding rule names, replace the matching rules.
func (p CasingPolicy) WithOverrides(overrides map[string]string) (CasingPolicy, error) {
	out := maps.Clone(p)
	if out == nil {
		out = make(CasingPolicy)
	}
	known := DefaultCasingPolicy()
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		kind := Kind(name)
		if _, ok := known[kind]; !ok {
			return nil, fmt.Errorf("unknown artifact kind %q", name)
		}
		rule, err := ParseCasingRule(overrides[name])
		if err != nil {
			return nil, fmt.Errorf("casing of %s: %w", name, err)
		}
		out[kind] = rule
	}
	return out, nil
}

// Capitalizes reports whether a file of kind is capitalized.
func (p CasingPolicy) Capitalizes(kind Kind, uppercase bool) bool {
	rule, ok := p[kind]
	if !ok {
		return false
	}
	switch rule {
	case Always:
		return true
	case FollowFlag:
		return uppercase
	default:
		return false
	}
}

// Apply returns fileName cased for kind.
func (p CasingPolicy) Apply(kind Kind, fileName string, uppercase bool) string {
	if p.Capitalizes(kind, uppercase) {
		return naming.Capitalize(fileName)
	}
	return fileName
}

// legacyCase reproduces the historical behavior: inside one creation-order
// list the first file name keeps its typed case and the rest are capitalized.
func legacyCase(fileNames []string) []string {
	out := make([]string, len(fileNames))
	for i, name := range fileNames {
		if i == 0 {
			out[i] = name
			continue
		}
		out[i] = naming.Capitalize(name)
	}
	return out
}
