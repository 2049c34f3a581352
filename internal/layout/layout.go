// Package layout resolves component names and the on-disk locations of the
// files generated for them.
package layout

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reactkit/crc/internal/naming"
)

// ErrAnchorNotFound is returned when a path holds no components anchor segment.
var ErrAnchorNotFound = errors.New("anchor segment not found")

// Defaults for the project layout.
const (
	DefaultComponentsDir = "components"
	DefaultContainersDir = "containers"
	DefaultTestsDir      = "__tests__"
	DefaultSharedName    = "Render"
	DefaultImportPrefix  = "../../"
)

// ComponentName is a component name in both of its forms.
type ComponentName struct {
	// Raw is the name as typed on the command line.
	Raw string

	// Capitalized has its first letter upper-cased and is used for identifiers.
	Capitalized string
}

// String returns the raw name.
func (n ComponentName) String() string {
	return n.Raw
}

// Layout describes where a project keeps components, containers and tests.
// It is resolved once per run from configuration.
type Layout struct {
	// ComponentsDir is the anchor directory name holding components.
	ComponentsDir string `json:"componentsDir" yaml:"componentsDir" mapstructure:"componentsDir"`

	// ContainersDir replaces ComponentsDir to locate container files.
	ContainersDir string `json:"containersDir" yaml:"containersDir" mapstructure:"containersDir"`

	// TestsDir is the test directory created inside each component directory.
	TestsDir string `json:"testsDir" yaml:"testsDir" mapstructure:"testsDir"`

	// SharedName is the base name of the render files.
	SharedName string `json:"sharedName" yaml:"sharedName" mapstructure:"sharedName"`

	// ImportPrefix is prepended to container import paths.
	ImportPrefix string `json:"importPrefix" yaml:"importPrefix" mapstructure:"importPrefix"`
}

// DefaultLayout returns the conventional layout.
func DefaultLayout() Layout {
	return Layout{
		ComponentsDir: DefaultComponentsDir,
		ContainersDir: DefaultContainersDir,
		TestsDir:      DefaultTestsDir,
		SharedName:    DefaultSharedName,
		ImportPrefix:  DefaultImportPrefix,
	}
}

// WithDefaults fills empty fields from DefaultLayout.
func (l Layout) WithDefaults() Layout {
	d := DefaultLayout()
	if l.ComponentsDir == "" {
		l.ComponentsDir = d.ComponentsDir
	}
	if l.ContainersDir == "" {
		l.ContainersDir = d.ContainersDir
	}
	if l.TestsDir == "" {
		l.TestsDir = d.TestsDir
	}
	if l.SharedName == "" {
		l.SharedName = d.SharedName
	}
	if l.ImportPrefix == "" {
		l.ImportPrefix = d.ImportPrefix
	}
	return l
}

// Validate checks that directory names are single path segments.
func (l Layout) Validate() error {
	for field, v := range map[string]string{
		"componentsDir": l.ComponentsDir,
		"containersDir": l.ContainersDir,
		"testsDir":      l.TestsDir,
		"sharedName":    l.SharedName,
	} {
		if !isSegment(v) {
			return fmt.Errorf("layout.%s %q must be a single directory or file name", field, v)
		}
	}
	return nil
}

// ResolveComponentName returns the component name for a command-line argument:
// its last path segment, ignoring trailing separators.
func ResolveComponentName(arg string) ComponentName {
	raw := lastSegment(arg)
	return ComponentName{
		Raw:         raw,
		Capitalized: naming.Capitalize(raw),
	}
}

// ResolveParentFolder strips the last segment of path and returns the
// containing directory. Trailing separators are ignored.
func ResolveParentFolder(path string) string {
	return filepath.Dir(filepath.Clean(path))
}

// ContainerImportPath returns the import path a container uses to reach the
// component at componentPath: the suffix starting at the first ComponentsDir
// segment, prefixed with ImportPrefix. Segments are always joined with "/".
func (l Layout) ContainerImportPath(componentPath string) (string, error) {
	segs := splitSegments(componentPath)
	i := indexOf(segs, l.ComponentsDir)
	if i < 0 {
		return "", fmt.Errorf("%q has no %q segment: %w", componentPath, l.ComponentsDir, ErrAnchorNotFound)
	}
	return l.ImportPrefix + strings.Join(segs[i:], "/"), nil
}

// ContainerDir returns parent with its first ComponentsDir segment replaced by
// ContainersDir.
func (l Layout) ContainerDir(parent string) (string, error) {
	segs := splitSegments(parent)
	i := indexOf(segs, l.ComponentsDir)
	if i < 0 {
		return "", fmt.Errorf("%q has no %q segment: %w", parent, l.ComponentsDir, ErrAnchorNotFound)
	}
	segs[i] = l.ContainersDir
	return filepath.FromSlash(strings.Join(segs, "/")), nil
}

func splitSegments(path string) []string {
	return strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
}

func lastSegment(path string) string {
	trimmed := strings.TrimRight(filepath.ToSlash(path), "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

func indexOf(segs []string, s string) int {
	for i, seg := range segs {
		if seg == s {
			return i
		}
	}
	return -1
}

func isSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}
