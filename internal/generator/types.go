// Package generator turns a generation request into component files on disk.
//
// BuildArtifacts decides which files a component gets, where they go and what
// they contain. Generator.Run validates a request, checks that nothing would
// be overwritten and then writes every artifact through a FileSystem.
package generator

import (
	"path/filepath"
	"time"

	"github.com/reactkit/crc/internal/layout"
)

// Flags are the generation switches given on the command line.
type Flags struct {
	// WithContainer adds a redux container file per component.
	WithContainer bool

	// NoTest skips the test files.
	NoTest bool

	// ReactNative lists the native render file first in the plan. It is
	// accepted for compatibility; the written files are the same.
	ReactNative bool

	// CreateIndex writes an index.js re-exporting the named folders instead
	// of scaffolding components.
	CreateIndex bool

	// Functional uses the functional template for the web render file.
	Functional bool

	// Uppercase capitalizes test file names.
	Uppercase bool

	// Storybook adds a story and a storyshots test per component.
	Storybook bool

	// DryRun plans the artifacts without touching the filesystem.
	DryRun bool
}

// Request is a parsed generation request. It is not modified after parsing.
type Request struct {
	// Names are the positional arguments. The parent folder of the first one
	// is the parent of every component; the last segment of each one is a
	// component name.
	// Required. Must not be empty.
	Names []string

	// BasePath is the directory Names are relative to.
	// Required. Must be an existing directory.
	BasePath string

	// Flags selects the artifacts to generate.
	Flags Flags
}

// Kind identifies what an artifact contains.
type Kind string

const (
	KindIndex              Kind = "index"
	KindWebComponent       Kind = "web-component"
	KindNativeComponent    Kind = "native-component"
	KindContainer          Kind = "container"
	KindTestWeb            Kind = "test-web"
	KindTestNative         Kind = "test-native"
	KindStorybookComponent Kind = "storybook-component"
	KindStorybookTest      Kind = "storybook-test"
	KindFolderIndex        Kind = "folder-index"
)

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Artifact is one file to generate.
type Artifact struct {
	// Path is relative to the request's BasePath.
	Path string

	Kind    Kind
	Content string
}

// Dir returns the directory the artifact is written to.
func (a Artifact) Dir() string {
	return filepath.Dir(a.Path)
}

// WriteOutcome is the result of writing one artifact.
type WriteOutcome struct {
	Path string
	Kind Kind
	Err  error
}

// Success reports whether the artifact was written.
func (o WriteOutcome) Success() bool {
	return o.Err == nil
}

// ComponentResult groups the outcomes of one component.
type ComponentResult struct {
	Name     layout.ComponentName
	Dir      string
	Outcomes []WriteOutcome
}

// Failed returns the outcomes that did not succeed.
func (r ComponentResult) Failed() []WriteOutcome {
	var failed []WriteOutcome
	for _, o := range r.Outcomes {
		if !o.Success() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Result is the outcome of a whole run.
type Result struct {
	Components []ComponentResult
	Elapsed    time.Duration

	// DryRun is set when nothing was written.
	DryRun bool
}

// Files returns the path of every artifact of the run keyed to its kind.
func (r *Result) Files() map[string]Kind {
	files := make(map[string]Kind)
	for _, c := range r.Components {
		for _, o := range c.Outcomes {
			files[o.Path] = o.Kind
		}
	}
	return files
}

// Stage is a step of Generator.Run.
type Stage int

const (
	StageIdle Stage = iota
	StageValidating
	StageCheckingExistence
	StageCreatingDirectories
	StageWritingFiles
	StageDone
	StageFailed
)

var stageNames = map[Stage]string{
	StageIdle:                "idle",
	StageValidating:          "validating",
	StageCheckingExistence:   "checking-existence",
	StageCreatingDirectories: "creating-directories",
	StageWritingFiles:        "writing-files",
	StageDone:                "done",
	StageFailed:              "failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
