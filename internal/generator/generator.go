package generator

import (
	"context"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/layout"
	"github.com/reactkit/crc/internal/output"
	"github.com/reactkit/crc/internal/templates"
)

// Generator materializes requests on a FileSystem.
// A Generator holds no per-run state and may be reused.
type Generator struct {
	fs      FileSystem
	layout  layout.Layout
	policy  CasingPolicy
	legacy  bool
	onStage func(Stage)
}

// Option configures a Generator.
type Option func(*Generator)

// WithLayout sets the project layout.
func WithLayout(l layout.Layout) Option {
	return func(g *Generator) {
		g.layout = l.WithDefaults()
	}
}

// WithCasingPolicy sets the file name casing policy.
func WithCasingPolicy(p CasingPolicy) Option {
	return func(g *Generator) {
		g.policy = p
	}
}

// WithLegacyCasing switches to the first-keeps-case naming rule.
func WithLegacyCasing(legacy bool) Option {
	return func(g *Generator) {
		g.legacy = legacy
	}
}

// WithStageHook registers fn to be called on every stage transition.
func WithStageHook(fn func(Stage)) Option {
	return func(g *Generator) {
		g.onStage = fn
	}
}

// New creates a Generator writing to fs.
func New(fs FileSystem, opts ...Option) *Generator {
	g := &Generator{
		fs:     fs,
		layout: layout.DefaultLayout(),
		policy: DefaultCasingPolicy(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// plan is the work for one target of a request.
type plan struct {
	name layout.ComponentName
	dir  string

	// target must not exist before the run.
	target    string
	isFile    bool
	artifacts []Artifact
}

// Run validates req, refuses to overwrite anything and writes every artifact.
//
// Existence of every target, component directories and container files alike,
// is checked before the first directory is created, so a run failing with
// ErrAlreadyExists or a validation error leaves the filesystem untouched.
// A dry run stops after that check. Write failures are not rolled back; the returned
// Result then records which files were written.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	g.enter(StageValidating)
	if err := ctx.Err(); err != nil {
		return nil, g.fail(err)
	}
	if err := Validate(req, g.layout); err != nil {
		return nil, g.fail(err)
	}
	plans, err := g.plan(req)
	if err != nil {
		return nil, g.fail(err)
	}

	result := &Result{
		Components: make([]ComponentResult, len(plans)),
		DryRun:     req.Flags.DryRun,
	}
	for i, p := range plans {
		outcomes := make([]WriteOutcome, len(p.artifacts))
		for j, a := range p.artifacts {
			outcomes[j] = WriteOutcome{Path: a.Path, Kind: a.Kind}
		}
		result.Components[i] = ComponentResult{Name: p.name, Dir: p.dir, Outcomes: outcomes}
	}

	g.enter(StageCheckingExistence)
	if err := g.checkExistence(req.BasePath, plans); err != nil {
		return nil, g.fail(err)
	}

	if req.Flags.DryRun {
		result.Elapsed = time.Since(start)
		g.enter(StageDone)
		return result, nil
	}

	g.enter(StageCreatingDirectories)
	var dirs errgroup.Group
	for _, p := range plans {
		dirs.Go(func() error {
			return g.createDirectories(req.BasePath, p)
		})
	}
	if err := dirs.Wait(); err != nil {
		return nil, g.fail(err)
	}

	g.enter(StageWritingFiles)
	var components errgroup.Group
	for i, p := range plans {
		components.Go(func() error {
			return g.writeFiles(req.BasePath, p, result.Components[i].Outcomes)
		})
	}
	err = components.Wait()
	result.Elapsed = time.Since(start)
	if err != nil {
		return result, g.fail(err)
	}

	g.enter(StageDone)
	return result, nil
}

func (g *Generator) plan(req Request) ([]plan, error) {
	parent := layout.ResolveParentFolder(req.Names[0])

	names := make([]layout.ComponentName, len(req.Names))
	for i, arg := range req.Names {
		names[i] = layout.ResolveComponentName(arg)
		if err := templates.ValidateIdentifier(names[i].Capitalized); err != nil {
			output.Warn("component name is not a valid identifier", "name", names[i].Raw, "err", err)
		}
	}

	if req.Flags.CreateIndex {
		index := BuildFolderIndex(names, parent)
		return []plan{{
			name:      layout.ResolveComponentName(index.Path),
			dir:       parent,
			target:    index.Path,
			isFile:    true,
			artifacts: []Artifact{index},
		}}, nil
	}

	opts := BuildOptions{
		Layout: g.layout,
		Policy: g.policy,
		Legacy: g.legacy,
		Flags:  req.Flags,
	}

	plans := make([]plan, 0, len(names))
	for _, name := range names {
		dir := filepath.Join(parent, name.Raw)
		artifacts, err := BuildArtifacts(name, dir, opts)
		if err != nil {
			return nil, oerrors.NewValidationError(err.Error(), dir, "", "")
		}
		plans = append(plans, plan{
			name:      name,
			dir:       dir,
			target:    dir,
			artifacts: artifacts,
		})
	}
	return plans, nil
}

func (g *Generator) checkExistence(base string, plans []plan) error {
	ok, err := g.fs.DirExists(base)
	if err != nil {
		return oerrors.WrapFilesystem(err, "checking "+base)
	}
	if !ok {
		return oerrors.NewValidationError("base path is not an existing directory", base, "", "")
	}

	for _, p := range plans {
		target := filepath.Join(base, p.target)
		exists, err := g.fs.Exists(target)
		if err != nil {
			return oerrors.WrapFilesystem(err, "checking "+target)
		}
		if exists {
			if p.isFile {
				return oerrors.NewFileExistsError(target)
			}
			return oerrors.NewAlreadyExistsError(target)
		}

		// Containers share a directory, so only the file itself must be new.
		for _, a := range p.artifacts {
			if a.Kind != KindContainer {
				continue
			}
			path := filepath.Join(base, a.Path)
			exists, err := g.fs.Exists(path)
			if err != nil {
				return oerrors.WrapFilesystem(err, "checking "+path)
			}
			if exists {
				return oerrors.NewFileExistsError(path)
			}
		}
	}
	return nil
}

// createDirectories creates the component directory first, then the other
// directories its artifacts need.
func (g *Generator) createDirectories(base string, p plan) error {
	logger := output.ComponentLogger(p.name.Raw)

	dirs := []string{p.dir}
	seen := map[string]bool{p.dir: true}
	for _, a := range p.artifacts {
		if d := a.Dir(); !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}

	for _, d := range dirs {
		if err := g.fs.MkdirAll(filepath.Join(base, d)); err != nil {
			return oerrors.WrapFilesystem(err, "creating directory "+d)
		}
		logger.Debug("directory ready", "path", d)
	}
	return nil
}

// writeFiles writes the artifacts of p concurrently. Each goroutine only
// touches its own outcome slot.
func (g *Generator) writeFiles(base string, p plan, outcomes []WriteOutcome) error {
	logger := output.ComponentLogger(p.name.Raw)

	var files errgroup.Group
	for i, a := range p.artifacts {
		files.Go(func() error {
			err := g.fs.WriteFile(filepath.Join(base, a.Path), []byte(a.Content))
			if err != nil {
				err = oerrors.WrapFilesystem(err, "writing "+a.Path)
			} else {
				logger.Debug("wrote file", "path", a.Path, "kind", a.Kind)
			}
			outcomes[i].Err = err
			return err
		})
	}
	return files.Wait()
}

func (g *Generator) enter(s Stage) {
	output.Debug("generator stage", "stage", s)
	if g.onStage != nil {
		g.onStage(s)
	}
}

func (g *Generator) fail(err error) error {
	g.enter(StageFailed)
	return err
}
