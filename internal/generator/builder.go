package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reactkit/crc/internal/layout"
	"github.com/reactkit/crc/internal/templates"
)

// File name suffixes of the generated artifacts.
const (
	indexExt        = ".js"
	webExt          = ".jsx"
	nativeExt       = ".native.js"
	testWebExt      = ".test.jsx"
	testNativeExt   = ".test.native.js"
	storyExt        = ".stories.jsx"
	storyTestExt    = ".stories.test.jsx"
	containerSuffix = "Container.js"

	folderIndexFile = "index.js"
)

// BuildOptions carries everything BuildArtifacts needs besides the component.
type BuildOptions struct {
	// Layout locates tests and containers. Empty fields use the defaults.
	Layout layout.Layout

	// Policy decides file name casing. nil means DefaultCasingPolicy.
	Policy CasingPolicy

	// Legacy replaces Policy with the first-keeps-case rule.
	Legacy bool

	Flags Flags
}

// fileNames holds the cased file names of one component.
type fileNames struct {
	index, web, native          string
	testWeb, testNative         string
	story, storyTest, container string
}

// BuildArtifacts returns the files of component name in relDir, a path
// relative to the request base. The order is index, render files, story,
// tests, container.
func BuildArtifacts(name layout.ComponentName, relDir string, opts BuildOptions) ([]Artifact, error) {
	l := opts.Layout.WithDefaults()
	flags := opts.Flags
	names := resolveFileNames(name, l.SharedName, opts)

	var testUpper bool
	if opts.Legacy {
		testUpper = flags.Uppercase
	} else {
		testUpper = policyOrDefault(opts.Policy).Capitalizes(KindIndex, flags.Uppercase)
	}

	web := Artifact{
		Path:    filepath.Join(relDir, names.web),
		Kind:    KindWebComponent,
		Content: renderWeb(l.SharedName, flags.Functional),
	}
	native := Artifact{
		Path:    filepath.Join(relDir, names.native),
		Kind:    KindNativeComponent,
		Content: templates.CreateReactNativeComponent(l.SharedName),
	}

	artifacts := []Artifact{{
		Path:    filepath.Join(relDir, names.index),
		Kind:    KindIndex,
		Content: templates.CreateIndex(name.Capitalized, l.SharedName),
	}}
	if flags.ReactNative {
		artifacts = append(artifacts, native, web)
	} else {
		artifacts = append(artifacts, web, native)
	}

	if flags.Storybook {
		artifacts = append(artifacts, Artifact{
			Path:    filepath.Join(relDir, names.story),
			Kind:    KindStorybookComponent,
			Content: templates.CreateStorybookComponent(name.Raw, l.SharedName),
		})
	}

	if !flags.NoTest {
		testDir := filepath.Join(relDir, l.TestsDir)
		testContent := templates.CreateTest(name.Raw, testUpper)
		artifacts = append(artifacts,
			Artifact{Path: filepath.Join(testDir, names.testWeb), Kind: KindTestWeb, Content: testContent},
			Artifact{Path: filepath.Join(testDir, names.testNative), Kind: KindTestNative, Content: testContent},
		)
		if flags.Storybook {
			artifacts = append(artifacts, Artifact{
				Path:    filepath.Join(testDir, names.storyTest),
				Kind:    KindStorybookTest,
				Content: templates.CreateStorybookTest(name.Raw),
			})
		}
	}

	if flags.WithContainer {
		container, err := buildContainer(name, relDir, names, l)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, container)
	}

	return artifacts, nil
}

// BuildFolderIndex returns the index.js in relParent re-exporting folders.
func BuildFolderIndex(folders []layout.ComponentName, relParent string) Artifact {
	raw := make([]string, len(folders))
	for i, f := range folders {
		raw[i] = f.Raw
	}
	return Artifact{
		Path:    filepath.Join(relParent, folderIndexFile),
		Kind:    KindFolderIndex,
		Content: templates.CreateIndexForFolders(raw),
	}
}

func buildContainer(name layout.ComponentName, relDir string, names fileNames, l layout.Layout) (Artifact, error) {
	dir, err := l.ContainerDir(filepath.Dir(relDir))
	if err != nil {
		return Artifact{}, fmt.Errorf("resolving container directory for %s: %w", name, err)
	}
	importPath, err := l.ContainerImportPath(relDir)
	if err != nil {
		return Artifact{}, fmt.Errorf("resolving container import for %s: %w", name, err)
	}
	importPath += "/" + strings.TrimSuffix(names.index, indexExt)

	return Artifact{
		Path:    filepath.Join(dir, names.container),
		Kind:    KindContainer,
		Content: templates.CreateComponentContainerFile(name.Capitalized, importPath),
	}, nil
}

func renderWeb(sharedName string, functional bool) string {
	if functional {
		return templates.CreateReactFunctionalComponent(sharedName)
	}
	return templates.CreateReactComponent(sharedName)
}

func resolveFileNames(name layout.ComponentName, sharedName string, opts BuildOptions) fileNames {
	n := fileNames{
		index:      name.Raw + indexExt,
		web:        sharedName + webExt,
		native:     sharedName + nativeExt,
		testWeb:    name.Raw + testWebExt,
		testNative: name.Raw + testNativeExt,
		story:      name.Raw + storyExt,
		storyTest:  name.Raw + storyTestExt,
		container:  name.Raw + containerSuffix,
	}

	if opts.Legacy {
		component := legacyCase([]string{n.index, n.web, n.native, n.story})
		n.index, n.web, n.native, n.story = component[0], component[1], component[2], component[3]
		tests := legacyCase([]string{n.testWeb, n.testNative, n.storyTest})
		n.testWeb, n.testNative, n.storyTest = tests[0], tests[1], tests[2]
		n.container = legacyCase([]string{n.container})[0]
		return n
	}

	p := policyOrDefault(opts.Policy)
	up := opts.Flags.Uppercase
	n.index = p.Apply(KindIndex, n.index, up)
	n.web = p.Apply(KindWebComponent, n.web, up)
	n.native = p.Apply(KindNativeComponent, n.native, up)
	n.testWeb = p.Apply(KindTestWeb, n.testWeb, up)
	n.testNative = p.Apply(KindTestNative, n.testNative, up)
	n.story = p.Apply(KindStorybookComponent, n.story, up)
	n.storyTest = p.Apply(KindStorybookTest, n.storyTest, up)
	n.container = p.Apply(KindContainer, n.container, up)
	return n
}

func policyOrDefault(p CasingPolicy) CasingPolicy {
	if p == nil {
		return DefaultCasingPolicy()
	}
	return p
}
