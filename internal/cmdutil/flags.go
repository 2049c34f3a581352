// Package cmdutil provides shared command utilities for the crc CLI.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/reactkit/crc/internal/config"
	"github.com/reactkit/crc/internal/generator"
)

// GenerateFlags holds the flags that shape one generation run.
type GenerateFlags struct {
	WithContainer bool
	NoTest        bool
	ReactNative   bool
	CreateIndex   bool
	Functional    bool
	Uppercase     bool
	Storybook     bool
	DryRun        bool
	LegacyCasing  bool
}

// AddTo registers the generation flags on the given command.
func (f *GenerateFlags) AddTo(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&f.WithContainer, "withcontainer", false, "Create a container file for each component")
	fs.BoolVar(&f.NoTest, "notest", false, "Do not create test files")
	fs.BoolVar(&f.ReactNative, "reactnative", false, "Reserved for compatibility; generates the same files as without it")
	fs.BoolVar(&f.CreateIndex, "createindex", false, "Create an index.js re-exporting the named folders")
	fs.BoolVarP(&f.Functional, "functional", "f", false, "Use a stateless functional component for the web render file")
	fs.BoolVarP(&f.Uppercase, "uppercase", "u", false, "Capitalize test file names")
	fs.BoolVar(&f.Storybook, "storybook", false, "Create a story and a storyshots test")
	fs.BoolVar(&f.DryRun, "dry-run", false, "Print the files that would be created without writing them")
	fs.BoolVar(&f.LegacyCasing, "legacy-casing", false, "Keep the first file name of each list in its typed case")
}

// Resolve merges the flags with the config defaults and reports whether
// legacy casing is on. A flag given on the command line always wins.
// Flags without a config counterpart are taken as parsed.
func (f *GenerateFlags) Resolve(cmd *cobra.Command, cfg *config.Config, l *config.Loader) (generator.Flags, bool) {
	resolve := func(flag, key string, flagValue, configValue bool) bool {
		rv := config.ResolveBool(key, cmd.Flags().Changed(flag), flagValue, configValue, l.Source(key))
		config.LogResolvedValues([]config.ResolvedValue{rv})
		return rv.Bool()
	}

	flags := generator.Flags{
		WithContainer: resolve("withcontainer", "generate.withContainer", f.WithContainer, cfg.Generate.WithContainer),
		NoTest:        resolve("notest", "generate.noTest", f.NoTest, cfg.Generate.NoTest),
		Functional:    resolve("functional", "generate.functional", f.Functional, cfg.Generate.Functional),
		Storybook:     resolve("storybook", "generate.storybook", f.Storybook, cfg.Generate.Storybook),
		Uppercase:     resolve("uppercase", "casing.uppercase", f.Uppercase, cfg.Casing.Uppercase),
		ReactNative:   f.ReactNative,
		CreateIndex:   f.CreateIndex,
		DryRun:        f.DryRun,
	}
	legacy := resolve("legacy-casing", "casing.legacy", f.LegacyCasing, cfg.Casing.Legacy)

	return flags, legacy
}
