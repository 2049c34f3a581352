// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reactkit/crc/internal/cmdutil"
	"github.com/reactkit/crc/internal/config"
	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded during PersistentPreRunE
	globals *globalState
)

// globalState is the configuration shared by every command of one invocation.
type globalState struct {
	workDir    string
	configPath config.ResolveConfigPathResult
	loader     *config.Loader
	cfg        *config.Config

	// loadErr is kept so that commands which do not need the config, such
	// as `config vet`, still run when the file is broken.
	loadErr error
}

// NewRootCmd creates the root command for the crc CLI.
func NewRootCmd() *cobra.Command {
	var genFlags cmdutil.GenerateFlags

	rootCmd := &cobra.Command{
		Use:   "crc [flags] <path> [name...]",
		Short: "Create React components",
		Long: `crc scaffolds React and React Native components.

The first argument is a path relative to the working directory. Its parent
folder receives every component; the last segment of each argument names a
component.

Files created per component (default flags):
  <dir>/<Name>.js                          index wrapping the render file
  <dir>/Render.jsx                         web render file
  <dir>/Render.native.js                   React Native render file
  <dir>/__tests__/<name>.test.jsx          web snapshot test
  <dir>/__tests__/<name>.test.native.js    native snapshot test

Existing component folders are never overwritten.

Examples:
  # Create src/components/button
  crc src/components/button

  # Create three components with containers and functional render files
  crc src/components/button card list --withcontainer -f

  # Write src/components/index.js re-exporting existing folders
  crc src/components/button card --createindex`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, &genFlags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: CRC_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	genFlags.AddTo(rootCmd)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	})

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	state := &globalState{
		workDir:    workDir,
		configPath: config.ResolveConfigPath(configFlag, workDir),
		loader:     config.NewLoader(),
	}

	cfg, err := state.loader.LoadWithDefaults(state.configPath.ConfigPath)
	if err != nil {
		output.Debug("config load error", "error", err)
		state.loadErr = err
		cfg = config.DefaultConfig()
	}
	state.cfg = cfg
	globals = state

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"workdir", workDir,
			"config", state.configPath.ConfigPath,
			"config_source", state.configPath.Source,
			"config_loaded", state.loader.ConfigFileUsed() != "",
		)
		config.LogResolvedValues(config.ResolveAll(state.loader, cfg))
	}

	return nil
}
