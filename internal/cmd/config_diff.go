package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/reactkit/crc/internal/cmdutil"
	"github.com/reactkit/crc/internal/config"
	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/output"
)

var configDiffColor bool

// NewConfigDiffCmd creates the config diff command.
func NewConfigDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how the effective configuration differs from the defaults",
		Long: `Compare the effective configuration (file and CRC_* environment
variables) with the built-in defaults.

Examples:
  # Show overridden settings
  crc config diff

  # Force colored output
  crc config diff --color`,
		Args: cobra.NoArgs,
		RunE: runConfigDiff,
	}

	cmd.Flags().BoolVar(&configDiffColor, "color", output.IsTTY(), "Colorize the diff")

	return cmd
}

func runConfigDiff(cmd *cobra.Command, args []string) error {
	if globals.loadErr != nil {
		return cmdutil.ReportError(oerrors.NewValidationError(
			globals.loadErr.Error(), globals.configPath.ConfigPath, "", "",
		), nil)
	}

	defaults, err := yaml.Marshal(config.DefaultConfig().WithDefaults())
	if err != nil {
		return cmdutil.ReportError(err, nil)
	}
	effective, err := yaml.Marshal(globals.cfg)
	if err != nil {
		return cmdutil.ReportError(err, nil)
	}

	report, err := output.DiffYAML(
		output.YAMLDocument{Name: "defaults", Data: defaults},
		output.YAMLDocument{Name: globals.configPath.ConfigPath, Data: effective},
		configDiffColor,
	)
	if err != nil {
		return cmdutil.ReportError(err, nil)
	}

	if report == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No differences from the defaults.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), report)
	return nil
}
