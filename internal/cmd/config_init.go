package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reactkit/crc/internal/cmdutil"
	"github.com/reactkit/crc/internal/config"
	oerrors "github.com/reactkit/crc/internal/errors"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a .crc.yaml holding the default layout and generation settings.

Examples:
  # Create ./.crc.yaml
  crc config init

  # Overwrite an existing file
  crc config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := globals.configPath.ConfigPath

	if err := config.WriteDefault(path, configInitForce); err != nil {
		if errors.Is(err, os.ErrExist) {
			return cmdutil.ReportError(&oerrors.DetailError{
				Type:     "validation failed",
				Message:  "configuration already exists",
				Location: path,
				Hint:     "Use --force to overwrite existing configuration.",
				Cause:    oerrors.ErrValidation,
			}, nil)
		}
		return cmdutil.ReportError(oerrors.WrapFilesystem(err, "writing "+path), nil)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Configuration written to "+path)
	fmt.Fprintln(cmd.OutOrStdout(), "Validate with: crc config vet")
	return nil
}
