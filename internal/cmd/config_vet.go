package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reactkit/crc/internal/cmdutil"
	"github.com/reactkit/crc/internal/config"
	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the configuration file against the crc schema.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Only known fields are set, with values of the right type
  4. Directory names are single path segments and sharedName is an identifier

Examples:
  # Validate ./.crc.yaml
  crc config vet

  # Validate a custom config path
  crc config vet --config /path/to/crc.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	path := globals.configPath.ConfigPath

	output.Debug("validating config",
		"path", path,
		"source", globals.configPath.Source,
	)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.ReportError(oerrors.WrapFilesystem(err, "checking "+path), nil)
	}
	if !exists {
		return cmdutil.ReportError(oerrors.NewNotFoundError(
			"configuration file not found", path,
			"Run 'crc config init' to create a default configuration.",
		), nil)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return cmdutil.ReportError(err, nil)
	}

	if err := validator.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				output.Error("invalid field", "field", e.Field, "error", e.Message)
			}
		}
		return cmdutil.ReportError(oerrors.NewValidationError(
			"configuration is invalid", path, "",
			"Fix the fields listed above.",
		), nil)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+path))
	return nil
}
