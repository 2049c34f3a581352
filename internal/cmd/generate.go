package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reactkit/crc/internal/cmdutil"
	"github.com/reactkit/crc/internal/config"
	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/generator"
	"github.com/reactkit/crc/internal/output"
)

func runGenerate(cmd *cobra.Command, args []string, genFlags *cmdutil.GenerateFlags) error {
	if globals.loadErr != nil {
		return cmdutil.ReportError(oerrors.NewValidationError(
			globals.loadErr.Error(), globals.configPath.ConfigPath, "",
			"Run 'crc config vet' to check the configuration file.",
		), nil)
	}
	if err := vetConfigFile(); err != nil {
		return cmdutil.ReportError(err, nil)
	}

	flags, legacy := genFlags.Resolve(cmd, globals.cfg, globals.loader)
	policy, err := generator.DefaultCasingPolicy().WithOverrides(globals.cfg.Casing.Policy)
	if err != nil {
		return cmdutil.ReportError(oerrors.NewValidationError(
			err.Error(), globals.loader.ConfigFileUsed(), "casing.policy", "",
		), nil)
	}

	req := generator.Request{
		Names:    args,
		BasePath: globals.workDir,
		Flags:    flags,
	}

	gen := generator.New(
		generator.NewOSFileSystem(),
		generator.WithLayout(globals.cfg.Layout),
		generator.WithCasingPolicy(policy),
		generator.WithLegacyCasing(legacy),
	)

	var result *generator.Result
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var runErr error
		result, runErr = gen.Run(cmd.Context(), req)
		return runErr
	}, output.WithTitle("Creating components files..."))
	if err != nil {
		return cmdutil.ReportError(err, result)
	}

	cmdutil.WriteResult(cmd.OutOrStdout(), args[0], filepath.Base(globals.workDir), result)
	return nil
}

// vetConfigFile checks the loaded config file against the schema.
func vetConfigFile() error {
	path := globals.loader.ConfigFileUsed()
	if path == "" {
		return nil
	}
	validator, err := config.NewValidator()
	if err != nil {
		return err
	}
	if err := validator.ValidateFile(path); err != nil {
		return oerrors.NewValidationError(err.Error(), path, "", "Run 'crc config vet' for details.")
	}
	return nil
}
