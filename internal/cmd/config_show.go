package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/reactkit/crc/internal/cmdutil"
	"github.com/reactkit/crc/internal/config"
	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/output"
)

var (
	configShowFormat  string
	configShowSources bool
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration crc would use in this directory.

Examples:
  # Print as YAML
  crc config show

  # Print as JSON
  crc config show -o json

  # Show where every value comes from
  crc config show --sources`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}

	cmd.Flags().StringVarP(&configShowFormat, "output", "o", "yaml", "Output format: yaml, json")
	cmd.Flags().BoolVar(&configShowSources, "sources", false, "Show the source of every value")

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if globals.loadErr != nil {
		return cmdutil.ReportError(oerrors.NewValidationError(
			globals.loadErr.Error(), globals.configPath.ConfigPath, "", "",
		), nil)
	}

	w := cmd.OutOrStdout()

	if configShowSources {
		tbl := output.NewTable("KEY", "VALUE", "SOURCE")
		for _, v := range config.ResolveAll(globals.loader, globals.cfg) {
			tbl.Row(v.Key, fmt.Sprint(v.Value), string(v.Source))
		}
		fmt.Fprintln(w, tbl.String())
		return nil
	}

	format := output.ParseOutputFormat(configShowFormat)
	if !format.IsValid() {
		return cmdutil.ReportError(oerrors.NewValidationError(
			fmt.Sprintf("unsupported output format %q", configShowFormat), "", "output",
			fmt.Sprintf("Valid formats: %v", output.ValidFormats()),
		), nil)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case output.FormatJSON:
		data, err = json.MarshalIndent(globals.cfg, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(globals.cfg)
	}
	if err != nil {
		return cmdutil.ReportError(err, nil)
	}

	fmt.Fprint(w, string(data))
	return nil
}
