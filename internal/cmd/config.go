package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long: `Manage the project configuration file (.crc.yaml).

The config path is resolved using precedence:
  --config flag > CRC_CONFIG env > ./.crc.yaml`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigVetCmd())
	cmd.AddCommand(NewConfigDiffCmd())
	cmd.AddCommand(NewConfigShowCmd())

	return cmd
}
