package init

import (
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize awsls configuration files",
		Long: `Initialize awsls configuration files.

This command helps you create a default config.yaml with the settings awsls reads.`,
	}

	cmd.AddCommand(NewConfigCmd())

	return cmd
}
