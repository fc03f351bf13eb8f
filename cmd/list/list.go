package list

import (
	"awsls/internal/inventory"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd(runner *inventory.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List awsls services, AWS profiles and regions",
		Long: `List what awsls can work with.
Currently supports listing:
  - Supported services and the resources they list
  - Available AWS credential profiles
  - Regions enabled for the account`,
	}

	// Add subcommands
	cmd.AddCommand(NewServicesCmd(runner))
	cmd.AddCommand(NewProfilesCmd())
	cmd.AddCommand(NewRegionsCmd(runner))

	return cmd
}
