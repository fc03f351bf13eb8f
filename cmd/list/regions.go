package list

import (
	"awsls/internal/config"
	"awsls/internal/inventory"

	"github.com/spf13/cobra"
)

// NewRegionsCmd creates and returns the regions command
func NewRegionsCmd(runner *inventory.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions [region]",
		Short: "List regions enabled for the account",
		Long: `List the regions enabled for the account behind the selected profile.
The region argument selects the endpoint that answers the query; when omitted,
the region of the environment or profile is used.`,
		Example: `  # List enabled regions, asking us-east-1
  awsls list regions us-east-1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var region string
			if len(args) == 1 {
				region = args[0]
			}
			return inventory.Exit(runner.Regions(cmd.Context(), config.Config.Profile, region))
		},
	}

	return cmd
}
