package list

import (
	"io"
	"strings"

	awslib "awsls/internal/aws"
	"awsls/internal/inventory"
	"awsls/internal/output"

	"github.com/spf13/cobra"
)

var serviceColumns = []string{"Service", "Resources", "Columns"}

// NewServicesCmd creates and returns the services command
func NewServicesCmd(runner *inventory.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "List supported services",
		Long: `List every service key accepted as the first argument of awsls,
with the kind of resource it lists and the columns it prints.`,
		Example: `  # List supported services
  awsls list services`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServices(runner.Registry, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runServices(registry *awslib.Registry, w io.Writer) error {
	keys := registry.Keys()
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		lister, err := registry.Lookup(key)
		if err != nil {
			return err
		}
		rows = append(rows, []string{key, lister.Label(), strings.Join(lister.Columns(), ", ")})
	}

	return output.Render(w, "Supported Services", rows, serviceColumns)
}
