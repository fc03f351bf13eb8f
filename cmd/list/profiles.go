package list

import (
	"fmt"
	"io"

	"awsls/internal/aws"

	"github.com/spf13/cobra"
)

// NewProfilesCmd creates and returns the profiles command
func NewProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List available AWS profiles",
		Long: `List all available AWS credential profiles from the system.
These profiles are read from the AWS credentials and config files,
honoring AWS_SHARED_CREDENTIALS_FILE and AWS_CONFIG_FILE.`,
		Example: `  # List all available AWS profiles
  awsls list profiles`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles(cmd.OutOrStdout())
		},
	}

	return cmd
}

func runProfiles(w io.Writer) error {
	profiles, err := aws.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	for _, profile := range profiles {
		fmt.Fprintln(w, profile)
	}

	return nil
}
