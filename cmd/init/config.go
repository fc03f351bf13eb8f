package init

import (
	"fmt"
	"path/filepath"

	"awsls/internal/config"

	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config subcommand
func NewConfigCmd() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create a default config.yaml file",
		Long: `Create a default config.yaml file with recommended settings.

The file is created in ~/.awsls by default, where awsls looks for it.
You can specify a different location using the --output flag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(output)
			if err != nil {
				return err
			}

			written, err := config.WriteDefaultConfig(path, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", written)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: ~/.awsls/config.yaml)")

	return cmd
}

func configPath(output string) (string, error) {
	if output != "" {
		return output, nil
	}
	dir, err := config.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
