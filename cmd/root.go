package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	initCmd "awsls/cmd/init"
	"awsls/cmd/list"
	"awsls/cmd/version"
	awslib "awsls/internal/aws"
	_ "awsls/internal/aws/listers" // Import for side effects (lister registration)
	"awsls/internal/config"
	"awsls/internal/inventory"
	"awsls/internal/logging"
	"awsls/internal/output"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd(inventory.NewRunner())
	return exitCode(rootCmd.ExecuteContext(ctx), os.Stderr)
}

// exitCode maps a command error to an exit code. Errors not already reported
// (usage errors, bad flags) are printed here.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return awslib.ExitOK
	}

	var exitErr *inventory.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintf(stderr, "Error: %s\n", err)
	return awslib.ExitFailure
}

// NewRootCmd creates the root command. Listing commands run through runner.
func NewRootCmd(runner *inventory.Runner) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "awsls <service> <region>",
		Short: "awsls - list AWS resources of one service in one region",
		Long: `awsls lists the resources of a single AWS service in a single region
and prints them as a plain text table.

Supported services: ` + joinServices(runner.Registry) + `.`,
		Example: `  # List EC2 instances in us-east-1
  awsls ec2 us-east-1

  # List the S3 buckets located in eu-west-1 using a named profile
  awsls s3 eu-west-1 --profile dev`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config initialization for commands that do not touch AWS
			if skipSetup(cmd) {
				return nil
			}
			return setup(cmd, configFile, runner)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return inventory.Exit(runner.Run(cmd.Context(), inventory.Request{
				Service: args[0],
				Region:  args[1],
				Profile: config.Config.Profile,
			}))
		},
	}

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to config file (default: ./config.yaml or ~/.awsls/config.yaml)")
	flags.StringP("profile", "p", "", "AWS profile to use (default: environment / default credential chain)")
	flags.Int("max-retries", config.DefaultRetryConfig.MaxRetries, "Retry budget for every AWS API call")
	flags.String("log-level", "WARN", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	flags.String("log-format", "text", "Log output format (text or json)")
	flags.Bool("progress", false, "Show progress while describing buckets and tables")
	flags.Bool("no-color", false, "Disable colored log output")

	// Add commands
	rootCmd.AddCommand(list.NewListCmd(runner))
	rootCmd.AddCommand(initCmd.NewInitCmd())
	rootCmd.AddCommand(version.NewVersionCmd())

	return rootCmd
}

// setup binds flags to viper, loads the configuration and configures logging and the runner
func setup(cmd *cobra.Command, configFile string, runner *inventory.Runner) error {
	flags := cmd.Root().PersistentFlags()
	for _, key := range config.Keys() {
		if err := viper.BindPFlag(key, flags.Lookup(config.FlagName(key))); err != nil {
			return fmt.Errorf("failed to bind flag for %s: %w", key, err)
		}
	}

	if err := config.InitConfig(configFile); err != nil {
		return err
	}
	config.Load()

	color.NoColor = color.NoColor || config.Config.NoColor
	logging.Configure(logging.LogConfig{
		Level:  logging.ParseLevel(config.Config.LogLevel),
		Format: logging.ParseFormat(config.Config.LogFormat),
	})
	config.LogConfigurationSources(cmd)

	if config.Config.Progress {
		runner.Progress = func(description string, total int) awslib.Tracker {
			return output.NewProgressBar(runner.Stderr, description, total)
		}
	}

	return nil
}

func skipSetup(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "init"
}

func joinServices(registry *awslib.Registry) string {
	return strings.Join(registry.Keys(), ", ")
}
