package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"awsls/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by awsls
const EnvPrefix = "AWSLS"

// flagNames maps config keys to the flag that overrides them
var flagNames = map[string]string{
	"aws.profile":     "profile",
	"aws.max_retries": "max-retries",
	"app.log_level":   "log-level",
	"app.log_format":  "log-format",
	"app.progress":    "progress",
	"app.no_color":    "no-color",
}

// FlagName returns the name of the flag that overrides key
func FlagName(key string) string {
	if name, ok := flagNames[key]; ok {
		return name
	}
	return strings.ReplaceAll(key, ".", "-")
}

// parameterSource tracks where each parameter value came from
type parameterSource struct {
	Key    string
	Value  interface{}
	Source string
}

// getParameterSource determines where a parameter value came from (config file, env var, flag, or default)
func getParameterSource(key string, cmd *cobra.Command) parameterSource {
	value := viper.Get(key)
	envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))

	flagName := FlagName(key)

	if cmd != nil {
		if f := cmd.Flags().Lookup(flagName); f != nil && f.Changed {
			return parameterSource{key, value, "command line flag"}
		}

		// Walk up the command chain checking persistent flags
		for current := cmd; current != nil; current = current.Parent() {
			if f := current.PersistentFlags().Lookup(flagName); f != nil && f.Changed {
				return parameterSource{key, value, "command line flag"}
			}
		}
	}

	if _, exists := os.LookupEnv(envKey); exists {
		return parameterSource{key, value, "environment variable"}
	}

	if viper.InConfig(key) {
		return parameterSource{key, value, "config file"}
	}

	return parameterSource{key, value, "default value"}
}

// LogConfigurationSources logs the source of each configuration parameter at DEBUG level
func LogConfigurationSources(cmd *cobra.Command) {
	logging.Debug("Configuration parameter sources:")
	for _, key := range Keys() {
		source := getParameterSource(key, cmd)
		logging.Debug(fmt.Sprintf("  %s = %v (from %s)", source.Key, source.Value, source.Source))
	}
}

// Keys returns every configuration key known to awsls
func Keys() []string {
	return []string{
		"aws.profile",
		"aws.max_retries",
		"app.log_level",
		"app.log_format",
		"app.progress",
		"app.no_color",
	}
}

// DefaultConfigDir returns ~/.awsls
func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".awsls"), nil
}

// InitConfig initializes the Viper configuration. An explicit configFile must exist;
// otherwise a missing config file is not an error.
func InitConfig(configFile string) error {
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	defaults := NewGlobalConfig()
	viper.SetDefault("aws.profile", defaults.Profile)
	viper.SetDefault("aws.max_retries", defaults.MaxRetries)
	viper.SetDefault("app.log_level", defaults.LogLevel)
	viper.SetDefault("app.log_format", defaults.LogFormat)
	viper.SetDefault("app.progress", defaults.Progress)
	viper.SetDefault("app.no_color", defaults.NoColor)

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	if dir, err := DefaultConfigDir(); err == nil {
		viper.AddConfigPath(dir)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// Load copies the resolved viper values into Config
func Load() {
	Config = &GlobalConfig{
		Profile:    viper.GetString("aws.profile"),
		MaxRetries: viper.GetInt("aws.max_retries"),
		LogLevel:   viper.GetString("app.log_level"),
		LogFormat:  viper.GetString("app.log_format"),
		Progress:   viper.GetBool("app.progress"),
		NoColor:    viper.GetBool("app.no_color"),
	}
}

// DefaultConfigContent is written by "awsls init config"
const DefaultConfigContent = `# awsls Configuration File

# AWS Configuration
aws:
  profile: ""  # AWS profile to use (empty: environment / default credential chain)
  max_retries: 3  # Retry budget for every AWS API call

# Application Configuration
app:
  log_level: WARN  # Logging level written to stderr (DEBUG, INFO, WARN, ERROR)
  log_format: text  # Log output format (text or json)
  progress: false  # Show progress bars while describing buckets and tables
  no_color: false  # Disable colored log output
`

// WriteDefaultConfig writes DefaultConfigContent to path, refusing to overwrite unless force is set
func WriteDefaultConfig(path string, force bool) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !force {
		return "", fmt.Errorf("file %s already exists. Use --force to overwrite", absPath)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(absPath, []byte(DefaultConfigContent), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return absPath, nil
}
