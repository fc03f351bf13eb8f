package config

// GlobalConfig holds the global configuration for the application
type GlobalConfig struct {
	// Profile is the AWS profile to use. Empty means the SDK's default credential discovery.
	Profile string

	// MaxRetries is the retry budget of every AWS API call
	MaxRetries int

	// LogLevel is the minimum level written to stderr
	LogLevel string

	// LogFormat is the format for logging (text or json)
	LogFormat string

	// Progress enables progress bars for per-item describe calls
	Progress bool

	// NoColor disables colored log output
	NoColor bool
}

// Config is the global configuration instance
var Config = NewGlobalConfig()

// NewGlobalConfig returns a GlobalConfig holding the default values
func NewGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		MaxRetries: DefaultRetryConfig.MaxRetries,
		LogLevel:   "WARN",
		LogFormat:  "text",
	}
}
