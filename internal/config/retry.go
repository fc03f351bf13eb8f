package config

import "time"

// RetryConfig holds the retry and backoff settings applied to AWS API calls
type RetryConfig struct {
	// MaxRetries is the maximum number of retries before giving up
	MaxRetries int
	// MinDelay is the initial delay duration for backoff
	MinDelay time.Duration
	// MaxDelay is the maximum delay duration for backoff
	MaxDelay time.Duration
	// MinThrottleDelay is the initial delay after a throttling response
	MinThrottleDelay time.Duration
	// MaxThrottleDelay is the maximum delay after a throttling response
	MaxThrottleDelay time.Duration
}

var (
	// DefaultRetryConfig provides default values for retries
	DefaultRetryConfig = RetryConfig{
		MaxRetries:       3,
		MinDelay:         30 * time.Millisecond,
		MaxDelay:         5 * time.Second,
		MinThrottleDelay: 500 * time.Millisecond,
		MaxThrottleDelay: 20 * time.Second,
	}
)

// Retry returns DefaultRetryConfig with MaxRetries taken from the global configuration
func Retry() RetryConfig {
	cfg := DefaultRetryConfig
	if Config.MaxRetries >= 0 {
		cfg.MaxRetries = Config.MaxRetries
	}
	return cfg
}
