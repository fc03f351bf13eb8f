package aws

import (
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"

	"awsls/internal/config"
	"awsls/internal/logging"
)

// SessionFunc resolves a session for a profile and region
type SessionFunc func(profile, region string) (*session.Session, error)

// NewSession creates a new AWS session with the specified profile and region.
// An empty region falls back to the region of the profile or the environment.
// No network call is made.
func NewSession(profile string, region string) (*session.Session, error) {
	profile = strings.TrimSpace(profile)
	region = strings.TrimSpace(region)

	retry := config.Retry()
	cfg := request.WithRetryer(aws.NewConfig(), client.DefaultRetryer{
		NumMaxRetries:    retry.MaxRetries,
		MinRetryDelay:    retry.MinDelay,
		MaxRetryDelay:    retry.MaxDelay,
		MinThrottleDelay: retry.MinThrottleDelay,
		MaxThrottleDelay: retry.MaxThrottleDelay,
	})
	if region != "" {
		cfg = cfg.WithRegion(region)
	}
	if profile == "" && hasPartialEnvCredentials() {
		// The default chain would skip the half-configured environment and report no credentials at all
		cfg = cfg.WithCredentials(credentials.NewEnvCredentials())
	}

	if profile != "" {
		// The SDK silently falls back to the default chain for an undefined profile
		exists, err := ProfileExists(profile)
		if err != nil {
			return nil, NewInitializationError(err)
		}
		if !exists {
			return nil, NewInitializationError(session.SharedConfigProfileNotExistsError{Profile: profile})
		}
	}

	logging.Debug("Creating AWS session", map[string]interface{}{
		"profile": profile,
		"region":  region,
	})

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		Profile:           profile,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		if awsErr, ok := err.(awserr.Error); ok && awsErr.Code() == codeMissingRegion {
			return nil, NewConfigurationError(err)
		}
		return nil, NewInitializationError(err)
	}

	if aws.StringValue(sess.Config.Region) == "" {
		return nil, NewConfigurationError(aws.ErrMissingRegion)
	}

	return sess, nil
}

// SessionRegion returns the region a session resolved to
func SessionRegion(sess *session.Session) string {
	if sess == nil {
		return ""
	}
	return aws.StringValue(sess.Config.Region)
}

func hasPartialEnvCredentials() bool {
	id := firstEnv("AWS_ACCESS_KEY_ID", "AWS_ACCESS_KEY")
	secret := firstEnv("AWS_SECRET_ACCESS_KEY", "AWS_SECRET_KEY")
	return (id == "") != (secret == "")
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
