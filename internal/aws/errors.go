package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
)

// Kind identifies a class of failure surfaced to the user
type Kind string

const (
	KindUnsupportedService Kind = "unsupported_service"
	KindConfiguration      Kind = "configuration"
	KindInitialization     Kind = "initialization"
	KindNoCredentials      Kind = "no_credentials"
	KindPartialCredentials Kind = "partial_credentials"
	KindConnectivity       Kind = "connectivity"
	KindAPI                Kind = "api"
	KindValidation         Kind = "validation"
	KindInterrupted        Kind = "interrupted"
	KindUnexpected         Kind = "unexpected"
)

// Exit codes returned to the shell
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// SDK error codes that never come back as a RequestFailure.
const (
	codeNoCredentialProviders = "NoCredentialProviders"
	codeMissingRegion         = "MissingRegion"
	codeUnknownEndpoint       = "UnknownEndpoint"
)

var partialCredentialCodes = map[string]bool{
	"EnvAccessKeyNotFound": true,
	"EnvSecretNotFound":    true,
	"SharedCredsAccessKey": true,
	"SharedCredsSecret":    true,
	"EmptyStaticCreds":     true,
}

var connectivityCodes = map[string]bool{
	request.ErrCodeRequestError:    true,
	request.ErrCodeResponseTimeout: true,
	request.ErrCodeRead:            true,
	codeUnknownEndpoint:            true,
}

var validationCodes = map[string]bool{
	request.InvalidParameterErrCode: true,
	request.ParamRequiredErrCode:    true,
	request.ParamMinValueErrCode:    true,
	request.ParamMinLenErrCode:      true,
}

// Error is a classified failure. Message is what gets printed after "Error: ".
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode maps the error kind to a process exit code
func (e *Error) ExitCode() int {
	if e.Kind == KindInterrupted {
		return ExitInterrupted
	}
	return ExitFailure
}

// NewUnsupportedServiceError reports a service key outside the supported set
func NewUnsupportedServiceError(key string, supported []string) *Error {
	return &Error{
		Kind:    KindUnsupportedService,
		Message: fmt.Sprintf("Unsupported service '%s'. Supported: %s", key, joinKeys(supported)),
	}
}

// NewConfigurationError reports that no region could be determined
func NewConfigurationError(err error) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Message: "No AWS region specified. Pass a region argument or set AWS_REGION.",
		Err:     err,
	}
}

// NewInitializationError wraps any other session construction failure
func NewInitializationError(err error) *Error {
	return &Error{
		Kind:    KindInitialization,
		Message: fmt.Sprintf("Failed to initialize AWS session: %v", err),
		Err:     err,
	}
}

// Classify turns any error returned by the session provider or a lister into an *Error.
// Errors that are already classified are returned as is.
func Classify(err error, region string) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	if errors.Is(err, context.Canceled) {
		return interrupted(err)
	}

	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) {
		return &Error{
			Kind:    KindAPI,
			Message: fmt.Sprintf("AWS API error (%s): %s", reqErr.Code(), reqErr.Message()),
			Err:     err,
		}
	}

	var awsErr awserr.Error
	if errors.As(err, &awsErr) {
		code := awsErr.Code()
		switch {
		case code == request.CanceledErrorCode:
			return interrupted(err)
		case code == codeNoCredentialProviders:
			return &Error{
				Kind:    KindNoCredentials,
				Message: "No AWS credentials found. Configure credentials via environment variables or AWS config files.",
				Err:     err,
			}
		case partialCredentialCodes[code]:
			return &Error{
				Kind:    KindPartialCredentials,
				Message: "Partial AWS credentials found. Please complete your AWS credential configuration.",
				Err:     err,
			}
		case code == codeMissingRegion:
			return NewConfigurationError(err)
		case connectivityCodes[code]:
			return &Error{
				Kind:    KindConnectivity,
				Message: fmt.Sprintf("Could not connect to endpoint for region '%s'. Is the region correct? Details: %v", region, err),
				Err:     err,
			}
		case validationCodes[code]:
			return &Error{
				Kind:    KindValidation,
				Message: fmt.Sprintf("Invalid parameter(s): %v", err),
				Err:     err,
			}
		}
	}

	return &Error{
		Kind:    KindUnexpected,
		Message: fmt.Sprintf("Unexpected error: %v", err),
		Err:     err,
	}
}

// IsAPIError reports whether err was returned by the service itself for a well-formed request.
// Listers use it to decide which per-item failures they tolerate.
func IsAPIError(err error) bool {
	var reqErr awserr.RequestFailure
	return errors.As(err, &reqErr)
}

func interrupted(err error) *Error {
	return &Error{
		Kind:    KindInterrupted,
		Message: "Interrupted by user.",
		Err:     err,
	}
}
