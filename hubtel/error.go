package hubtel

import (
	"fmt"
	"net/http"
)

type ErrorReason string

const (
	REASON_NOT_CONFIGURED        ErrorReason = "NOT_CONFIGURED"
	REASON_PROVIDER_UNAVAILABLE  ErrorReason = "PROVIDER_UNAVAILABLE"
	REASON_INVALID_CREDENTIALS   ErrorReason = "INVALID_CREDENTIALS"
	REASON_INVALID_REQUEST       ErrorReason = "INVALID_REQUEST"
	REASON_NOT_FOUND             ErrorReason = "NOT_FOUND"
	REASON_TIMEOUT               ErrorReason = "TIMEOUT"
	REASON_INVALID_RESPONSE      ErrorReason = "INVALID_RESPONSE"
	REASON_FAILED_TO_BUILD_QUERY ErrorReason = "FAILED_TO_BUILD_QUERY"
)

// Error describes a failed provider call. StatusCode and ResponseCode are
// copied from the provider's reply when there was one.
type Error struct {
	Reason       ErrorReason
	StatusCode   int
	ResponseCode string
	Message      string
	Cause        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d, code %q): %s. Cause: %s", e.Reason, e.StatusCode, e.ResponseCode, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newHubtelError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewNotConfiguredError() *Error {
	return newHubtelError(REASON_NOT_CONFIGURED, "Hubtel credentials are not configured", nil)
}

func NewProviderUnavailableError(message string, cause error) *Error {
	return newHubtelError(REASON_PROVIDER_UNAVAILABLE, message, cause)
}

func NewTimeoutError(message string, cause error) *Error {
	return newHubtelError(REASON_TIMEOUT, message, cause)
}

func NewInvalidResponseError(message string, cause error) *Error {
	return newHubtelError(REASON_INVALID_RESPONSE, message, cause)
}

func NewFailedToBuildQueryError(message string, cause error) *Error {
	return newHubtelError(REASON_FAILED_TO_BUILD_QUERY, message, cause)
}

// newHTTPError classifies a non-2xx reply.
func newHTTPError(statusCode int, responseCode string, message string) *Error {
	var reason ErrorReason
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		reason = REASON_INVALID_CREDENTIALS
	case statusCode == http.StatusNotFound:
		reason = REASON_NOT_FOUND
	case statusCode == http.StatusBadRequest || statusCode == http.StatusUnprocessableEntity:
		reason = REASON_INVALID_REQUEST
	default:
		reason = REASON_PROVIDER_UNAVAILABLE
	}
	return &Error{
		Reason:       reason,
		StatusCode:   statusCode,
		ResponseCode: responseCode,
		Message:      message,
	}
}

// newRejectedError is for a 2xx reply whose body says the call did not succeed.
func newRejectedError(reason ErrorReason, responseCode string, message string) *Error {
	return &Error{
		Reason:       reason,
		StatusCode:   http.StatusOK,
		ResponseCode: responseCode,
		Message:      message,
	}
}
