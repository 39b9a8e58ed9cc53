package registration

import (
	"errors"
	"fmt"
)

type ErrorReason string

const (
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_REGISTRATION_DOES_NOT_EXIST     ErrorReason = "REGISTRATION_DOES_NOT_EXIST"
	REASON_DUPLICATE_REFERENCE             ErrorReason = "DUPLICATE_REFERENCE"
	REASON_INVALID_CURSOR                  ErrorReason = "INVALID_CURSOR"
	REASON_TIMEOUT                         ErrorReason = "TIMEOUT"
	REASON_MALFORMED_CALLBACK              ErrorReason = "MALFORMED_CALLBACK"
	REASON_INVALID_REFERENCE               ErrorReason = "INVALID_REFERENCE"
	REASON_UNKNOWN_REGISTRATION            ErrorReason = "UNKNOWN_REGISTRATION"
	REASON_INVALID_FORM                    ErrorReason = "INVALID_FORM"
	REASON_ASSOCIATED_EVENT_DOES_NOT_EXIST ErrorReason = "ASSOCIATED_EVENT_DOES_NOT_EXIST"
	REASON_PROVIDER_FAILURE                ErrorReason = "PROVIDER_FAILURE"
	REASON_ALREADY_FINALIZED               ErrorReason = "ALREADY_FINALIZED"
	REASON_NOTIFICATION_FAILED             ErrorReason = "NOTIFICATION_FAILED"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewRegistrationDoesNotExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_DOES_NOT_EXIST, message, cause)
}

func NewDuplicateReferenceError(message string, cause error) *Error {
	return newRegistrationError(REASON_DUPLICATE_REFERENCE, message, cause)
}

func NewInvalidCursorError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_CURSOR, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newRegistrationError(REASON_TIMEOUT, message, nil)
}

func NewMalformedCallbackError(message string, cause error) *Error {
	return newRegistrationError(REASON_MALFORMED_CALLBACK, message, cause)
}

func NewInvalidReferenceError(message string) *Error {
	return newRegistrationError(REASON_INVALID_REFERENCE, message, nil)
}

func NewUnknownRegistrationError(message string, cause error) *Error {
	return newRegistrationError(REASON_UNKNOWN_REGISTRATION, message, cause)
}

func NewInvalidFormError(message string) *Error {
	return newRegistrationError(REASON_INVALID_FORM, message, nil)
}

func NewAssociatedEventDoesNotExistError(message string, cause error) *Error {
	return newRegistrationError(REASON_ASSOCIATED_EVENT_DOES_NOT_EXIST, message, cause)
}

func NewProviderFailureError(message string, cause error) *Error {
	return newRegistrationError(REASON_PROVIDER_FAILURE, message, cause)
}

func NewAlreadyFinalizedError(status PaymentStatus) *Error {
	return newRegistrationError(REASON_ALREADY_FINALIZED, fmt.Sprintf("Payment is already %s", status), nil)
}

func NewNotificationFailedError(message string, cause error) *Error {
	return newRegistrationError(REASON_NOTIFICATION_FAILED, message, cause)
}

// HasReason reports whether err is, or wraps, a registration error with the given reason.
func HasReason(err error, reason ErrorReason) bool {
	var regErr *Error
	return errors.As(err, &regErr) && regErr.Reason == reason
}
