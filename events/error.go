package events

import "fmt"

type ErrorReason string

const (
	REASON_EVENT_DOES_NOT_EXIST ErrorReason = "EVENT_DOES_NOT_EXIST"
	REASON_INVALID_CATALOG      ErrorReason = "INVALID_CATALOG"
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

func newEventError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewEventDoesNotExistsError(message string, cause error) *Error {
	return newEventError(REASON_EVENT_DOES_NOT_EXIST, message, cause)
}

func NewInvalidCatalogError(message string, cause error) *Error {
	return newEventError(REASON_INVALID_CATALOG, message, cause)
}
