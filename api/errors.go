package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/accessviewafrica/summit-registration/events"
	"github.com/accessviewafrica/summit-registration/registration"
)

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		logger.Error("failed to marshal response", slog.String("error", err.Error()))
		status = http.StatusInternalServerError
		jsonBody = []byte(`{"code":"InternalError","message":"Internal server error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonBody)
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, code ErrorCode, message string) {
	writeJSON(w, logger, status, Error{Code: code, Message: message})
}

// registrationErrorResponse picks the status and body for an error coming out
// of the registration package. Anything unrecognised is a 500.
func registrationErrorResponse(err error) (int, Error) {
	var regErr *registration.Error
	if errors.As(err, &regErr) {
		switch regErr.Reason {
		case registration.REASON_INVALID_FORM, registration.REASON_INVALID_REFERENCE, registration.REASON_MALFORMED_CALLBACK:
			return http.StatusBadRequest, Error{Code: InvalidBody, Message: regErr.Message}
		case registration.REASON_INVALID_CURSOR:
			return http.StatusBadRequest, Error{Code: InvalidCursor, Message: "Cursor is invalid"}
		case registration.REASON_UNKNOWN_REGISTRATION, registration.REASON_REGISTRATION_DOES_NOT_EXIST:
			return http.StatusNotFound, Error{Code: NotFound, Message: "Registration does not exist"}
		case registration.REASON_ASSOCIATED_EVENT_DOES_NOT_EXIST:
			return http.StatusNotFound, Error{Code: NotFound, Message: "Event does not exist"}
		case registration.REASON_DUPLICATE_REFERENCE:
			return http.StatusConflict, Error{Code: AlreadyExists, Message: "Registration already exists"}
		case registration.REASON_ALREADY_FINALIZED:
			return http.StatusConflict, Error{Code: AlreadyFinalized, Message: regErr.Message}
		case registration.REASON_PROVIDER_FAILURE:
			return http.StatusBadGateway, Error{Code: PaymentProviderError, Message: "Payment provider could not start the checkout"}
		case registration.REASON_NOTIFICATION_FAILED:
			return http.StatusBadGateway, Error{Code: NotificationFailed, Message: "Failed to send the email"}
		}
	}

	var eventErr *events.Error
	if errors.As(err, &eventErr) && eventErr.Reason == events.REASON_EVENT_DOES_NOT_EXIST {
		return http.StatusNotFound, Error{Code: NotFound, Message: "Event does not exist"}
	}

	return http.StatusInternalServerError, Error{Code: InternalError, Message: "Internal server error"}
}

// registrationError logs err at a level matching its status and gives the
// body to answer with.
func (a *API) registrationError(ctx context.Context, msg string, err error) (int, Error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	status, body := registrationErrorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
	} else {
		logger.Warn(msg, slog.String("error", err.Error()))
	}

	return status, body
}
