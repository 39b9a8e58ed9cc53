package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/middleware"
	"github.com/accessviewafrica/summit-registration/hubtel"
	"github.com/accessviewafrica/summit-registration/registration"
)

const maxCallbackBodyBytes = 65536

// paymentCallbackMiddleware serves the provider webhook ahead of request
// validation, since the provider's envelope is not ours to describe. Unknown
// registrations are acknowledged so the provider stops retrying.
func (a *API) paymentCallbackMiddleware(path string) middleware.MiddlewareFunc {
	server := http.NewServeMux()

	server.HandleFunc("POST "+path, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		logger := a.getLoggerOrBaseLogger(ctx)

		r.Body = http.MaxBytesReader(w, r.Body, maxCallbackBodyBytes)
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("Failed to read payment callback body", slog.String("error", err.Error()))
			writeError(w, logger, http.StatusRequestEntityTooLarge, InvalidBody, "Callback body is too large")
			return
		}

		notification, err := hubtel.ParseCallback(payload)
		if err != nil {
			logger.Warn("Rejected malformed payment callback", slog.String("error", err.Error()))
			writeError(w, logger, http.StatusBadRequest, InvalidBody, "Callback could not be parsed")
			return
		}

		result, err := a.reconciler.ReconcileFromCallback(ctx, notification)
		if err != nil {
			switch {
			case registration.HasReason(err, registration.REASON_UNKNOWN_REGISTRATION):
				logger.Warn("Payment callback for unknown registration",
					slog.String("client-reference", notification.ClientReference),
					slog.String("provider-status", notification.ProviderStatus),
				)
				writeJSON(w, logger, http.StatusOK, map[string]string{"status": "ignored"})
			case registration.HasReason(err, registration.REASON_MALFORMED_CALLBACK):
				logger.Warn("Rejected malformed payment callback", slog.String("error", err.Error()))
				writeError(w, logger, http.StatusBadRequest, InvalidBody, err.Error())
			default:
				logger.Error("Failed to reconcile payment callback",
					slog.String("client-reference", notification.ClientReference),
					slog.String("error", err.Error()),
				)
				writeError(w, logger, http.StatusInternalServerError, InternalError, "Failed to record payment status")
			}
			return
		}

		logger.Info("Processed payment callback",
			slog.String("client-reference", notification.ClientReference),
			slog.String("status", result.Status.String()),
			slog.Bool("changed", result.Changed),
		)
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": result.Status.String()})
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler, matchedPath := server.Handler(r)

			if matchedPath == "" {
				next.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}
