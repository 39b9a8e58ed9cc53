package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/International-Combat-Archery-Alliance/middleware"
	"github.com/accessviewafrica/summit-registration/config"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/rs/cors"
)

// useMiddlewares wraps h so the last middleware given is the outermost.
func useMiddlewares(h http.Handler, middlewares ...middleware.MiddlewareFunc) http.Handler {
	s := h

	for _, mw := range middlewares {
		s = mw(s)
	}

	return s
}

// requestContextMiddleware gives each request an id and a logger tagged with it.
func (a *API) requestContextMiddleware() middleware.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId := uuid.New()
			if header := r.Header.Get("X-Request-Id"); header != "" {
				if parsed, err := uuid.Parse(header); err == nil {
					requestId = parsed
				}
			}

			ctx := ctxWithRequestId(r.Context(), requestId)
			ctx = ctxWithLogger(ctx, a.logger.With(slog.String("request-id", requestId.String())))

			w.Header().Set("X-Request-Id", requestId.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *API) loggingMiddleware() middleware.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			loggingRW := newLoggingResponseWriter(w)

			// process the request
			next.ServeHTTP(loggingRW, r)

			a.getLoggerOrBaseLogger(r.Context()).Log(r.Context(), loggingRW.level(),
				"Access log",
				slog.String("latency", formatDuration(time.Since(start))),
				slog.Int64("request-content-length", r.ContentLength),
				slog.Int("resp-body-size", loggingRW.responseSize),
				slog.String("host", r.Host),
				slog.String("method", r.Method),
				slog.Int("status-code", loggingRW.statusCode),
				slog.String("path", r.URL.Path),
			)
		})
	}
}

func (a *API) openapiValidateMiddleware(swagger *openapi3.T) middleware.MiddlewareFunc {
	return oapimiddleware.OapiRequestValidatorWithOptions(swagger, &oapimiddleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: a.authenticate,
		},
		ErrorHandlerWithOpts: func(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, opts oapimiddleware.ErrorHandlerOpts) {
			e := Error{
				Message: err.Error(),
				Code:    InternalError,
			}

			// request errors arrive flattened to their first line, so the
			// status code is what tells them apart
			switch opts.StatusCode {
			case http.StatusBadRequest:
				e.Code = InputValidationError
			case http.StatusUnauthorized, http.StatusForbidden:
				e.Code = AuthError
				e.Message = "Missing or invalid admin token"
			case http.StatusNotFound:
				e.Code = NotFound
			}

			writeJSON(w, a.getLoggerOrBaseLogger(ctx), opts.StatusCode, e)
		},
	})
}

func (a *API) corsMiddleware() middleware.MiddlewareFunc {
	var serverCors *cors.Cors

	switch a.env {
	case config.PROD:
		serverCors = cors.New(cors.Options{
			AllowedOrigins: []string{a.allowedOrigin},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		})
	default:
		serverCors = cors.AllowAll()
	}

	return serverCors.Handler
}

// formatDuration formats a duration to one decimal point.
func formatDuration(d time.Duration) string {
	div := time.Duration(10)
	switch {
	case d > time.Second:
		d = d.Round(time.Second / div)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / div)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / div)
	case d > time.Nanosecond:
		d = d.Round(time.Nanosecond / div)
	}
	return d.String()
}
