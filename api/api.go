//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml ../spec/api.yaml
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/netip"

	"github.com/accessviewafrica/summit-registration/config"
	"github.com/accessviewafrica/summit-registration/events"
	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/redis/go-redis/v9"
)

const callbackPath = "/api/payment-callback"

type DB interface {
	registration.Repository
	Ping(ctx context.Context) error
}

type API struct {
	db             DB
	eventRepo      events.Repository
	provider       registration.PaymentProvider
	reconciler     *registration.Reconciler
	checkoutURLs   registration.CheckoutURLs
	logger         *slog.Logger
	env            config.Environment
	allowedOrigin  string
	jwtSecret      []byte
	redis          redis.Scripter
	rateLimit      config.RateLimit
	trustedProxies []netip.Prefix
}

var _ StrictServerInterface = (*API)(nil)

type Option func(*API)

// WithAllowedOrigin sets the single origin CORS allows in PROD.
func WithAllowedOrigin(origin string) Option {
	return func(a *API) {
		a.allowedOrigin = origin
	}
}

// WithAdminSecret enables the admin routes. Without it every admin request is rejected.
func WithAdminSecret(secret string) Option {
	return func(a *API) {
		a.jwtSecret = []byte(secret)
	}
}

func WithRateLimiter(client redis.Scripter, limit config.RateLimit) Option {
	return func(a *API) {
		a.redis = client
		a.rateLimit = limit
	}
}

// WithTrustedProxies lists the peers whose X-Forwarded-For header is believed
// when keying the rate limiter.
func WithTrustedProxies(prefixes []netip.Prefix) Option {
	return func(a *API) {
		a.trustedProxies = prefixes
	}
}

func NewAPI(
	db DB,
	eventRepo events.Repository,
	reconciler *registration.Reconciler,
	provider registration.PaymentProvider,
	checkoutURLs registration.CheckoutURLs,
	logger *slog.Logger,
	env config.Environment,
	opts ...Option,
) *API {
	a := &API{
		db:           db,
		eventRepo:    eventRepo,
		reconciler:   reconciler,
		provider:     provider,
		checkoutURLs: checkoutURLs,
		logger:       logger,
		env:          env,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handler builds the routed, fully wrapped HTTP handler.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("error loading swagger spec: %w", err)
	}
	swagger.Servers = nil

	strictHandler := NewStrictHandlerWithOptions(a, []StrictMiddlewareFunc{
		a.rateLimitMiddleware("GetTransactionStatus"),
	}, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  a.requestErrorHandler,
		ResponseErrorHandlerFunc: a.responseErrorHandler,
	})

	r := http.NewServeMux()
	HandlerWithOptions(strictHandler, StdHTTPServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: a.paramErrorHandler,
	})

	return useMiddlewares(r,
		a.openapiValidateMiddleware(swagger),
		a.paymentCallbackMiddleware(callbackPath),
		a.loggingMiddleware(),
		a.requestContextMiddleware(),
		a.corsMiddleware(),
	), nil
}

func (a *API) GetHealthz(ctx context.Context, request GetHealthzRequestObject) (GetHealthzResponseObject, error) {
	err := a.db.Ping(ctx)
	if err != nil {
		a.getLoggerOrBaseLogger(ctx).Error("Health check failed", slog.String("error", err.Error()))
		return GetHealthz503JSONResponse{
			Code:    InternalError,
			Message: "Registration store is unreachable",
		}, nil
	}

	return GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (a *API) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	logger := a.getLoggerOrBaseLogger(r.Context())

	if errors.Is(err, io.EOF) {
		logger.Warn("Nil body for request")
		writeError(w, logger, http.StatusBadRequest, EmptyBody, "Must specify a JSON body in the request")
		return
	}

	logger.Warn("Invalid body for request", slog.String("error", err.Error()))
	writeError(w, logger, http.StatusBadRequest, InvalidBody, "Invalid body")
}

func (a *API) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	logger := a.getLoggerOrBaseLogger(r.Context())

	logger.Error("Failed to write response", slog.String("error", err.Error()))
	writeError(w, logger, http.StatusInternalServerError, InternalError, "Internal server error")
}

func (a *API) paramErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	logger := a.getLoggerOrBaseLogger(r.Context())

	logger.Warn("Invalid request parameter", slog.String("error", err.Error()))
	writeError(w, logger, http.StatusBadRequest, InputValidationError, err.Error())
}
