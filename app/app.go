// Package app builds the service's dependencies from a config.Config.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/accessviewafrica/summit-registration/api"
	"github.com/accessviewafrica/summit-registration/config"
	"github.com/accessviewafrica/summit-registration/dynamo"
	"github.com/accessviewafrica/summit-registration/events"
	"github.com/accessviewafrica/summit-registration/hubtel"
	"github.com/accessviewafrica/summit-registration/notification"
	"github.com/accessviewafrica/summit-registration/queue"
	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	cfg    config.Config
	logger *slog.Logger

	db         *dynamo.DB
	events     *events.Catalog
	provider   *hubtel.Client
	dispatcher *notification.Dispatcher
	reconciler *registration.Reconciler
	api        *api.API

	publisher      *queue.Publisher
	redis          *redis.Client
	tracerProvider *sdktrace.TracerProvider
}

// New wires every dependency. Optional integrations (S3, AMQP, Redis, OTLP)
// are only built when their settings are present.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to get aws config: %w", err)
	}

	if cfg.Env == config.PROD {
		err = cfg.LoadSecrets(ctx, ssm.NewFromConfig(awsCfg))
		if err != nil {
			return nil, err
		}
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
	}

	if cfg.OTLPEndpoint != "" {
		a.tracerProvider, err = newTracerProvider(ctx, cfg)
		if err != nil {
			return nil, err
		}
		otel.SetTracerProvider(a.tracerProvider)
	}

	a.db = dynamo.NewDB(dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	}), cfg.DynamoTableName)

	err = checkStore(ctx, cfg.Env, a.db, logger)
	if err != nil {
		return nil, err
	}

	a.events, err = events.LoadCatalog(cfg.EventsCatalogPath)
	if err != nil {
		return nil, err
	}

	a.provider = hubtel.NewClient(hubtel.Config{
		AppID:           cfg.HubtelAppID,
		APIKey:          cfg.HubtelAPIKey,
		MerchantAccount: cfg.HubtelMerchantAccount,
		CheckoutBaseURL: cfg.HubtelCheckoutURL,
		StatusBaseURL:   cfg.HubtelStatusURL,
		Timeout:         cfg.HubtelTimeout,
	}, logger)
	if !a.provider.IsConfigured() {
		logger.Warn("Hubtel credentials are missing, payment status will be served from local records only")
	}

	sender, err := newEmailSender(ctx, cfg, awsCfg, logger)
	if err != nil {
		return nil, err
	}

	var dispatcherOpts []notification.Option
	if cfg.QRCodeBucket != "" {
		dispatcherOpts = append(dispatcherOpts, notification.WithQRUploader(
			notification.NewS3QRUploader(s3.NewFromConfig(awsCfg), cfg.QRCodeBucket, cfg.AWSRegion),
		))
	}
	if cfg.AMQPURL != "" {
		a.publisher = queue.NewPublisher(cfg.AMQPURL, cfg.AMQPQueue)
		err = a.publisher.Connect()
		if err != nil {
			// the publisher redials on the next publish
			logger.Warn("Failed to connect to message broker", slog.String("error", err.Error()))
		}
		dispatcherOpts = append(dispatcherOpts, notification.WithStatusPublisher(a.publisher))
	}

	a.dispatcher = notification.NewDispatcher(sender, a.events, notification.Config{
		FromAddress:  cfg.FromAddress,
		BaseURL:      cfg.SiteURL,
		SummitName:   cfg.SummitName,
		SupportEmail: cfg.SupportEmail,
	}, logger, dispatcherOpts...)

	a.reconciler = registration.NewReconciler(a.db, a.provider, a.dispatcher, logger,
		registration.WithProviderTimeout(cfg.HubtelTimeout),
	)

	apiOpts := []api.Option{
		api.WithAllowedOrigin(cfg.AllowedOrigin),
		api.WithAdminSecret(cfg.JWTSecret),
		api.WithTrustedProxies(cfg.TrustedProxies),
	}
	if cfg.RedisAddr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		apiOpts = append(apiOpts, api.WithRateLimiter(a.redis, cfg.RateLimit))
	}

	a.api = api.NewAPI(a.db, a.events, a.reconciler, a.provider, CheckoutURLs(cfg), logger, cfg.Env, apiOpts...)

	return a, nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

// checkStore fails startup in PROD when the registration table cannot be
// reached. Elsewhere the table is often created after the service starts, so
// it only warns.
func checkStore(ctx context.Context, env config.Environment, store pinger, logger *slog.Logger) error {
	err := store.Ping(ctx)
	if err == nil {
		return nil
	}

	if env == config.PROD {
		return fmt.Errorf("registration store is unreachable: %w", err)
	}
	logger.Warn("Registration store is unreachable", slog.String("error", err.Error()))
	return nil
}

// CheckoutURLs are the URLs handed to the provider when a checkout is created.
func CheckoutURLs(cfg config.Config) registration.CheckoutURLs {
	return registration.CheckoutURLs{
		CallbackURL: cfg.APIURL + "/api/payment-callback",
		ReturnURL:   cfg.SiteURL + "/verify/{clientReference}",
		CancelURL:   cfg.SiteURL + "/register?ref={clientReference}",
	}
}

func (a *App) Handler() (http.Handler, error) {
	h, err := a.api.Handler()
	if err != nil {
		return nil, err
	}

	return otelhttp.NewHandler(h, a.cfg.ServiceName), nil
}

func (a *App) DB() *dynamo.DB {
	return a.db
}

func (a *App) Reconciler() *registration.Reconciler {
	return a.reconciler
}

// Close releases broker, cache and tracing resources. It is safe to call on a
// partially built App.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.publisher != nil {
		errs = append(errs, a.publisher.Close())
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.tracerProvider != nil {
		errs = append(errs, a.tracerProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func newTracerProvider(ctx context.Context, cfg config.Config) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpointURL(cfg.OTLPEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("deployment.environment", cfg.Env.String()),
		)),
	), nil
}
