//go:generate go tool stringer -type=Environment

// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToUpper(s) {
	case "LOCAL":
		return LOCAL, nil
	case "PROD":
		return PROD, nil
	default:
		return LOCAL, fmt.Errorf("unknown environment %q", s)
	}
}

type Config struct {
	Env  Environment
	Host string
	Port string

	// SiteURL is the public frontend, used for links in emails and checkout redirects.
	SiteURL string
	// APIURL is where the payment provider delivers callbacks.
	APIURL        string
	AllowedOrigin string
	// TrustedProxies are the peers whose X-Forwarded-For header is believed.
	TrustedProxies []netip.Prefix

	AWSRegion       string
	DynamoTableName string
	// DynamoEndpoint points the client at DynamoDB local when set.
	DynamoEndpoint string

	// EventsCatalogPath replaces the built in event catalog when set.
	EventsCatalogPath string

	HubtelAppID           string
	HubtelAPIKey          string
	HubtelMerchantAccount string
	HubtelCheckoutURL     string
	HubtelStatusURL       string
	HubtelTimeout         time.Duration

	EmailProvider        string
	FromAddress          string
	SupportEmail         string
	SummitName           string
	GmailSenderAddress   string
	GmailCredentialsJSON string

	QRCodeBucket string

	AMQPURL   string
	AMQPQueue string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RateLimit     RateLimit

	JWTSecret string

	// SSMPrefix is the parameter path secrets are read from in PROD.
	SSMPrefix string

	OTLPEndpoint string
	ServiceName  string
}

type RateLimit struct {
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
}

// Load reads a .env file when one exists, then builds the Config from the
// process environment.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	return FromEnv()
}

func FromEnv() (Config, error) {
	env, err := ParseEnvironment(getEnvOrDefault("ENVIRONMENT", "LOCAL"))
	if err != nil {
		return Config{}, err
	}

	var errs []error
	hubtelTimeout, err := getDurationOrDefault("HUBTEL_TIMEOUT", 20*time.Second)
	errs = append(errs, err)
	redisDB, err := getIntOrDefault("REDIS_DB", 0)
	errs = append(errs, err)
	capacity, err := getIntOrDefault("RATE_LIMIT_CAPACITY", 10)
	errs = append(errs, err)
	refillTokens, err := getIntOrDefault("RATE_LIMIT_REFILL_TOKENS", 1)
	errs = append(errs, err)
	refillInterval, err := getDurationOrDefault("RATE_LIMIT_REFILL_INTERVAL", 3*time.Second)
	errs = append(errs, err)
	rateTTL, err := getDurationOrDefault("RATE_LIMIT_TTL", 10*time.Minute)
	errs = append(errs, err)
	trustedProxies, err := getPrefixes("TRUSTED_PROXIES")
	errs = append(errs, err)
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	siteURL := strings.TrimSuffix(getEnvOrDefault("SITE_URL", "http://localhost:3000"), "/")

	return Config{
		Env:  env,
		Host: getEnvOrDefault("HOST", "0.0.0.0"),
		Port: getEnvOrDefault("PORT", "8080"),

		SiteURL:        siteURL,
		APIURL:         strings.TrimSuffix(getEnvOrDefault("API_URL", "http://localhost:8080"), "/"),
		AllowedOrigin:  getEnvOrDefault("ALLOWED_ORIGIN", siteURL),
		TrustedProxies: trustedProxies,

		AWSRegion:       getEnvOrDefault("AWS_REGION", "eu-west-1"),
		DynamoTableName: getEnvOrDefault("DYNAMO_TABLE_NAME", "SummitRegistration"),
		DynamoEndpoint:  os.Getenv("DYNAMO_ENDPOINT"),

		EventsCatalogPath: os.Getenv("EVENTS_CATALOG_PATH"),

		HubtelAppID:           os.Getenv("HUBTEL_APP_ID"),
		HubtelAPIKey:          os.Getenv("HUBTEL_API_KEY"),
		HubtelMerchantAccount: os.Getenv("HUBTEL_MERCHANT_ID"),
		HubtelCheckoutURL:     os.Getenv("HUBTEL_CHECKOUT_URL"),
		HubtelStatusURL:       os.Getenv("HUBTEL_STATUS_URL"),
		HubtelTimeout:         hubtelTimeout,

		EmailProvider:        getEnvOrDefault("EMAIL_PROVIDER", "gmail"),
		FromAddress:          getEnvOrDefault("EMAIL_FROM", "Value Creation Summit <summit@accessviewafrica.com>"),
		SupportEmail:         getEnvOrDefault("SUPPORT_EMAIL", "summit@accessviewafrica.com"),
		SummitName:           getEnvOrDefault("SUMMIT_NAME", "Value Creation Summit"),
		GmailSenderAddress:   getEnvOrDefault("GMAIL_SENDER", "summit@accessviewafrica.com"),
		GmailCredentialsJSON: os.Getenv("GMAIL_CREDENTIALS_JSON"),

		QRCodeBucket: os.Getenv("QR_CODE_BUCKET"),

		AMQPURL:   os.Getenv("AMQP_URL"),
		AMQPQueue: getEnvOrDefault("AMQP_QUEUE", "registration.payment"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		RateLimit: RateLimit{
			Capacity:       capacity,
			RefillTokens:   refillTokens,
			RefillInterval: refillInterval,
			TTL:            rateTTL,
		},

		JWTSecret: os.Getenv("JWT_SECRET"),

		SSMPrefix: getEnvOrDefault("SSM_PREFIX", "/summit-registration/"),

		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "summit-registration"),
	}, nil
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}

func getIntOrDefault(key string, defaultVal int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", key, v)
	}
	return n, nil
}

func getDurationOrDefault(key string, defaultVal time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, v)
	}
	return d, nil
}

// getPrefixes reads a comma separated list of addresses and CIDR ranges. A bare
// address is a range holding only itself.
func getPrefixes(key string) ([]netip.Prefix, error) {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}

	var prefixes []netip.Prefix
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "/") {
			prefix, err := netip.ParsePrefix(part)
			if err != nil {
				return nil, fmt.Errorf("invalid range for %s: %q", key, part)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(part)
		if err != nil {
			return nil, fmt.Errorf("invalid address for %s: %q", key, part)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}
