package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/golang-jwt/jwt/v5"
)

const (
	adminScope  = "admin"
	tokenIssuer = "summit-registration"
)

// AdminClaims are carried by the bearer tokens that unlock the admin routes.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var (
	scopeValidators map[string]func(claims *AdminClaims) error = map[string]func(claims *AdminClaims) error{
		adminScope: func(claims *AdminClaims) error {
			if claims.Role != adminScope {
				return fmt.Errorf("user is not an admin")
			}

			return nil
		},
	}
)

// NewAdminToken signs an HS256 admin token for subject that expires after ttl.
func NewAdminToken(secret string, subject string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is not configured")
	}

	claims := AdminClaims{
		Role: adminScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (a *API) validateAdminToken(token string, scopes []string) (*AdminClaims, error) {
	if len(a.jwtSecret) == 0 {
		return nil, errors.New("admin auth is not configured")
	}

	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return a.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	for _, scope := range scopes {
		validator, ok := scopeValidators[scope]
		if !ok {
			return nil, fmt.Errorf("unknown scope: %q", scope)
		}

		err = validator(claims)
		if err != nil {
			return nil, fmt.Errorf("user does not have scope %q", scope)
		}
	}

	return claims, nil
}

// authenticate is the request validator's hook for bearerAuth. Every secured
// route is an admin route.
func (a *API) authenticate(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	if input.SecuritySchemeName != "bearerAuth" {
		return fmt.Errorf("unsupported security scheme %q", input.SecuritySchemeName)
	}

	token, ok := bearerToken(input.RequestValidationInput.Request)
	if !ok {
		return errors.New("missing bearer token")
	}

	claims, err := a.validateAdminToken(token, []string{adminScope})
	if err != nil {
		return err
	}

	a.getLoggerOrBaseLogger(ctx).Debug("Authenticated admin", "subject", claims.Subject)
	return nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
