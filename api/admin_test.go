package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/accessviewafrica/summit-registration/ptr"
	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withAdmin(t *testing.T, req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	return req
}

func TestAdminAuth(t *testing.T) {
	signed := func(t *testing.T, secret string, claims AdminClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}
	valid := func() AdminClaims {
		return AdminClaims{
			Role: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Subject:   "ops",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "no token", header: "", status: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signed(t, "other-secret", valid()), status: http.StatusUnauthorized},
		{name: "not an admin", header: "Bearer " + signed(t, testJWTSecret, func() AdminClaims {
			c := valid()
			c.Role = "viewer"
			return c
		}()), status: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + signed(t, testJWTSecret, func() AdminClaims {
			c := valid()
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
			return c
		}()), status: http.StatusUnauthorized},
		{name: "no expiry", header: "Bearer " + signed(t, testJWTSecret, func() AdminClaims {
			c := valid()
			c.ExpiresAt = nil
			return c
		}()), status: http.StatusUnauthorized},
		{name: "valid admin", header: "Bearer " + signed(t, testJWTSecret, valid()), status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, newTestDeps())

			req := httptest.NewRequest(http.MethodGet, "/api/admin/registrations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status == http.StatusUnauthorized {
				assert.Equal(t, AuthError, decodeResponse[Error](t, w).Code)
			}
		})
	}

	t.Run("admin routes are closed without a secret", func(t *testing.T) {
		deps := newTestDeps()
		a := newTestAPI(t, deps, WithAdminSecret(""))
		h, err := a.Handler()
		require.NoError(t, err)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, httptest.NewRequest(http.MethodGet, "/api/admin/registrations", nil)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestNewAdminToken(t *testing.T) {
	t.Run("requires a secret", func(t *testing.T) {
		_, err := NewAdminToken("", "ops", time.Hour, time.Now())
		assert.Error(t, err)
	})

	t.Run("round trips through validation", func(t *testing.T) {
		a := newTestAPI(t, newTestDeps())

		claims, err := a.validateAdminToken(adminToken(t), []string{adminScope})
		require.NoError(t, err)
		assert.Equal(t, "ops@accessviewafrica.com", claims.Subject)
	})

	t.Run("unknown scope", func(t *testing.T) {
		a := newTestAPI(t, newTestDeps())

		_, err := a.validateAdminToken(adminToken(t), []string{"superuser"})
		assert.ErrorContains(t, err, "unknown scope")
	})
}

func TestGetAdminRegistrations(t *testing.T) {
	t.Run("passes the filter and cursor through", func(t *testing.T) {
		deps := newTestDeps()
		var gotFilter registration.ListFilter
		var gotLimit int32
		var gotCursor *string
		deps.db.ListRegistrationsFunc = func(ctx context.Context, filter registration.ListFilter, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
			gotFilter, gotLimit, gotCursor = filter, limit, cursor
			return registration.ListRegistrationsResponse{
				Data:        []registration.Registration{pendingRegistration("ref-2"), pendingRegistration("ref-1")},
				Cursor:      ptr.String("next"),
				HasNextPage: true,
			}, nil
		}
		h := newTestHandler(t, deps)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, httptest.NewRequest(http.MethodGet, "/api/admin/registrations?status=pending&limit=2&cursor=abc", nil)))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decodeResponse[RegistrationPage](t, w)
		require.Len(t, got.Data, 2)
		assert.Equal(t, "ref-2", got.Data[0].ClientReference)
		assert.True(t, got.HasNextPage)
		assert.Equal(t, ptr.String("next"), got.Cursor)

		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, registration.PENDING, *gotFilter.Status)
		assert.Equal(t, int32(2), gotLimit)
		assert.Equal(t, ptr.String("abc"), gotCursor)
	})

	t.Run("default page size", func(t *testing.T) {
		deps := newTestDeps()
		var gotLimit int32
		deps.db.ListRegistrationsFunc = func(ctx context.Context, filter registration.ListFilter, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
			gotLimit = limit
			assert.Nil(t, filter.Status)
			assert.Nil(t, cursor)
			return registration.ListRegistrationsResponse{}, nil
		}
		h := newTestHandler(t, deps)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, httptest.NewRequest(http.MethodGet, "/api/admin/registrations", nil)))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int32(defaultAdminPageSize), gotLimit)
		assert.JSONEq(t, `{"data":[],"hasNextPage":false}`, w.Body.String())
	})

	t.Run("limit out of bounds", func(t *testing.T) {
		a := newTestAPI(t, newTestDeps())

		resp, err := a.GetAdminRegistrations(context.Background(), GetAdminRegistrationsRequestObject{
			Params: GetAdminRegistrationsParams{Limit: ptr.Int(500)},
		})

		require.NoError(t, err)
		require.IsType(t, GetAdminRegistrations400JSONResponse{}, resp)
		assert.Equal(t, LimitOutOfBounds, resp.(GetAdminRegistrations400JSONResponse).Code)
	})

	t.Run("unknown status is rejected by validation", func(t *testing.T) {
		h := newTestHandler(t, newTestDeps())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, httptest.NewRequest(http.MethodGet, "/api/admin/registrations?status=settled", nil)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, InputValidationError, decodeResponse[Error](t, w).Code)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.ListRegistrationsFunc = func(ctx context.Context, filter registration.ListFilter, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
			return registration.ListRegistrationsResponse{}, registration.NewInvalidCursorError("bad cursor", nil)
		}
		h := newTestHandler(t, deps)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, httptest.NewRequest(http.MethodGet, "/api/admin/registrations?cursor=zzz", nil)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, InvalidCursor, decodeResponse[Error](t, w).Code)
	})
}

func TestPostAdminRegistrationComplete(t *testing.T) {
	t.Run("completes a pending registration", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.GetRegistrationFunc = func(ctx context.Context, clientReference string) (registration.Registration, error) {
			return pendingRegistration(clientReference), nil
		}
		var update registration.StatusUpdate
		deps.db.UpdatePaymentStatusFunc = func(ctx context.Context, clientReference string, expected registration.PaymentStatus, u registration.StatusUpdate) (bool, error) {
			update = u
			return true, nil
		}
		h := newTestHandler(t, deps)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, newJSONRequest(t, http.MethodPost, "/api/admin/registrations/ref-1/complete", map[string]any{
			"transactionId": "bank-42",
			"method":        "bank-transfer",
		})))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decodeResponse[Registration](t, w)
		assert.Equal(t, Completed, got.PaymentStatus)
		assert.Equal(t, registration.COMPLETED, update.Status)
		assert.Equal(t, "bank-42", update.PaymentData.TransactionID)
		assert.Equal(t, "bank-transfer", update.PaymentData.Method)
	})

	t.Run("empty object uses the offline method", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.GetRegistrationFunc = func(ctx context.Context, clientReference string) (registration.Registration, error) {
			return pendingRegistration(clientReference), nil
		}
		var update registration.StatusUpdate
		deps.db.UpdatePaymentStatusFunc = func(ctx context.Context, clientReference string, expected registration.PaymentStatus, u registration.StatusUpdate) (bool, error) {
			update = u
			return true, nil
		}
		h := newTestHandler(t, deps)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, newJSONRequest(t, http.MethodPost, "/api/admin/registrations/ref-1/complete", map[string]any{})))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "offline", update.PaymentData.Method)
	})

	t.Run("missing body is rejected", func(t *testing.T) {
		h := newTestHandler(t, newTestDeps())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, httptest.NewRequest(http.MethodPost, "/api/admin/registrations/ref-1/complete", nil)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("nil body reaching the handler", func(t *testing.T) {
		a := newTestAPI(t, newTestDeps())

		resp, err := a.PostAdminRegistrationComplete(context.Background(), PostAdminRegistrationCompleteRequestObject{ClientReference: "ref-1"})

		require.NoError(t, err)
		require.IsType(t, PostAdminRegistrationComplete400JSONResponse{}, resp)
		assert.Equal(t, EmptyBody, resp.(PostAdminRegistrationComplete400JSONResponse).Code)
	})

	t.Run("already completed", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.GetRegistrationFunc = func(ctx context.Context, clientReference string) (registration.Registration, error) {
			reg := pendingRegistration(clientReference)
			reg.PaymentStatus = registration.COMPLETED
			return reg, nil
		}
		h := newTestHandler(t, deps)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, newJSONRequest(t, http.MethodPost, "/api/admin/registrations/ref-1/complete", map[string]any{})))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, AlreadyFinalized, decodeResponse[Error](t, w).Code)
	})

	t.Run("unknown registration", func(t *testing.T) {
		h := newTestHandler(t, newTestDeps())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, newJSONRequest(t, http.MethodPost, "/api/admin/registrations/nope/complete", map[string]any{})))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostAdminRegistrationRemind(t *testing.T) {
	t.Run("sends a reminder", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.GetRegistrationFunc = func(ctx context.Context, clientReference string) (registration.Registration, error) {
			return pendingRegistration(clientReference), nil
		}
		var reminded []string
		deps.notifier.SendReminderFunc = func(ctx context.Context, reg registration.Registration, link string) error {
			reminded = append(reminded, reg.ClientReference)
			return nil
		}
		var recordedAt time.Time
		deps.db.RecordReminderFunc = func(ctx context.Context, clientReference string, at time.Time) error {
			recordedAt = at
			return nil
		}
		h := newTestHandler(t, deps)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, httptest.NewRequest(http.MethodPost, "/api/admin/registrations/ref-1/remind", nil)))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decodeResponse[Registration](t, w)
		assert.Equal(t, 1, got.ReminderCount)
		assert.Equal(t, []string{"ref-1"}, reminded)
		assert.True(t, testNow.Equal(recordedAt))
	})

	t.Run("email failure", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.GetRegistrationFunc = func(ctx context.Context, clientReference string) (registration.Registration, error) {
			return pendingRegistration(clientReference), nil
		}
		deps.notifier.SendReminderFunc = func(ctx context.Context, reg registration.Registration, link string) error {
			return errors.New("smtp down")
		}
		h := newTestHandler(t, deps)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, httptest.NewRequest(http.MethodPost, "/api/admin/registrations/ref-1/remind", nil)))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, NotificationFailed, decodeResponse[Error](t, w).Code)
	})
}

func TestPostAdminOfflineRegistration(t *testing.T) {
	t.Run("records a paid registration", func(t *testing.T) {
		deps := newTestDeps()
		var created registration.Registration
		deps.db.CreateRegistrationFunc = func(ctx context.Context, reg registration.Registration) error {
			created = reg
			return nil
		}
		deps.db.GetRegistrationFunc = func(ctx context.Context, clientReference string) (registration.Registration, error) {
			return created, nil
		}
		h := newTestHandler(t, deps)

		body := validInitiateBody()
		body["eventType"] = "wealth"
		body["payment"] = map[string]any{"method": "cash"}

		w := httptest.NewRecorder()
		h.ServeHTTP(w, withAdmin(t, newJSONRequest(t, http.MethodPost, "/api/admin/offline-registrations", body)))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decodeResponse[Registration](t, w)
		assert.Equal(t, Completed, got.PaymentStatus)
		assert.Equal(t, "wealth", got.EventType)
		assert.Equal(t, created.ClientReference, got.ClientReference)
		require.NotNil(t, got.PaymentData)
		assert.Equal(t, "cash", ptr.Value(got.PaymentData.Method))
		assert.Equal(t, 1200.0, *got.PaymentData.Amount)
	})

	t.Run("requires a token", func(t *testing.T) {
		h := newTestHandler(t, newTestDeps())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/admin/offline-registrations", validInitiateBody()))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
