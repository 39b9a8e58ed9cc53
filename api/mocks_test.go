package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/accessviewafrica/summit-registration/config"
	"github.com/accessviewafrica/summit-registration/events"
	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var noopLogger = slog.New(slog.DiscardHandler)

const testJWTSecret = "test-secret"

var testNow = time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC)

var _ DB = &mockDB{}

type mockDB struct {
	CreateRegistrationFunc  func(ctx context.Context, reg registration.Registration) error
	GetRegistrationFunc     func(ctx context.Context, clientReference string) (registration.Registration, error)
	UpdatePaymentStatusFunc func(ctx context.Context, clientReference string, expected registration.PaymentStatus, update registration.StatusUpdate) (bool, error)
	TouchProviderCheckFunc  func(ctx context.Context, clientReference string, at time.Time) error
	RecordReminderFunc      func(ctx context.Context, clientReference string, at time.Time) error
	ListRegistrationsFunc   func(ctx context.Context, filter registration.ListFilter, limit int32, cursor *string) (registration.ListRegistrationsResponse, error)
	PingFunc                func(ctx context.Context) error
}

func (m *mockDB) CreateRegistration(ctx context.Context, reg registration.Registration) error {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	return nil
}

func (m *mockDB) GetRegistration(ctx context.Context, clientReference string) (registration.Registration, error) {
	if m.GetRegistrationFunc != nil {
		return m.GetRegistrationFunc(ctx, clientReference)
	}
	return registration.Registration{}, registration.NewRegistrationDoesNotExistsError("not found", nil)
}

func (m *mockDB) UpdatePaymentStatus(ctx context.Context, clientReference string, expected registration.PaymentStatus, update registration.StatusUpdate) (bool, error) {
	if m.UpdatePaymentStatusFunc != nil {
		return m.UpdatePaymentStatusFunc(ctx, clientReference, expected, update)
	}
	return true, nil
}

func (m *mockDB) TouchProviderCheck(ctx context.Context, clientReference string, at time.Time) error {
	if m.TouchProviderCheckFunc != nil {
		return m.TouchProviderCheckFunc(ctx, clientReference, at)
	}
	return nil
}

func (m *mockDB) RecordReminder(ctx context.Context, clientReference string, at time.Time) error {
	if m.RecordReminderFunc != nil {
		return m.RecordReminderFunc(ctx, clientReference, at)
	}
	return nil
}

func (m *mockDB) ListRegistrations(ctx context.Context, filter registration.ListFilter, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
	if m.ListRegistrationsFunc != nil {
		return m.ListRegistrationsFunc(ctx, filter, limit, cursor)
	}
	return registration.ListRegistrationsResponse{}, nil
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

var _ registration.PaymentProvider = &mockProvider{}

type mockProvider struct {
	Configured         bool
	InitiateChargeFunc func(ctx context.Context, req registration.ChargeRequest) (registration.CheckoutHandle, error)
	QueryStatusFunc    func(ctx context.Context, clientReference string, ids registration.ProviderIDs) (registration.ProviderStatus, error)
}

func (m *mockProvider) IsConfigured() bool {
	return m.Configured
}

func (m *mockProvider) InitiateCharge(ctx context.Context, req registration.ChargeRequest) (registration.CheckoutHandle, error) {
	if m.InitiateChargeFunc != nil {
		return m.InitiateChargeFunc(ctx, req)
	}
	return registration.CheckoutHandle{}, nil
}

func (m *mockProvider) QueryStatus(ctx context.Context, clientReference string, ids registration.ProviderIDs) (registration.ProviderStatus, error) {
	if m.QueryStatusFunc != nil {
		return m.QueryStatusFunc(ctx, clientReference, ids)
	}
	return registration.ProviderStatus{}, nil
}

var _ registration.Notifier = &mockNotifier{}

type mockNotifier struct {
	SendConfirmationFunc  func(ctx context.Context, reg registration.Registration) error
	SendFailureNoticeFunc func(ctx context.Context, reg registration.Registration) error
	SendReminderFunc      func(ctx context.Context, reg registration.Registration, link string) error
}

func (m *mockNotifier) SendConfirmation(ctx context.Context, reg registration.Registration) error {
	if m.SendConfirmationFunc != nil {
		return m.SendConfirmationFunc(ctx, reg)
	}
	return nil
}

func (m *mockNotifier) SendFailureNotice(ctx context.Context, reg registration.Registration) error {
	if m.SendFailureNoticeFunc != nil {
		return m.SendFailureNoticeFunc(ctx, reg)
	}
	return nil
}

func (m *mockNotifier) SendReminder(ctx context.Context, reg registration.Registration, link string) error {
	if m.SendReminderFunc != nil {
		return m.SendReminderFunc(ctx, reg, link)
	}
	return nil
}

var _ redis.Scripter = &mockScripter{}

type mockScripter struct {
	EvalShaFunc func(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd
}

func (m *mockScripter) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return m.EvalSha(ctx, "", keys, args...)
}

func (m *mockScripter) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	if m.EvalShaFunc != nil {
		return m.EvalShaFunc(ctx, sha1, keys, args...)
	}
	return redis.NewCmdResult(nil, errors.New("no script result configured"))
}

func (m *mockScripter) EvalRO(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return m.Eval(ctx, script, keys, args...)
}

func (m *mockScripter) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	return m.EvalSha(ctx, sha1, keys, args...)
}

func (m *mockScripter) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(nil, nil)
}

func (m *mockScripter) ScriptLoad(ctx context.Context, script string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

type testDeps struct {
	db       *mockDB
	provider *mockProvider
	notifier *mockNotifier
}

func newTestDeps() testDeps {
	return testDeps{
		db:       &mockDB{},
		provider: &mockProvider{Configured: true},
		notifier: &mockNotifier{},
	}
}

func newTestAPI(t *testing.T, deps testDeps, opts ...Option) *API {
	t.Helper()

	catalog, err := events.DefaultCatalog()
	require.NoError(t, err)

	reconciler := registration.NewReconciler(deps.db, deps.provider, deps.notifier, noopLogger,
		registration.WithClock(func() time.Time { return testNow }),
	)

	opts = append([]Option{WithAdminSecret(testJWTSecret)}, opts...)
	return NewAPI(deps.db, catalog, reconciler, deps.provider, registration.CheckoutURLs{
		CallbackURL: "https://api.example.com/api/payment-callback",
		ReturnURL:   "https://summit.example.com/verify/{clientReference}",
		CancelURL:   "https://summit.example.com/register?ref={clientReference}",
	}, noopLogger, config.LOCAL, opts...)
}

func newTestHandler(t *testing.T, deps testDeps, opts ...Option) http.Handler {
	t.Helper()

	h, err := newTestAPI(t, deps, opts...).Handler()
	require.NoError(t, err)
	return h
}

func pendingRegistration(ref string) registration.Registration {
	created := testNow.Add(-time.Hour)
	return registration.Registration{
		ClientReference: ref,
		EventType:       "ceo",
		CustomerInfo: registration.CustomerInfo{
			FullName:     "Ama Mensah",
			Email:        "ama@example.com",
			Phone:        "0244000000",
			Organization: "Mensah Ventures",
		},
		PaymentStatus: registration.PENDING,
		PaymentData: &registration.PaymentData{
			CheckoutID: "chk-" + ref,
			Amount:     money.New(250000, "GHS"),
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func adminToken(t *testing.T) string {
	t.Helper()

	token, err := NewAdminToken(testJWTSecret, "ops@accessviewafrica.com", time.Hour, time.Now())
	require.NoError(t, err)
	return token
}

func newJSONRequest(t *testing.T, method string, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
