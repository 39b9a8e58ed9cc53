package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successCallback = `{
	"ResponseCode": "0000",
	"Status": "Success",
	"Data": {
		"CheckoutId": "chk-1",
		"SalesInvoiceId": "inv-1",
		"ClientReference": "ref-1",
		"Status": "Success",
		"Amount": 2500,
		"CustomerPhoneNumber": "233244000000",
		"PaymentDetails": {"MobileMoneyNumber": "233244000000", "PaymentType": "mobilemoney", "Channel": "mtn-gh"},
		"Description": "The MTN Mobile Money payment has been approved and processed successfully."
	}
}`

func serveCallback(t *testing.T, deps testDeps, body string) *httptest.ResponseRecorder {
	t.Helper()

	a := newTestAPI(t, deps)
	handler := a.paymentCallbackMiddleware(callbackPath)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, callbackPath, strings.NewReader(body)))
	return w
}

func TestPaymentCallbackMiddleware(t *testing.T) {
	t.Run("successful payment completes the registration", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.GetRegistrationFunc = func(ctx context.Context, clientReference string) (registration.Registration, error) {
			return pendingRegistration(clientReference), nil
		}
		var update registration.StatusUpdate
		deps.db.UpdatePaymentStatusFunc = func(ctx context.Context, clientReference string, expected registration.PaymentStatus, u registration.StatusUpdate) (bool, error) {
			update = u
			return true, nil
		}
		var confirmed []string
		deps.notifier.SendConfirmationFunc = func(ctx context.Context, reg registration.Registration) error {
			confirmed = append(confirmed, reg.ClientReference)
			return nil
		}

		w := serveCallback(t, deps, successCallback)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, registration.COMPLETED, update.Status)
		require.NotNil(t, update.PaymentData)
		assert.Equal(t, "inv-1", update.PaymentData.TransactionID)
		assert.Equal(t, "mtn-gh", update.PaymentData.Channel)
		assert.Equal(t, []string{"ref-1"}, confirmed)
	})

	t.Run("email failure is still acknowledged", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.GetRegistrationFunc = func(ctx context.Context, clientReference string) (registration.Registration, error) {
			return pendingRegistration(clientReference), nil
		}
		deps.notifier.SendConfirmationFunc = func(ctx context.Context, reg registration.Registration) error {
			return errors.New("smtp down")
		}

		w := serveCallback(t, deps, successCallback)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown registration is acknowledged", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.UpdatePaymentStatusFunc = func(ctx context.Context, clientReference string, expected registration.PaymentStatus, u registration.StatusUpdate) (bool, error) {
			t.Fatal("nothing should be written")
			return false, nil
		}

		w := serveCallback(t, deps, successCallback)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ignored"}`, w.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		w := serveCallback(t, newTestDeps(), "{not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing client reference", func(t *testing.T) {
		w := serveCallback(t, newTestDeps(), `{"ResponseCode":"0000","Status":"Success","Data":{"Status":"Success"}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage failure asks the provider to retry", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.GetRegistrationFunc = func(ctx context.Context, clientReference string) (registration.Registration, error) {
			return registration.Registration{}, registration.NewFailedToFetchError("dynamo unavailable", nil)
		}

		w := serveCallback(t, deps, successCallback)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("oversized body", func(t *testing.T) {
		w := serveCallback(t, newTestDeps(), `{"pad":"`+strings.Repeat("a", maxCallbackBodyBytes)+`"}`)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("non-matching path should pass through", func(t *testing.T) {
		a := newTestAPI(t, newTestDeps())
		handler := a.paymentCallbackMiddleware(callbackPath)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/initiate-payment", strings.NewReader("{}")))

		assert.Equal(t, http.StatusTeapot, w.Code)
	})

	t.Run("reachable through the full handler without validation", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.GetRegistrationFunc = func(ctx context.Context, clientReference string) (registration.Registration, error) {
			return pendingRegistration(clientReference), nil
		}
		h := newTestHandler(t, deps)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, callbackPath, strings.NewReader(successCallback)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"completed"}`, w.Body.String())
	})
}
