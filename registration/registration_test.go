package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/accessviewafrica/summit-registration/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ceoEventRepo() *mockEventRepository {
	return &mockEventRepository{
		GetEventFunc: func(ctx context.Context, id string) (events.Event, error) {
			if id != "ceo" {
				return events.Event{}, events.NewEventDoesNotExistsError("no such event", nil)
			}
			return events.Event{
				ID:    "ceo",
				Title: "CEO Summit",
				Price: money.New(250000, "GHS"),
			}, nil
		},
	}
}

func validRequest() InitiatePaymentRequest {
	return InitiatePaymentRequest{
		EventType: "ceo",
		Customer: CustomerInfo{
			FullName:     " Kofi Boateng ",
			Email:        "kofi@example.com",
			Phone:        "0201234567",
			Organization: "Boateng Ltd",
			IsMember:     true,
		},
	}
}

func TestInitiatePayment(t *testing.T) {
	ctx := context.Background()
	urls := CheckoutURLs{
		CallbackURL: "https://summit.example.com/api/payment-callback",
		ReturnURL:   "https://summit.example.com/verify/{clientReference}",
		CancelURL:   "https://summit.example.com/register?ref={clientReference}",
	}

	t.Run("creates a pending registration after the checkout", func(t *testing.T) {
		repo := newMemoryRepository()
		var charged ChargeRequest
		provider := &mockProvider{
			Configured: true,
			InitiateChargeFunc: func(ctx context.Context, req ChargeRequest) (CheckoutHandle, error) {
				charged = req
				return CheckoutHandle{CheckoutURL: "https://pay.example.com/c/1", CheckoutID: "chk-1"}, nil
			},
		}

		initiated, err := InitiatePayment(ctx, validRequest(), urls, ceoEventRepo(), repo, provider)
		require.NoError(t, err)

		ref := initiated.Registration.ClientReference
		assert.Len(t, ref, 32)
		assert.Equal(t, ref, charged.ClientReference)
		assert.Equal(t, int64(250000), charged.Amount.Amount())
		assert.Equal(t, "https://summit.example.com/verify/"+ref, charged.ReturnURL)
		assert.Equal(t, "https://summit.example.com/register?ref="+ref, charged.CancelURL)
		assert.Equal(t, urls.CallbackURL, charged.CallbackURL)
		assert.Equal(t, "Kofi Boateng", charged.PayerName)
		assert.Equal(t, "https://pay.example.com/c/1", initiated.Checkout.CheckoutURL)

		stored := repo.get(ref)
		assert.Equal(t, PENDING, stored.PaymentStatus)
		assert.Equal(t, "ceo", stored.EventType)
		assert.Equal(t, "chk-1", stored.PaymentData.CheckoutID)
		assert.True(t, stored.CustomerInfo.IsMember)
	})

	t.Run("provider failure creates nothing", func(t *testing.T) {
		repo := newMemoryRepository()
		provider := &mockProvider{
			InitiateChargeFunc: func(ctx context.Context, req ChargeRequest) (CheckoutHandle, error) {
				return CheckoutHandle{}, errors.New("503")
			},
		}

		_, err := InitiatePayment(ctx, validRequest(), urls, ceoEventRepo(), repo, provider)

		assert.True(t, HasReason(err, REASON_PROVIDER_FAILURE))
		assert.Empty(t, repo.registrations)
	})

	t.Run("unknown event", func(t *testing.T) {
		req := validRequest()
		req.EventType = "gala"

		_, err := InitiatePayment(ctx, req, urls, ceoEventRepo(), newMemoryRepository(), &mockProvider{})

		assert.True(t, HasReason(err, REASON_ASSOCIATED_EVENT_DOES_NOT_EXIST))
	})

	t.Run("event lookup failure", func(t *testing.T) {
		eventRepo := &mockEventRepository{
			GetEventFunc: func(ctx context.Context, id string) (events.Event, error) {
				return events.Event{}, errors.New("boom")
			},
		}

		_, err := InitiatePayment(ctx, validRequest(), urls, eventRepo, newMemoryRepository(), &mockProvider{})

		assert.True(t, HasReason(err, REASON_FAILED_TO_FETCH))
	})

	t.Run("form validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(c *CustomerInfo)
		}{
			{name: "missing name", mutate: func(c *CustomerInfo) { c.FullName = "  " }},
			{name: "missing email", mutate: func(c *CustomerInfo) { c.Email = "" }},
			{name: "bad email", mutate: func(c *CustomerInfo) { c.Email = "not-an-email" }},
			{name: "missing phone", mutate: func(c *CustomerInfo) { c.Phone = "" }},
			{name: "missing organization", mutate: func(c *CustomerInfo) { c.Organization = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validRequest()
				tt.mutate(&req.Customer)

				_, err := InitiatePayment(ctx, req, urls, ceoEventRepo(), newMemoryRepository(), &mockProvider{})

				assert.True(t, HasReason(err, REASON_INVALID_FORM))
			})
		}
	})
}

func TestCompleteManually(t *testing.T) {
	ctx := context.Background()

	t.Run("completes a pending registration", func(t *testing.T) {
		reg := pendingRegistration("ref-1")
		reg.PaymentData = &PaymentData{Amount: money.New(250000, "GHS")}
		repo := newMemoryRepository(reg)
		notifier := &recordingNotifier{}
		r := NewReconciler(repo, &mockProvider{}, notifier, discardLogger, WithClock(fixedClock()))

		completed, err := r.CompleteManually(ctx, "ref-1", PaymentData{Description: "Paid at the door"})
		require.NoError(t, err)

		assert.Equal(t, COMPLETED, completed.PaymentStatus)
		assert.Equal(t, "offline", completed.PaymentData.Method)
		assert.Equal(t, int64(250000), completed.PaymentData.Amount.Amount())
		assert.Equal(t, COMPLETED, repo.get("ref-1").PaymentStatus)
		assert.Equal(t, []string{"ref-1"}, notifier.confirmations)
	})

	t.Run("refuses finalized registrations", func(t *testing.T) {
		reg := pendingRegistration("ref-1")
		reg.PaymentStatus = FAILED
		r := NewReconciler(newMemoryRepository(reg), &mockProvider{}, &recordingNotifier{}, discardLogger)

		_, err := r.CompleteManually(ctx, "ref-1", PaymentData{})

		assert.True(t, HasReason(err, REASON_ALREADY_FINALIZED))
	})

	t.Run("unknown registration", func(t *testing.T) {
		r := NewReconciler(newMemoryRepository(), &mockProvider{}, &recordingNotifier{}, discardLogger)

		_, err := r.CompleteManually(ctx, "ref-1", PaymentData{})

		assert.True(t, HasReason(err, REASON_UNKNOWN_REGISTRATION))
	})
}

func TestRegisterOffline(t *testing.T) {
	repo := newMemoryRepository()
	notifier := &recordingNotifier{}
	r := NewReconciler(repo, &mockProvider{}, notifier, discardLogger, WithClock(fixedClock()))

	reg, err := r.RegisterOffline(context.Background(), validRequest(), PaymentData{Method: "cash"}, ceoEventRepo())
	require.NoError(t, err)

	assert.Equal(t, COMPLETED, reg.PaymentStatus)
	assert.Equal(t, "cash", reg.PaymentData.Method)
	assert.Equal(t, int64(250000), reg.PaymentData.Amount.Amount())
	assert.Equal(t, COMPLETED, repo.get(reg.ClientReference).PaymentStatus)
	assert.Equal(t, []string{reg.ClientReference}, notifier.confirmations)
}

func TestSendPaymentReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("reminds pending registrations", func(t *testing.T) {
		repo := newMemoryRepository(pendingRegistration("ref-1"))
		notifier := &recordingNotifier{}
		r := NewReconciler(repo, &mockProvider{}, notifier, discardLogger, WithClock(fixedClock()))

		reg, err := r.SendPaymentReminder(ctx, "ref-1", "https://summit.example.com/register?ref=ref-1")
		require.NoError(t, err)

		assert.Equal(t, 1, reg.ReminderCount)
		assert.Equal(t, []string{"https://summit.example.com/register?ref=ref-1"}, notifier.reminders)
		stored := repo.get("ref-1")
		assert.Equal(t, 1, stored.ReminderCount)
		assert.Equal(t, fixedClock()(), *stored.LastReminderSent)
	})

	t.Run("does not remind paid registrations", func(t *testing.T) {
		reg := pendingRegistration("ref-1")
		reg.PaymentStatus = COMPLETED
		notifier := &recordingNotifier{}
		r := NewReconciler(newMemoryRepository(reg), &mockProvider{}, notifier, discardLogger)

		_, err := r.SendPaymentReminder(ctx, "ref-1", "link")

		assert.True(t, HasReason(err, REASON_ALREADY_FINALIZED))
		assert.Empty(t, notifier.reminders)
	})

	t.Run("send failure is reported and not recorded", func(t *testing.T) {
		repo := newMemoryRepository(pendingRegistration("ref-1"))
		r := NewReconciler(repo, &mockProvider{}, &recordingNotifier{Err: errors.New("smtp down")}, discardLogger)

		_, err := r.SendPaymentReminder(ctx, "ref-1", "link")

		assert.True(t, HasReason(err, REASON_NOTIFICATION_FAILED))
		assert.Zero(t, repo.get("ref-1").ReminderCount)
	})
}

func TestReminderCandidates(t *testing.T) {
	old := pendingRegistration("old")
	fresh := pendingRegistration("fresh")
	fresh.CreatedAt = time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)
	paid := pendingRegistration("paid")
	paid.PaymentStatus = COMPLETED
	r := NewReconciler(newMemoryRepository(old, fresh, paid), &mockProvider{}, &recordingNotifier{}, discardLogger)

	candidates, err := r.ReminderCandidates(context.Background(), time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC), 25)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "old", candidates[0].ClientReference)
}
