package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultProviderTimeout = 20 * time.Second
	defaultNotifyTimeout   = 30 * time.Second
	// maxTransitionAttempts bounds how often a transition is retried after
	// losing a conditional write to another non-terminal change.
	maxTransitionAttempts = 3
)

// CallbackNotification is a provider webhook normalised to the fields the
// reconciler needs.
type CallbackNotification struct {
	ClientReference string
	ProviderStatus  string
	ProviderData    PaymentData
}

type CallbackResult struct {
	Registration Registration
	Status       PaymentStatus
	Changed      bool
}

type PollResult struct {
	Registration       Registration
	Status             PaymentStatus
	Source             StatusSource
	ProviderConfigured bool
	// ProviderStatus is the raw provider status when the provider answered.
	ProviderStatus string
	// ProviderError is set when the provider could not be consulted.
	ProviderError     string
	LastProviderCheck *time.Time
	// RecordError is set when the provider answered but the check could not be
	// stored, in which case LastProviderCheck is the previously stored value.
	RecordError string
	Changed     bool
}

// Reconciler is the only component that moves a registration's payment status.
// Both the provider callback and client polling go through it, and every status
// write is conditioned on the status it read.
type Reconciler struct {
	repo            Repository
	provider        PaymentProvider
	notifier        Notifier
	logger          *slog.Logger
	tracer          trace.Tracer
	now             func() time.Time
	providerTimeout time.Duration
	notifyTimeout   time.Duration
}

type ReconcilerOption func(*Reconciler)

func WithClock(now func() time.Time) ReconcilerOption {
	return func(r *Reconciler) {
		r.now = now
	}
}

// WithProviderTimeout bounds each provider status query. Zero keeps the default.
func WithProviderTimeout(timeout time.Duration) ReconcilerOption {
	return func(r *Reconciler) {
		if timeout > 0 {
			r.providerTimeout = timeout
		}
	}
}

// WithNotifyTimeout bounds each status email. Zero keeps the default.
func WithNotifyTimeout(timeout time.Duration) ReconcilerOption {
	return func(r *Reconciler) {
		if timeout > 0 {
			r.notifyTimeout = timeout
		}
	}
}

func NewReconciler(repo Repository, provider PaymentProvider, notifier Notifier, logger *slog.Logger, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		repo:            repo,
		provider:        provider,
		notifier:        notifier,
		logger:          logger,
		tracer:          otel.Tracer("github.com/accessviewafrica/summit-registration/registration"),
		now:             time.Now,
		providerTimeout: defaultProviderTimeout,
		notifyTimeout:   defaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reconciler) ReconcileFromCallback(ctx context.Context, n CallbackNotification) (CallbackResult, error) {
	ctx, span := r.tracer.Start(ctx, "Reconciler.ReconcileFromCallback", trace.WithAttributes(
		attribute.String("registration.client_reference", n.ClientReference),
		attribute.String("payment.provider_status", n.ProviderStatus),
	))
	defer span.End()

	if strings.TrimSpace(n.ClientReference) == "" {
		return CallbackResult{}, NewMalformedCallbackError("Callback is missing a client reference", nil)
	}
	if strings.TrimSpace(n.ProviderStatus) == "" {
		return CallbackResult{}, NewMalformedCallbackError("Callback is missing a payment status", nil)
	}

	reg, err := r.getRegistration(ctx, n.ClientReference)
	if err != nil {
		recordSpanError(span, err)
		return CallbackResult{}, err
	}

	if reg.PaymentStatus.IsTerminal() {
		r.logger.InfoContext(ctx, "Ignoring callback for finalized registration",
			slog.String("client-reference", reg.ClientReference),
			slog.String("status", reg.PaymentStatus.String()),
			slog.String("provider-status", n.ProviderStatus),
		)
		return CallbackResult{Registration: reg, Status: reg.PaymentStatus}, nil
	}

	target := MapProviderStatus(n.ProviderStatus)
	latest, changed, err := r.transition(ctx, reg, target, n.ProviderData, nil)
	if err != nil {
		recordSpanError(span, err)
		return CallbackResult{}, err
	}

	if changed {
		r.notify(ctx, latest)
	}

	span.SetAttributes(attribute.String("payment.status", latest.PaymentStatus.String()), attribute.Bool("payment.changed", changed))
	return CallbackResult{Registration: latest, Status: latest.PaymentStatus, Changed: changed}, nil
}

func (r *Reconciler) ReconcileFromPoll(ctx context.Context, clientReference string, ids ProviderIDs) (PollResult, error) {
	ctx, span := r.tracer.Start(ctx, "Reconciler.ReconcileFromPoll", trace.WithAttributes(
		attribute.String("registration.client_reference", clientReference),
	))
	defer span.End()

	if strings.TrimSpace(clientReference) == "" {
		return PollResult{}, NewInvalidReferenceError("Client reference is required")
	}

	reg, err := r.getRegistration(ctx, clientReference)
	if err != nil {
		recordSpanError(span, err)
		return PollResult{}, err
	}

	result := PollResult{
		Registration:       reg,
		Status:             reg.PaymentStatus,
		Source:             SOURCE_LOCAL,
		ProviderConfigured: r.provider.IsConfigured(),
		LastProviderCheck:  reg.LastProviderCheck,
	}

	if !result.ProviderConfigured {
		result.ProviderError = "payment provider is not configured"
		return result, nil
	}

	providerCtx, cancel := context.WithTimeout(ctx, r.providerTimeout)
	providerStatus, err := r.provider.QueryStatus(providerCtx, clientReference, ids)
	cancel()
	if err != nil {
		r.logger.WarnContext(ctx, "Payment provider status check failed, using local status",
			slog.String("client-reference", clientReference),
			slog.String("error", err.Error()),
		)
		result.ProviderError = err.Error()
		return result, nil
	}

	checkedAt := r.now()
	result.ProviderStatus = providerStatus.Status
	mapped := MapProviderStatus(providerStatus.Status)

	if reg.PaymentStatus.IsTerminal() || mapped == reg.PaymentStatus {
		if !reg.PaymentStatus.IsTerminal() {
			result.Source = SOURCE_PROVIDER
		}
		if err := r.touch(ctx, clientReference, checkedAt); err != nil {
			result.RecordError = err.Error()
		} else {
			result.LastProviderCheck = &checkedAt
			result.Registration.LastProviderCheck = &checkedAt
		}
		return result, nil
	}

	latest, changed, err := r.transition(ctx, reg, mapped, providerStatus.Data, &checkedAt)
	if err != nil {
		recordSpanError(span, err)
		return PollResult{}, err
	}

	result.Registration = latest
	result.Status = latest.PaymentStatus
	result.LastProviderCheck = latest.LastProviderCheck
	result.Changed = changed
	if changed {
		result.Source = SOURCE_PROVIDER
		r.notify(ctx, latest)
	}

	span.SetAttributes(attribute.String("payment.status", result.Status.String()), attribute.String("payment.source", string(result.Source)))
	return result, nil
}

// transition moves reg to target with a conditional write. When another writer
// got there first the stored record is re-read: a terminal or already matching
// record is returned unchanged, otherwise the write is retried against the new
// expected status.
func (r *Reconciler) transition(ctx context.Context, reg Registration, target PaymentStatus, data PaymentData, checkedAt *time.Time) (Registration, bool, error) {
	for range maxTransitionAttempts {
		if reg.PaymentStatus == target || reg.PaymentStatus.IsTerminal() {
			return reg, false, nil
		}

		now := r.now()
		stamped := stampPaymentData(withCheckoutDetails(data, reg.PaymentData), target, now)
		update := StatusUpdate{
			Status:            target,
			PaymentData:       &stamped,
			UpdatedAt:         now,
			LastProviderCheck: checkedAt,
		}

		updated, err := r.repo.UpdatePaymentStatus(ctx, reg.ClientReference, reg.PaymentStatus, update)
		if err != nil {
			return Registration{}, false, err
		}

		if updated {
			r.logger.InfoContext(ctx, "Payment status changed",
				slog.String("client-reference", reg.ClientReference),
				slog.String("from", reg.PaymentStatus.String()),
				slog.String("to", target.String()),
			)
			reg.PaymentStatus = target
			reg.PaymentData = &stamped
			reg.UpdatedAt = now
			if checkedAt != nil {
				reg.LastProviderCheck = checkedAt
			}
			return reg, true, nil
		}

		r.logger.InfoContext(ctx, "Lost payment status race, re-reading registration",
			slog.String("client-reference", reg.ClientReference),
			slog.String("expected", reg.PaymentStatus.String()),
		)
		reg, err = r.getRegistration(ctx, reg.ClientReference)
		if err != nil {
			return Registration{}, false, err
		}
	}

	return reg, false, nil
}

func (r *Reconciler) getRegistration(ctx context.Context, clientReference string) (Registration, error) {
	reg, err := r.repo.GetRegistration(ctx, clientReference)
	if err != nil {
		if HasReason(err, REASON_REGISTRATION_DOES_NOT_EXIST) {
			return Registration{}, NewUnknownRegistrationError(fmt.Sprintf("No registration with client reference %q", clientReference), err)
		}
		return Registration{}, err
	}
	return reg, nil
}

// touch records a provider check. A failure does not fail the poll, the
// caller reports it on the result.
func (r *Reconciler) touch(ctx context.Context, clientReference string, at time.Time) error {
	err := r.repo.TouchProviderCheck(ctx, clientReference, at)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to record provider check",
			slog.String("client-reference", clientReference),
			slog.String("error", err.Error()),
		)
	}
	return err
}

// notify sends the email that belongs to reg's new status. It never fails the
// caller. The status is already stored by the time notify runs, so the email
// is sent on a context detached from the caller's cancellation.
func (r *Reconciler) notify(ctx context.Context, reg Registration) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.notifyTimeout)
	defer cancel()

	var err error
	switch reg.PaymentStatus {
	case COMPLETED:
		err = r.notifier.SendConfirmation(ctx, reg)
	case FAILED:
		err = r.notifier.SendFailureNotice(ctx, reg)
	default:
		return
	}

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to send payment notification",
			slog.String("client-reference", reg.ClientReference),
			slog.String("status", reg.PaymentStatus.String()),
			slog.String("error", err.Error()),
		)
	}
}

// withCheckoutDetails keeps what was recorded at checkout when the provider
// leaves it out.
func withCheckoutDetails(data PaymentData, existing *PaymentData) PaymentData {
	if existing == nil {
		return data
	}
	if data.CheckoutID == "" {
		data.CheckoutID = existing.CheckoutID
	}
	if data.Amount == nil {
		data.Amount = existing.Amount
	}
	return data
}

func stampPaymentData(data PaymentData, status PaymentStatus, at time.Time) PaymentData {
	switch status {
	case COMPLETED:
		if data.CompletedAt == nil {
			data.CompletedAt = &at
		}
	case FAILED:
		if data.FailedAt == nil {
			data.FailedAt = &at
		}
	}
	return data
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	var regErr *Error
	if errors.As(err, &regErr) {
		span.SetStatus(codes.Error, string(regErr.Reason))
		return
	}
	span.SetStatus(codes.Error, err.Error())
}
