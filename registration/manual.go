package registration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/accessviewafrica/summit-registration/events"
	"github.com/accessviewafrica/summit-registration/slices"
)

// CompleteManually marks a non-terminal registration as paid, for payments
// settled outside the provider. The confirmation email is best effort.
func (r *Reconciler) CompleteManually(ctx context.Context, clientReference string, data PaymentData) (Registration, error) {
	ctx, span := r.tracer.Start(ctx, "Reconciler.CompleteManually")
	defer span.End()

	if clientReference == "" {
		return Registration{}, NewInvalidReferenceError("Client reference is required")
	}

	reg, err := r.getRegistration(ctx, clientReference)
	if err != nil {
		recordSpanError(span, err)
		return Registration{}, err
	}

	if reg.PaymentStatus.IsTerminal() {
		return Registration{}, NewAlreadyFinalizedError(reg.PaymentStatus)
	}

	if data.Amount == nil && reg.PaymentData != nil {
		data.Amount = reg.PaymentData.Amount
	}
	if data.Method == "" {
		data.Method = "offline"
	}

	latest, changed, err := r.transition(ctx, reg, COMPLETED, data, nil)
	if err != nil {
		recordSpanError(span, err)
		return Registration{}, err
	}
	if !changed {
		return Registration{}, NewAlreadyFinalizedError(latest.PaymentStatus)
	}

	r.notify(ctx, latest)

	return latest, nil
}

// RegisterOffline records a registration that was paid for in person.
func (r *Reconciler) RegisterOffline(ctx context.Context, req InitiatePaymentRequest, data PaymentData, eventRepo events.Repository) (Registration, error) {
	customer, err := validateCustomerInfo(req.Customer)
	if err != nil {
		return Registration{}, err
	}

	event, err := getEvent(ctx, eventRepo, req.EventType)
	if err != nil {
		return Registration{}, err
	}

	now := r.now()
	reg := Registration{
		ClientReference: NewClientReference(),
		EventType:       event.ID,
		CustomerInfo:    customer,
		PaymentStatus:   PENDING,
		PaymentData:     &PaymentData{Amount: event.Price},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = r.repo.CreateRegistration(ctx, reg)
	if err != nil {
		return Registration{}, err
	}

	r.logger.InfoContext(ctx, "Created offline registration", slog.String("client-reference", reg.ClientReference))

	return r.CompleteManually(ctx, reg.ClientReference, data)
}

// SendPaymentReminder emails the registrant a link to finish paying. Only
// registrations that are still awaiting payment can be reminded.
func (r *Reconciler) SendPaymentReminder(ctx context.Context, clientReference string, link string) (Registration, error) {
	if clientReference == "" {
		return Registration{}, NewInvalidReferenceError("Client reference is required")
	}

	reg, err := r.getRegistration(ctx, clientReference)
	if err != nil {
		return Registration{}, err
	}

	if reg.PaymentStatus.IsTerminal() {
		return Registration{}, NewAlreadyFinalizedError(reg.PaymentStatus)
	}

	err = r.notifier.SendReminder(ctx, reg, link)
	if err != nil {
		return Registration{}, NewNotificationFailedError(fmt.Sprintf("Failed to send reminder for %q", clientReference), err)
	}

	sentAt := r.now()
	err = r.repo.RecordReminder(ctx, clientReference, sentAt)
	if err != nil {
		return Registration{}, err
	}

	reg.ReminderCount++
	reg.LastReminderSent = &sentAt
	return reg, nil
}

// ReminderCandidates returns pending registrations created before cutoff.
func (r *Reconciler) ReminderCandidates(ctx context.Context, cutoff time.Time, limit int32) ([]Registration, error) {
	status := PENDING
	var cursor *string
	var candidates []Registration
	for {
		resp, err := r.repo.ListRegistrations(ctx, ListFilter{Status: &status}, limit, cursor)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, slices.Filter(resp.Data, func(reg Registration) bool {
			return reg.CreatedAt.Before(cutoff)
		})...)
		if !resp.HasNextPage {
			return candidates, nil
		}
		cursor = resp.Cursor
	}
}
