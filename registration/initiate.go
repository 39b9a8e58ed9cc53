package registration

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/accessviewafrica/summit-registration/events"
)

type InitiatePaymentRequest struct {
	EventType string
	Customer  CustomerInfo
}

// CheckoutURLs are handed to the provider for each checkout. ReturnURL and
// CancelURL may contain "{clientReference}", which is substituted per request.
type CheckoutURLs struct {
	CallbackURL string
	ReturnURL   string
	CancelURL   string
}

type InitiatedPayment struct {
	Registration Registration
	Event        events.Event
	Checkout     CheckoutHandle
}

// InitiatePayment starts a provider checkout for the requested event and
// persists a pending registration once the provider has accepted it.
func InitiatePayment(ctx context.Context, req InitiatePaymentRequest, urls CheckoutURLs, eventRepo events.Repository, repo Repository, provider PaymentProvider) (InitiatedPayment, error) {
	customer, err := validateCustomerInfo(req.Customer)
	if err != nil {
		return InitiatedPayment{}, err
	}

	event, err := getEvent(ctx, eventRepo, req.EventType)
	if err != nil {
		return InitiatedPayment{}, err
	}

	clientReference := NewClientReference()

	checkout, err := provider.InitiateCharge(ctx, ChargeRequest{
		ClientReference: clientReference,
		Amount:          event.Price,
		Description:     fmt.Sprintf("%s - %s", event.Title, customer.FullName),
		PayerName:       customer.FullName,
		PayerPhone:      customer.Phone,
		PayerEmail:      customer.Email,
		CallbackURL:     urls.CallbackURL,
		ReturnURL:       withClientReference(urls.ReturnURL, clientReference),
		CancelURL:       withClientReference(urls.CancelURL, clientReference),
	})
	if err != nil {
		return InitiatedPayment{}, NewProviderFailureError("Failed to initiate checkout", err)
	}

	now := time.Now()
	reg := Registration{
		ClientReference: clientReference,
		EventType:       event.ID,
		CustomerInfo:    customer,
		PaymentStatus:   PENDING,
		PaymentData: &PaymentData{
			CheckoutID: checkout.CheckoutID,
			Amount:     event.Price,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = repo.CreateRegistration(ctx, reg)
	if err != nil {
		return InitiatedPayment{}, err
	}

	return InitiatedPayment{
		Registration: reg,
		Event:        event,
		Checkout:     checkout,
	}, nil
}

func getEvent(ctx context.Context, eventRepo events.Repository, eventType string) (events.Event, error) {
	event, err := eventRepo.GetEvent(ctx, eventType)
	if err != nil {
		var eventErr *events.Error
		if errors.As(err, &eventErr) {
			switch eventErr.Reason {
			case events.REASON_EVENT_DOES_NOT_EXIST:
				return events.Event{}, NewAssociatedEventDoesNotExistError(fmt.Sprintf("Event does not exist with ID %q", eventType), err)
			}
		}

		return events.Event{}, NewFailedToFetchError(fmt.Sprintf("Failed to fetch event with ID %q", eventType), err)
	}
	return event, nil
}

func validateCustomerInfo(c CustomerInfo) (CustomerInfo, error) {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Organization = strings.TrimSpace(c.Organization)

	var missing []string
	if c.FullName == "" {
		missing = append(missing, "fullName")
	}
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.Phone == "" {
		missing = append(missing, "phone")
	}
	if c.Organization == "" {
		missing = append(missing, "organization")
	}
	if len(missing) > 0 {
		return CustomerInfo{}, NewInvalidFormError(fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}

	addr, err := mail.ParseAddress(c.Email)
	if err != nil {
		return CustomerInfo{}, NewInvalidFormError(fmt.Sprintf("Invalid email address %q", c.Email))
	}
	c.Email = addr.Address

	return c, nil
}

func withClientReference(url, clientReference string) string {
	return strings.ReplaceAll(url, "{clientReference}", clientReference)
}
