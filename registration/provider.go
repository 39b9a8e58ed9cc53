package registration

import (
	"context"

	"github.com/Rhymond/go-money"
)

// PaymentProvider is the external checkout service.
type PaymentProvider interface {
	IsConfigured() bool
	InitiateCharge(ctx context.Context, req ChargeRequest) (CheckoutHandle, error)
	QueryStatus(ctx context.Context, clientReference string, ids ProviderIDs) (ProviderStatus, error)
}

type ChargeRequest struct {
	ClientReference string
	Amount          *money.Money
	Description     string
	PayerName       string
	PayerPhone      string
	PayerEmail      string
	CallbackURL     string
	ReturnURL       string
	CancelURL       string
}

type CheckoutHandle struct {
	CheckoutURL       string
	CheckoutID        string
	CheckoutDirectURL string
}

// ProviderIDs are optional provider side identifiers that narrow a status query.
type ProviderIDs struct {
	TransactionID        string
	NetworkTransactionID string
}

type ProviderStatus struct {
	// Status is the provider's raw status string, e.g. "Paid".
	Status       string
	ResponseCode string
	Data         PaymentData
}

type Notifier interface {
	SendConfirmation(ctx context.Context, reg Registration) error
	SendFailureNotice(ctx context.Context, reg Registration) error
	SendReminder(ctx context.Context, reg Registration, link string) error
}
