package registration

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	CreateRegistration(ctx context.Context, registration Registration) error
	GetRegistration(ctx context.Context, clientReference string) (Registration, error)
	// UpdatePaymentStatus applies update only if the stored status still equals
	// expected. It returns false, with no error, when the condition did not hold.
	UpdatePaymentStatus(ctx context.Context, clientReference string, expected PaymentStatus, update StatusUpdate) (bool, error)
	TouchProviderCheck(ctx context.Context, clientReference string, at time.Time) error
	RecordReminder(ctx context.Context, clientReference string, at time.Time) error
	ListRegistrations(ctx context.Context, filter ListFilter, limit int32, cursor *string) (ListRegistrationsResponse, error)
}

type ListFilter struct {
	Status *PaymentStatus
}

type ListRegistrationsResponse struct {
	Data        []Registration
	Cursor      *string
	HasNextPage bool
}

type StatusUpdate struct {
	Status            PaymentStatus
	PaymentData       *PaymentData
	UpdatedAt         time.Time
	LastProviderCheck *time.Time
}

type Registration struct {
	ClientReference   string
	EventType         string
	CustomerInfo      CustomerInfo
	PaymentStatus     PaymentStatus
	PaymentData       *PaymentData
	LastProviderCheck *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ReminderCount     int
	LastReminderSent  *time.Time
}

type CustomerInfo struct {
	FullName     string
	Email        string
	Phone        string
	Organization string
	IsMember     bool
}

// NewClientReference returns a 32 character hex reference that is unique per
// checkout attempt.
func NewClientReference() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
