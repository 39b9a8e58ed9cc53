package registration

import (
	"time"

	"github.com/Rhymond/go-money"
)

type PaymentStatus string

const (
	PENDING   PaymentStatus = "pending"
	COMPLETED PaymentStatus = "completed"
	FAILED    PaymentStatus = "failed"
	CANCELLED PaymentStatus = "cancelled"
	REFUNDED  PaymentStatus = "refunded"
	UNKNOWN   PaymentStatus = "unknown"
)

// IsTerminal reports whether no automatic transition may leave this status.
// Cancelled and refunded are treated the same as completed and failed.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case COMPLETED, FAILED, CANCELLED, REFUNDED:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

// MapProviderStatus translates the payment provider's status vocabulary.
// Matching is case-sensitive; anything unrecognised maps to UNKNOWN.
func MapProviderStatus(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "Success", "Paid":
		return COMPLETED
	case "Failed":
		return FAILED
	case "Pending", "Unpaid":
		return PENDING
	case "Cancelled":
		return CANCELLED
	case "Refunded":
		return REFUNDED
	default:
		return UNKNOWN
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch status := PaymentStatus(s); status {
	case PENDING, COMPLETED, FAILED, CANCELLED, REFUNDED, UNKNOWN:
		return status, true
	default:
		return "", false
	}
}

// PaymentData holds the settlement details reported by the provider (or entered
// by an admin for offline payments). It is only written together with a status
// change.
type PaymentData struct {
	TransactionID         string
	ExternalTransactionID string
	CheckoutID            string
	Amount                *money.Money
	Method                string
	Channel               string
	PayerPhone            string
	Description           string
	CompletedAt           *time.Time
	FailedAt              *time.Time
}

type StatusSource string

const (
	SOURCE_LOCAL    StatusSource = "local"
	SOURCE_PROVIDER StatusSource = "provider"
)
