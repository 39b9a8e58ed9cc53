package events

import (
	"context"
	"time"

	"github.com/Rhymond/go-money"
)

// Event is one of the summit sessions a registrant can pay for. The ID doubles
// as the event type stored on a registration.
type Event struct {
	ID          string
	Title       string
	Description string
	Facilitator string
	Image       string
	Location    Location
	StartTime   time.Time
	// DisplayTime is the human readable time slot, e.g. "9:00 AM - 3:00 PM".
	DisplayTime string
	Price       *money.Money
}

// DisplayDate renders the start date the way it is printed in emails.
func (e Event) DisplayDate() string {
	return e.StartTime.Format("January 2, 2006")
}

type Repository interface {
	GetEvent(ctx context.Context, id string) (Event, error)
	GetEvents(ctx context.Context) ([]Event, error)
}
