package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/accessviewafrica/summit-registration/events"
	"github.com/accessviewafrica/summit-registration/slices"
)

func (a *API) GetEvents(ctx context.Context, request GetEventsRequestObject) (GetEventsResponseObject, error) {
	result, err := a.eventRepo.GetEvents(ctx)
	if err != nil {
		a.getLoggerOrBaseLogger(ctx).Error("Failed to get events", "error", err)

		return GetEventsdefaultJSONResponse{
			Body: Error{
				Code:    InternalError,
				Message: "Internal server error",
			},
			StatusCode: http.StatusInternalServerError,
		}, nil
	}

	return GetEvents200JSONResponse(slices.Map(result, func(v events.Event) Event {
		return eventToApiEvent(v)
	})), nil
}

func (a *API) GetEventsId(ctx context.Context, request GetEventsIdRequestObject) (GetEventsIdResponseObject, error) {
	event, err := a.eventRepo.GetEvent(ctx, request.Id)
	if err != nil {
		var eventErr *events.Error
		if errors.As(err, &eventErr) {
			switch eventErr.Reason {
			case events.REASON_EVENT_DOES_NOT_EXIST:
				return GetEventsId404JSONResponse{
					Code:    NotFound,
					Message: "Event does not exist",
				}, nil
			}
		}

		a.getLoggerOrBaseLogger(ctx).Error("Failed to fetch an event", "error", err, "eventId", request.Id)
		return GetEventsIddefaultJSONResponse{
			Body: Error{
				Code:    InternalError,
				Message: "Failed to get event",
			},
			StatusCode: http.StatusInternalServerError,
		}, nil
	}

	return GetEventsId200JSONResponse(eventToApiEvent(event)), nil
}

func eventToApiEvent(event events.Event) Event {
	e := Event{
		Id:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Facilitator: event.Facilitator,
		Image:       event.Image,
		Location:    locationToApiLocation(event.Location),
		StartTime:   event.StartTime,
		Date:        event.DisplayDate(),
		Time:        event.DisplayTime,
	}
	if event.Price != nil {
		e.Price = event.Price.AsMajorUnits()
		e.Currency = event.Price.Currency().Code
		e.PriceDisplay = event.Price.Display()
	}
	return e
}

func locationToApiLocation(location events.Location) Location {
	return Location{
		Name:    location.Name,
		Address: addressToApiAddress(location.LocAddress),
	}
}

func addressToApiAddress(address events.Address) Address {
	return Address{
		Street:  address.Street,
		City:    address.City,
		Country: address.Country,
	}
}
