package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/slices"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

func pageLimit(limit *Limit) (int32, *apiError) {
	if limit == nil {
		return defaultPageLimit, nil
	}
	if *limit < 1 || *limit > maxPageLimit {
		return 0, newApiError(http.StatusBadRequest, LimitOutOfBounds, fmt.Sprintf("Limit must be between 1 and %d", maxPageLimit))
	}
	return int32(*limit), nil
}

func (a *API) GetEvents(ctx context.Context, request GetEventsRequestObject) (GetEventsResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	limit, badLimit := pageLimit(request.Params.Limit)
	if badLimit != nil {
		return GetEvents400JSONResponse(badLimit.body), nil
	}

	result, err := a.events.GetEvents(ctx, limit, request.Params.Cursor)
	if err != nil {
		logger.Error("Failed to get events from the DB", "error", err)

		var eventErr *events.Error
		if errors.As(err, &eventErr) {
			switch eventErr.Reason {
			case events.REASON_INVALID_CURSOR:
				return GetEvents400JSONResponse{
					Code:    InvalidCursor,
					Message: "Passed in cursor is invalid",
				}, nil
			}
		}
		return GetEvents500JSONResponse{
			Code:    InternalError,
			Message: "Internal server error",
		}, nil
	}

	return GetEvents200JSONResponse{
		Data:        slices.Map(result.Data, eventToApiEvent),
		Cursor:      result.Cursor,
		HasNextPage: result.HasNextPage,
	}, nil
}

func (a *API) PostEvents(ctx context.Context, request PostEventsRequestObject) (PostEventsResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	user, ok := getUserFromCtx(ctx)
	if !ok {
		return PostEvents401JSONResponse{
			Code:    AuthError,
			Message: "Must be logged in to create an event",
		}, nil
	}
	if request.Body == nil {
		return PostEvents400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	price, badPrice := apiMoneyToMoney(request.Body.TicketPrice)
	if badPrice != nil {
		return PostEvents400JSONResponse(badPrice.body), nil
	}

	event := events.Event{
		ID:          uuid.New(),
		Version:     1,
		Title:       request.Body.Title,
		Description: descriptionOrEmpty(request.Body.Description),
		TicketPrice: price,
		OrganizerID: user.ID,
		StartTime:   request.Body.StartTime,
		CreatedAt:   a.now().UTC(),
	}

	err := a.events.CreateEvent(ctx, event)
	if err != nil {
		logger.Error("Failed to create an event", "error", err)

		return PostEvents500JSONResponse{
			Code:    InternalError,
			Message: "Failed to create the event",
		}, nil
	}

	return PostEvents200JSONResponse(eventToApiEvent(event)), nil
}

func (a *API) GetEvent(ctx context.Context, request GetEventRequestObject) (GetEventResponseObject, error) {
	event, err := a.events.GetEvent(ctx, request.EventId)
	if err != nil {
		e := a.eventError(ctx, err, "Failed to get event")
		return GetEventdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return GetEvent200JSONResponse(eventToApiEvent(event)), nil
}

func (a *API) PutEvent(ctx context.Context, request PutEventRequestObject) (PutEventResponseObject, error) {
	if request.Body == nil {
		return PutEvent400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	if _, e := a.requireOrganizer(ctx, request.EventId); e != nil {
		return PutEventdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	price, badPrice := apiMoneyToMoney(request.Body.TicketPrice)
	if badPrice != nil {
		return PutEvent400JSONResponse(badPrice.body), nil
	}

	updated, err := events.UpdateEvent(ctx, a.events, request.EventId, events.Event{
		Title:       request.Body.Title,
		Description: descriptionOrEmpty(request.Body.Description),
		TicketPrice: price,
		StartTime:   request.Body.StartTime,
	})
	if err != nil {
		e := a.eventError(ctx, err, "Failed to update event")
		return PutEventdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return PutEvent200JSONResponse(eventToApiEvent(updated)), nil
}

// requireOrganizer loads the event and checks that the caller created it.
func (a *API) requireOrganizer(ctx context.Context, eventID uuid.UUID) (events.Event, *apiError) {
	user, ok := getUserFromCtx(ctx)
	if !ok {
		return events.Event{}, newApiError(http.StatusUnauthorized, AuthError, "Must be logged in")
	}

	event, err := a.events.GetEvent(ctx, eventID)
	if err != nil {
		return events.Event{}, a.eventError(ctx, err, "Failed to get event")
	}

	if event.OrganizerID != user.ID {
		return events.Event{}, newApiError(http.StatusForbidden, Forbidden, "Only the organizer of the event can do this")
	}

	return event, nil
}

func (a *API) eventError(ctx context.Context, err error, message string) *apiError {
	a.getLoggerOrBaseLogger(ctx).Error(message, "error", err)

	var eventErr *events.Error
	if errors.As(err, &eventErr) {
		switch eventErr.Reason {
		case events.REASON_EVENT_DOES_NOT_EXIST:
			return newApiError(http.StatusNotFound, NotFound, "Event does not exist")
		case events.REASON_INVALID_PRICE:
			return newApiError(http.StatusBadRequest, InvalidPrice, eventErr.Message)
		case events.REASON_TIMEOUT:
			return newApiError(http.StatusGatewayTimeout, Timeout, "Timed out talking to the database")
		}
	}

	return newApiError(http.StatusInternalServerError, InternalError, message)
}

func descriptionOrEmpty(d *string) string {
	if d == nil {
		return ""
	}
	return *d
}

func apiMoneyToMoney(m *Money) (*money.Money, *apiError) {
	if m == nil {
		return nil, nil
	}
	if money.GetCurrency(m.Currency) == nil {
		return nil, newApiError(http.StatusBadRequest, InvalidPrice, fmt.Sprintf("Unknown currency %q", m.Currency))
	}
	if m.Amount < 0 {
		return nil, newApiError(http.StatusBadRequest, InvalidPrice, "Ticket price must not be negative")
	}
	return money.New(m.Amount, m.Currency), nil
}

func moneyToApiMoney(m *money.Money) *Money {
	if m == nil {
		return nil
	}
	return &Money{
		Amount:   m.Amount(),
		Currency: m.Currency().Code,
	}
}

func eventToApiEvent(event events.Event) Event {
	return Event{
		Id:          event.ID,
		Version:     event.Version,
		Title:       event.Title,
		Description: event.Description,
		TicketPrice: moneyToApiMoney(event.TicketPrice),
		OrganizerId: event.OrganizerID,
		StartTime:   event.StartTime,
		CreatedAt:   event.CreatedAt,
		IsFree:      event.IsFree(),
	}
}
