package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/optimus-events/event-registration/registration"
	"github.com/optimus-events/event-registration/slices"
)

// GetEventRegistrations lists an event's registrations, newest first. Only the
// organizer may see them.
func (a *API) GetEventRegistrations(ctx context.Context, request GetEventRegistrationsRequestObject) (GetEventRegistrationsResponseObject, error) {
	limit, badLimit := pageLimit(request.Params.Limit)
	if badLimit != nil {
		return GetEventRegistrations400JSONResponse(badLimit.body), nil
	}

	if _, e := a.requireOrganizer(ctx, request.EventId); e != nil {
		return GetEventRegistrationsdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	result, err := a.registrations.GetAllRegistrationsForEvent(ctx, request.EventId, limit, request.Params.Cursor)
	if err != nil {
		e := a.registrationsError(ctx, err)
		return GetEventRegistrationsdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return GetEventRegistrations200JSONResponse(registrationsToApiPage(result)), nil
}

// GetMyRegistrations lists the events the current user registered for.
func (a *API) GetMyRegistrations(ctx context.Context, request GetMyRegistrationsRequestObject) (GetMyRegistrationsResponseObject, error) {
	user, ok := getUserFromCtx(ctx)
	if !ok {
		return GetMyRegistrations401JSONResponse{
			Code:    AuthError,
			Message: "Must be logged in",
		}, nil
	}

	limit, badLimit := pageLimit(request.Params.Limit)
	if badLimit != nil {
		return GetMyRegistrations400JSONResponse(badLimit.body), nil
	}

	result, err := a.registrations.GetRegistrationsForUser(ctx, user.ID, limit, request.Params.Cursor)
	if err != nil {
		e := a.registrationsError(ctx, err)
		return GetMyRegistrationsdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return GetMyRegistrations200JSONResponse(registrationsToApiPage(result)), nil
}

func (a *API) registrationsError(ctx context.Context, err error) *apiError {
	a.getLoggerOrBaseLogger(ctx).Error("Failed to get registrations from the DB", "error", err)

	var regErr *registration.Error
	if errors.As(err, &regErr) {
		switch regErr.Reason {
		case registration.REASON_INVALID_CURSOR:
			return newApiError(http.StatusBadRequest, InvalidCursor, "Passed in cursor is invalid")
		case registration.REASON_TIMEOUT:
			return newApiError(http.StatusGatewayTimeout, Timeout, "Timed out talking to the database")
		}
	}

	return newApiError(http.StatusInternalServerError, InternalError, "Internal server error")
}

func registrationsToApiPage(result registration.GetRegistrationsResponse) RegistrationsPage {
	return RegistrationsPage{
		Data:        slices.Map(result.Data, registrationToApiRegistration),
		Cursor:      result.Cursor,
		HasNextPage: result.HasNextPage,
	}
}

func registrationToApiRegistration(reg registration.Registration) Registration {
	r := Registration{
		Id:           reg.ID,
		EventId:      reg.EventID,
		UserId:       reg.UserID,
		UserEmail:    reg.UserEmail,
		RegisteredAt: reg.RegisteredAt,
		FormData:     reg.FormData.ToMap(),
		PaymentKind:  PaymentKind(reg.PaymentKind.String()),
	}
	if reg.Payment != nil {
		r.Payment = &PaymentConfirmation{
			OrderId:   reg.Payment.OrderID,
			PaymentId: reg.Payment.PaymentID,
		}
	}
	return r
}
