package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/optimus-events/event-registration/forms"
	"github.com/optimus-events/event-registration/ptr"
	"github.com/optimus-events/event-registration/registration"
	"github.com/optimus-events/event-registration/slices"
)

type reasonMapping struct {
	status int
	code   ErrorCode
}

var registrationReasons = map[registration.ErrorReason]reasonMapping{
	registration.REASON_UNAUTHENTICATED:             {http.StatusUnauthorized, AuthError},
	registration.REASON_EVENT_NOT_FOUND:             {http.StatusNotFound, NotFound},
	registration.REASON_CHECKOUT_DOES_NOT_EXIST:     {http.StatusNotFound, NotFound},
	registration.REASON_VALIDATION_ERROR:            {http.StatusBadRequest, FormValidationError},
	registration.REASON_INVALID_STATE:               {http.StatusConflict, InvalidState},
	registration.REASON_CHECKOUT_VERSION_CONFLICT:   {http.StatusConflict, Conflict},
	registration.REASON_ORDER_MISMATCH:              {http.StatusBadRequest, OrderMismatch},
	registration.REASON_PAYMENT_VERIFICATION_FAILED: {http.StatusBadRequest, PaymentVerificationFailed},
	registration.REASON_GATEWAY_CONFIG_ERROR:        {http.StatusInternalServerError, GatewayConfigError},
	registration.REASON_ORDER_CREATION_FAILED:       {http.StatusBadGateway, OrderCreationFailed},
	registration.REASON_PERSISTENCE_AFTER_PAYMENT:   {http.StatusInternalServerError, PersistenceAfterPayment},
	registration.REASON_TIMEOUT:                     {http.StatusGatewayTimeout, Timeout},
}

func registrationReasonToCode(reason registration.ErrorReason) reasonMapping {
	if m, ok := registrationReasons[reason]; ok {
		return m
	}
	return reasonMapping{http.StatusInternalServerError, InternalError}
}

func (a *API) workflowError(ctx context.Context, err error) *apiError {
	logger := a.getLoggerOrBaseLogger(ctx)

	var regErr *registration.Error
	if !errors.As(err, &regErr) {
		logger.Error("Checkout step failed", "error", err)
		return newApiError(http.StatusInternalServerError, InternalError, "Internal server error")
	}

	m := registrationReasonToCode(regErr.Reason)
	if m.status >= http.StatusInternalServerError {
		logger.Error("Checkout step failed", "error", err)
	} else {
		logger.Info("Checkout step rejected", "error", err)
	}

	e := newApiError(m.status, m.code, regErr.Message)
	if m.code == InternalError {
		e.body.Message = "Internal server error"
	}

	var vErr *forms.ValidationError
	if errors.As(err, &vErr) {
		if len(vErr.Missing) > 0 {
			missing := vErr.Missing
			e.body.Missing = &missing
		}
		if len(vErr.Invalid) > 0 {
			invalid := slices.Map(vErr.Invalid, func(fe forms.FieldError) FieldError {
				return FieldError{Key: fe.Key, Reason: fe.Reason}
			})
			e.body.Invalid = &invalid
		}
	}

	return e
}

// PostCheckout starts registering the current user for an event.
func (a *API) PostCheckout(ctx context.Context, request PostCheckoutRequestObject) (PostCheckoutResponseObject, error) {
	c, fields, err := a.workflow.Begin(ctx, request.EventId)
	if err != nil {
		e := a.workflowError(ctx, err)
		return PostCheckoutdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return PostCheckout201JSONResponse{
		Checkout: checkoutToApiCheckout(c),
		Controls: slices.Map(forms.Render(fields), controlToApiControl),
	}, nil
}

func (a *API) GetCheckout(ctx context.Context, request GetCheckoutRequestObject) (GetCheckoutResponseObject, error) {
	c, err := a.workflow.Get(ctx, request.CheckoutId)
	if err != nil {
		e := a.workflowError(ctx, err)
		return GetCheckoutdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return GetCheckout200JSONResponse(checkoutToApiCheckout(c)), nil
}

// PostCheckoutSubmit validates the answers. A missing body or formData
// resubmits what the checkout already holds.
func (a *API) PostCheckoutSubmit(ctx context.Context, request PostCheckoutSubmitRequestObject) (PostCheckoutSubmitResponseObject, error) {
	var raw map[string]any
	if request.Body != nil && request.Body.FormData != nil {
		raw = *request.Body.FormData
	}

	c, err := a.workflow.Submit(ctx, request.CheckoutId, raw)
	if err != nil {
		e := a.workflowError(ctx, err)
		return PostCheckoutSubmitdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return PostCheckoutSubmit200JSONResponse(checkoutToApiCheckout(c)), nil
}

func (a *API) PostCheckoutOpen(ctx context.Context, request PostCheckoutOpenRequestObject) (PostCheckoutOpenResponseObject, error) {
	c, opts, err := a.workflow.OpenCheckout(ctx, request.CheckoutId)
	if err != nil {
		e := a.workflowError(ctx, err)
		return PostCheckoutOpendefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	prefill := CheckoutPrefill{}
	if opts.PrefillEmail != "" {
		prefill.Email = ptr.String(opts.PrefillEmail)
	}

	return PostCheckoutOpen200JSONResponse{
		Checkout: checkoutToApiCheckout(c),
		Options: CheckoutOptions{
			Key:         opts.Key,
			OrderId:     opts.OrderID,
			Amount:      opts.Amount,
			Currency:    opts.Currency,
			Name:        opts.Name,
			Description: opts.Description,
			Prefill:     prefill,
		},
	}, nil
}

func (a *API) PostCheckoutDismiss(ctx context.Context, request PostCheckoutDismissRequestObject) (PostCheckoutDismissResponseObject, error) {
	c, err := a.workflow.Dismiss(ctx, request.CheckoutId)
	if err != nil {
		e := a.workflowError(ctx, err)
		return PostCheckoutDismissdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return PostCheckoutDismiss200JSONResponse(checkoutToApiCheckout(c)), nil
}

func (a *API) PostCheckoutConfirm(ctx context.Context, request PostCheckoutConfirmRequestObject) (PostCheckoutConfirmResponseObject, error) {
	if request.Body == nil {
		return PostCheckoutConfirmdefaultJSONResponse{
			Body: Error{
				Code:    EmptyBody,
				Message: "Must specify a JSON body in the request",
			},
			StatusCode: http.StatusBadRequest,
		}, nil
	}

	confirmation := registration.PaymentConfirmation{
		OrderID:   request.Body.OrderId,
		PaymentID: request.Body.PaymentId,
	}
	if request.Body.Signature != nil {
		confirmation.Signature = *request.Body.Signature
	}

	c, err := a.workflow.ConfirmPayment(ctx, request.CheckoutId, confirmation)
	if err != nil {
		e := a.workflowError(ctx, err)
		return PostCheckoutConfirmdefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return PostCheckoutConfirm200JSONResponse(checkoutToApiCheckout(c)), nil
}

func (a *API) PostCheckoutRetry(ctx context.Context, request PostCheckoutRetryRequestObject) (PostCheckoutRetryResponseObject, error) {
	c, err := a.workflow.RetryFinalize(ctx, request.CheckoutId)
	if err != nil {
		e := a.workflowError(ctx, err)
		return PostCheckoutRetrydefaultJSONResponse{Body: e.body, StatusCode: e.status}, nil
	}

	return PostCheckoutRetry200JSONResponse(checkoutToApiCheckout(c)), nil
}

func checkoutToApiCheckout(c registration.Checkout) Checkout {
	out := Checkout{
		Id:             c.ID,
		EventId:        c.EventID,
		EventTitle:     c.EventTitle,
		State:          CheckoutState(c.State.String()),
		RegistrationId: c.RegistrationID,
		ExpiresAt:      c.ExpiresAt,
	}
	if len(c.Held) > 0 {
		held := c.Held.ToMap()
		out.HeldData = &held
	}
	if c.Order != nil {
		out.Order = &Order{
			Id:      c.Order.ID,
			Receipt: c.Order.Receipt,
		}
		if amount := moneyToApiMoney(c.Order.Amount); amount != nil {
			out.Order.Amount = *amount
		}
	}
	if c.Confirmation != nil {
		out.PaymentId = &c.Confirmation.PaymentID
	}
	if c.Failure != nil {
		out.Failure = &Failure{
			Code:    registrationReasonToCode(c.Failure.Reason).code,
			Message: c.Failure.Message,
		}
	}
	return out
}
