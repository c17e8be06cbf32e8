package api

import (
	"context"
	"errors"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/registration"
)

const defaultOrderCurrency = money.INR

// PostOrders creates a gateway order for an amount in minor units. The
// checkout flow creates its own orders; this is for clients that drive the
// popup themselves.
func (a *API) PostOrders(ctx context.Context, request PostOrdersRequestObject) (PostOrdersResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if _, ok := getUserFromCtx(ctx); !ok {
		return PostOrders401JSONResponse{
			Code:    AuthError,
			Message: "Must be logged in",
		}, nil
	}
	if request.Body == nil {
		return PostOrders400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	currency := defaultOrderCurrency
	if request.Body.Currency != nil {
		currency = *request.Body.Currency
	}
	if money.GetCurrency(currency) == nil {
		return PostOrders400JSONResponse{
			Code:    InputValidationError,
			Message: "Unknown currency",
		}, nil
	}

	receipt := uuid.NewString()
	if request.Body.Receipt != nil {
		receipt = *request.Body.Receipt
	}

	if a.gateway == nil {
		return PostOrders500JSONResponse{
			Code:    GatewayConfigError,
			Message: "Payment gateway is not configured",
		}, nil
	}

	order, err := a.gateway.CreateOrder(ctx, money.New(request.Body.Amount, currency), receipt)
	if err != nil {
		var regErr *registration.Error
		if errors.As(err, &regErr) {
			switch regErr.Reason {
			case registration.REASON_GATEWAY_CONFIG_ERROR:
				logger.Error("Payment gateway is misconfigured", "error", err)
				return PostOrders500JSONResponse{
					Code:    GatewayConfigError,
					Message: regErr.Message,
				}, nil
			case registration.REASON_ORDER_CREATION_FAILED:
				logger.Error("Payment gateway rejected the order", "error", err)
				return PostOrders502JSONResponse{
					Code:    OrderCreationFailed,
					Message: regErr.Message,
				}, nil
			}
		}

		logger.Error("Failed to create order", "error", err)
		return PostOrders500JSONResponse{
			Code:    InternalError,
			Message: "Failed to create order",
		}, nil
	}

	return PostOrders200JSONResponse{
		OrderId:  order.ID,
		Amount:   order.Amount.Amount(),
		Currency: order.Amount.Currency().Code,
	}, nil
}
