// Package razorpay adapts the Razorpay orders API to registration.PaymentGateway.
package razorpay

import (
	"context"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/optimus-events/event-registration/registration"
	rzp "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const MissingKeysMessage = "Server Configuration Issue: Missing Razorpay Keys"

var tracer = otel.Tracer("github.com/optimus-events/event-registration/razorpay")

type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

var _ registration.PaymentGateway = &Gateway{}

type Gateway struct {
	keyID     string
	keySecret string
	orders    orderCreator
}

// NewGateway builds a gateway for the given key pair. Missing keys are not an
// error here; every order attempt reports the configuration problem instead.
func NewGateway(keyID, keySecret string) *Gateway {
	g := &Gateway{
		keyID:     keyID,
		keySecret: keySecret,
	}
	if g.configured() {
		g.orders = rzp.NewClient(keyID, keySecret).Order
	}

	return g
}

func (g *Gateway) configured() bool {
	return g.keyID != "" && g.keySecret != ""
}

func (g *Gateway) CheckoutKey() string {
	return g.keyID
}

func (g *Gateway) CreateOrder(ctx context.Context, amount *money.Money, receipt string) (registration.Order, error) {
	_, span := tracer.Start(ctx, "razorpay.CreateOrder")
	defer span.End()

	if !g.configured() {
		span.SetStatus(codes.Error, MissingKeysMessage)
		return registration.Order{}, registration.NewGatewayConfigError(MissingKeysMessage)
	}

	if amount == nil || !amount.IsPositive() {
		return registration.Order{}, registration.NewOrderCreationError("Order amount must be positive", nil)
	}

	span.SetAttributes(
		attribute.Int64("order.amount", amount.Amount()),
		attribute.String("order.currency", amount.Currency().Code),
	)

	body, err := g.orders.Create(map[string]interface{}{
		"amount":   amount.Amount(),
		"currency": amount.Currency().Code,
		"receipt":  receipt,
	}, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return registration.Order{}, registration.NewOrderCreationError("Razorpay rejected the order", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return registration.Order{}, registration.NewOrderCreationError(fmt.Sprintf("Razorpay order response has no id: %v", body), nil)
	}

	return registration.Order{
		ID:      id,
		Amount:  amount,
		Receipt: receipt,
	}, nil
}

func (g *Gateway) VerifyPayment(ctx context.Context, confirmation registration.PaymentConfirmation) error {
	if !g.configured() {
		return registration.NewGatewayConfigError(MissingKeysMessage)
	}

	ok := utils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   confirmation.OrderID,
		"razorpay_payment_id": confirmation.PaymentID,
	}, confirmation.Signature, g.keySecret)
	if !ok {
		return registration.NewPaymentVerificationError(fmt.Sprintf("Signature does not match payment %s", confirmation.PaymentID), nil)
	}

	return nil
}
