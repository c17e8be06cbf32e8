package registration

import (
	"context"

	"github.com/Rhymond/go-money"
)

type PaymentGateway interface {
	// CreateOrder registers amount with the gateway. amount is in minor units.
	CreateOrder(ctx context.Context, amount *money.Money, receipt string) (Order, error)
	VerifyPayment(ctx context.Context, confirmation PaymentConfirmation) error
	// CheckoutKey is the public key the checkout popup is opened with.
	CheckoutKey() string
}

// CheckoutOptions is everything the client needs to open the gateway popup.
type CheckoutOptions struct {
	Key          string
	OrderID      string
	Amount       int64
	Currency     string
	Name         string
	Description  string
	PrefillEmail string
}
