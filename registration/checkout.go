package registration

import (
	"context"
	"slices"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/forms"
)

//go:generate go tool stringer -type=State -linecomment

type State int

const (
	IDLE             State = iota // idle
	COLLECTING                    // collecting
	PAYMENT_REQUIRED              // payment_required
	PAYING                        // paying
	FINALIZING                    // finalizing
	SUCCESS                       // success
	ERROR                         // error
)

var allowedTransitions = map[State][]State{
	IDLE:             {COLLECTING},
	COLLECTING:       {FINALIZING, PAYMENT_REQUIRED, ERROR},
	PAYMENT_REQUIRED: {PAYING, PAYMENT_REQUIRED, FINALIZING, ERROR},
	PAYING:           {PAYMENT_REQUIRED, FINALIZING, ERROR},
	FINALIZING:       {SUCCESS, ERROR},
	ERROR:            {PAYMENT_REQUIRED, FINALIZING, ERROR},
	SUCCESS:          {},
}

type Order struct {
	ID      string
	Amount  *money.Money
	Receipt string
}

// Failure is the user-visible outcome of the last failed step.
type Failure struct {
	Reason  ErrorReason
	Message string
}

// Checkout is the state of one registration attempt. It is kept in a
// single-slot holder between the steps of the flow; resubmitting overwrites
// Held instead of queueing another submission.
type Checkout struct {
	ID             uuid.UUID
	Version        int
	EventID        uuid.UUID
	EventTitle     string
	UserID         string
	UserEmail      string
	State          State
	Held           forms.Data
	Order          *Order
	Confirmation   *PaymentConfirmation
	RegistrationID *uuid.UUID
	Failure        *Failure
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

func (c *Checkout) canTransition(to State) bool {
	return slices.Contains(allowedTransitions[c.State], to)
}

// Recoverable reports whether a new submission may be made from the error state.
func (c *Checkout) Recoverable() bool {
	if c.State != ERROR {
		return false
	}
	return c.Failure == nil || c.Failure.Reason != REASON_PERSISTENCE_AFTER_PAYMENT
}

type CheckoutStore interface {
	GetCheckout(ctx context.Context, id uuid.UUID) (Checkout, error)
	// PutCheckout overwrites the stored checkout. Version is the version being
	// written; 1 for a new checkout.
	PutCheckout(ctx context.Context, checkout Checkout) error
}

// SaveCheckout bumps the version and writes the checkout.
func SaveCheckout(ctx context.Context, store CheckoutStore, checkout *Checkout) error {
	checkout.Version++
	err := store.PutCheckout(ctx, *checkout)
	if err != nil {
		checkout.Version--
		return err
	}
	return nil
}

// RetentionAfterExpiry is how long stores keep a checkout past ExpiresAt so
// completed and paid checkouts can still be looked up.
const RetentionAfterExpiry = 24 * time.Hour

// LoadCheckout fetches a checkout, treating expired ones as missing.
func LoadCheckout(ctx context.Context, store CheckoutStore, id uuid.UUID, now time.Time) (Checkout, error) {
	c, err := store.GetCheckout(ctx, id)
	if err != nil {
		return Checkout{}, err
	}

	if !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt) && c.expires() {
		return Checkout{}, NewCheckoutExpiredError(c.ExpiresAt)
	}

	return c, nil
}

// expires reports whether the TTL applies. Once an order is out the user may
// be paying for it, so the checkout has to stay reachable for the confirmation.
func (c *Checkout) expires() bool {
	switch {
	case c.State == SUCCESS, c.Confirmation != nil:
		return false
	case c.State == PAYING, c.State == PAYMENT_REQUIRED && c.Order != nil:
		return false
	}
	return true
}
