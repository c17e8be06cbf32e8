package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/forms"
)

type PaymentKind int

const (
	// FREE is the marker stored on registrations for events without a ticket price.
	FREE PaymentKind = iota
	PAID
)

func (k PaymentKind) String() string {
	switch k {
	case FREE:
		return "FREE_EVENT"
	case PAID:
		return "PAID"
	default:
		return fmt.Sprintf("PaymentKind(%d)", int(k))
	}
}

// PaymentConfirmation is what the checkout popup reports after a successful payment.
type PaymentConfirmation struct {
	OrderID   string
	PaymentID string
	Signature string
}

type Registration struct {
	ID           uuid.UUID
	Version      int
	EventID      uuid.UUID
	UserID       string
	UserEmail    string
	RegisteredAt time.Time
	FormData     forms.Data
	PaymentKind  PaymentKind
	Payment      *PaymentConfirmation
}

// Validate checks that payment fields agree with the payment kind.
func (r Registration) Validate() error {
	switch r.PaymentKind {
	case FREE:
		if r.Payment != nil {
			return NewInvalidRegistrationError("Registration for a free event must not carry payment fields")
		}
	case PAID:
		if r.Payment == nil || r.Payment.PaymentID == "" {
			return NewInvalidRegistrationError("Registration for a paid event needs a payment confirmation id")
		}
	default:
		return NewInvalidRegistrationError(fmt.Sprintf("Unknown payment kind %d", r.PaymentKind))
	}

	return nil
}

type GetRegistrationsResponse struct {
	Data        []Registration
	Cursor      *string
	HasNextPage bool
}

type Repository interface {
	CreateRegistration(ctx context.Context, registration Registration) error
	GetAllRegistrationsForEvent(ctx context.Context, eventId uuid.UUID, limit int32, cursor *string) (GetRegistrationsResponse, error)
	GetRegistrationsForUser(ctx context.Context, userId string, limit int32, cursor *string) (GetRegistrationsResponse, error)
}
