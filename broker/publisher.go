// Package broker publishes registration events to NATS for downstream
// consumers such as organizer dashboards.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/registration"
)

const RegistrationCreatedSubject = "registration.created"

type conn interface {
	Publish(subject string, data []byte) error
}

// RegistrationCreated is the message body on RegistrationCreatedSubject.
type RegistrationCreated struct {
	RegistrationID string         `json:"registrationId"`
	EventID        string         `json:"eventId"`
	EventTitle     string         `json:"eventTitle"`
	UserID         string         `json:"userId"`
	UserEmail      string         `json:"userEmail"`
	RegisteredAt   time.Time      `json:"registeredAt"`
	PaymentKind    string         `json:"paymentKind"`
	PaymentID      string         `json:"paymentId,omitempty"`
	OrderID        string         `json:"orderId,omitempty"`
	FormData       map[string]any `json:"formData"`
}

var _ registration.Notifier = &Publisher{}

type Publisher struct {
	conn    conn
	subject string
}

func NewPublisher(c conn) *Publisher {
	return &Publisher{conn: c, subject: RegistrationCreatedSubject}
}

// Connect dials NATS with reconnects enabled.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("event-registration"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return nc, nil
}

func (p *Publisher) NotifyRegistered(ctx context.Context, reg registration.Registration, event events.Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before publish: %w", err)
	}

	msg := RegistrationCreated{
		RegistrationID: reg.ID.String(),
		EventID:        reg.EventID.String(),
		EventTitle:     event.Title,
		UserID:         reg.UserID,
		UserEmail:      reg.UserEmail,
		RegisteredAt:   reg.RegisteredAt,
		PaymentKind:    reg.PaymentKind.String(),
		FormData:       reg.FormData.ToMap(),
	}
	if reg.Payment != nil {
		msg.PaymentID = reg.Payment.PaymentID
		msg.OrderID = reg.Payment.OrderID
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.Publish(p.subject, data)
}
