package events

import (
	"context"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID
	Version     int
	Title       string
	Description string
	// nil or zero means the event is free
	TicketPrice *money.Money
	OrganizerID string
	StartTime   time.Time
	CreatedAt   time.Time
}

func (e Event) IsFree() bool {
	return e.TicketPrice == nil || !e.TicketPrice.IsPositive()
}

type GetEventsResponse struct {
	Data        []Event
	Cursor      *string
	HasNextPage bool
}

type Repository interface {
	GetEvent(ctx context.Context, id uuid.UUID) (Event, error)
	GetEvents(ctx context.Context, limit int32, cursor *string) (GetEventsResponse, error)
	CreateEvent(ctx context.Context, event Event) error
	UpdateEvent(ctx context.Context, event Event) error
}

// UpdateEvent replaces the editable fields of an existing event. Identity,
// organizer and creation time always come from the stored event.
func UpdateEvent(ctx context.Context, repo Repository, id uuid.UUID, updated Event) (Event, error) {
	existing, err := repo.GetEvent(ctx, id)
	if err != nil {
		return Event{}, err
	}

	if updated.TicketPrice != nil && updated.TicketPrice.IsNegative() {
		return Event{}, NewInvalidPriceError(fmt.Sprintf("Ticket price must not be negative, got %s", updated.TicketPrice.Display()))
	}

	existing.Title = updated.Title
	existing.Description = updated.Description
	existing.TicketPrice = updated.TicketPrice
	existing.StartTime = updated.StartTime
	existing.Version++

	err = repo.UpdateEvent(ctx, existing)
	if err != nil {
		return Event{}, err
	}

	return existing, nil
}
