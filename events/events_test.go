package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type mockRepository struct {
	GetEventFunc    func(ctx context.Context, id uuid.UUID) (Event, error)
	GetEventsFunc   func(ctx context.Context, limit int32, cursor *string) (GetEventsResponse, error)
	CreateEventFunc func(ctx context.Context, event Event) error
	UpdateEventFunc func(ctx context.Context, event Event) error
}

func (m *mockRepository) GetEvent(ctx context.Context, id uuid.UUID) (Event, error) {
	return m.GetEventFunc(ctx, id)
}

func (m *mockRepository) GetEvents(ctx context.Context, limit int32, cursor *string) (GetEventsResponse, error) {
	return m.GetEventsFunc(ctx, limit, cursor)
}

func (m *mockRepository) CreateEvent(ctx context.Context, event Event) error {
	return m.CreateEventFunc(ctx, event)
}

func (m *mockRepository) UpdateEvent(ctx context.Context, event Event) error {
	return m.UpdateEventFunc(ctx, event)
}

func TestIsFree(t *testing.T) {
	assert.True(t, Event{}.IsFree())
	assert.True(t, Event{TicketPrice: money.New(0, money.INR)}.IsFree())
	assert.False(t, Event{TicketPrice: money.New(50000, money.INR)}.IsFree())
}

func TestUpdateEvent(t *testing.T) {
	eventID := uuid.New()
	createdAt := time.Now().Add(-48 * time.Hour)
	startTime := time.Now().Add(24 * time.Hour)

	t.Run("successful update", func(t *testing.T) {
		existingEvent := Event{
			ID:          eventID,
			Version:     1,
			Title:       "Original Event",
			OrganizerID: "organizer-1",
			CreatedAt:   createdAt,
		}

		updatedEventData := Event{
			Title:       "Updated Event Title",
			Description: "Now with snacks",
			TicketPrice: money.New(25000, money.INR),
			StartTime:   startTime,
			OrganizerID: "someone-else",
		}

		repo := &mockRepository{
			GetEventFunc: func(ctx context.Context, id uuid.UUID) (Event, error) {
				assert.Equal(t, eventID, id)
				return existingEvent, nil
			},
			UpdateEventFunc: func(ctx context.Context, event Event) error {
				assert.Equal(t, eventID, event.ID)
				assert.Equal(t, 2, event.Version)
				assert.Equal(t, "Updated Event Title", event.Title)
				assert.Equal(t, "Now with snacks", event.Description)
				assert.Equal(t, int64(25000), event.TicketPrice.Amount())
				assert.Equal(t, startTime, event.StartTime)
				// Verify the organizer and creation time are preserved
				assert.Equal(t, "organizer-1", event.OrganizerID)
				assert.Equal(t, createdAt, event.CreatedAt)
				return nil
			},
		}

		result, err := UpdateEvent(context.Background(), repo, eventID, updatedEventData)

		assert.NoError(t, err)
		assert.Equal(t, eventID, result.ID)
		assert.Equal(t, 2, result.Version)
		assert.Equal(t, "organizer-1", result.OrganizerID)
	})

	t.Run("event does not exist", func(t *testing.T) {
		repo := &mockRepository{
			GetEventFunc: func(ctx context.Context, id uuid.UUID) (Event, error) {
				return Event{}, &Error{Reason: REASON_EVENT_DOES_NOT_EXIST}
			},
		}

		result, err := UpdateEvent(context.Background(), repo, eventID, Event{Title: "Test Event"})

		assert.Error(t, err)
		assert.Equal(t, Event{}, result)
		var eventErr *Error
		assert.True(t, errors.As(err, &eventErr))
		assert.Equal(t, REASON_EVENT_DOES_NOT_EXIST, eventErr.Reason)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		repo := &mockRepository{
			GetEventFunc: func(ctx context.Context, id uuid.UUID) (Event, error) {
				return Event{ID: eventID, Version: 1}, nil
			},
			UpdateEventFunc: func(ctx context.Context, event Event) error {
				t.Fatal("UpdateEvent should not be called")
				return nil
			},
		}

		_, err := UpdateEvent(context.Background(), repo, eventID, Event{TicketPrice: money.New(-100, money.INR)})

		var eventErr *Error
		assert.True(t, errors.As(err, &eventErr))
		assert.Equal(t, REASON_INVALID_PRICE, eventErr.Reason)
	})

	t.Run("UpdateEvent repository error", func(t *testing.T) {
		repo := &mockRepository{
			GetEventFunc: func(ctx context.Context, id uuid.UUID) (Event, error) {
				return Event{ID: eventID, Version: 1}, nil
			},
			UpdateEventFunc: func(ctx context.Context, event Event) error {
				return errors.New("update failed")
			},
		}

		result, err := UpdateEvent(context.Background(), repo, eventID, Event{Title: "Updated Event"})

		assert.Error(t, err)
		assert.Equal(t, Event{}, result)
		assert.Contains(t, err.Error(), "update failed")
	})

	t.Run("version increment", func(t *testing.T) {
		var capturedEvent Event
		repo := &mockRepository{
			GetEventFunc: func(ctx context.Context, id uuid.UUID) (Event, error) {
				return Event{ID: eventID, Version: 42}, nil
			},
			UpdateEventFunc: func(ctx context.Context, event Event) error {
				capturedEvent = event
				return nil
			},
		}

		result, err := UpdateEvent(context.Background(), repo, eventID, Event{Title: "Updated Event"})

		assert.NoError(t, err)
		assert.Equal(t, 43, result.Version)
		assert.Equal(t, 43, capturedEvent.Version)
	})
}
