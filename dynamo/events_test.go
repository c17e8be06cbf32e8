package dynamo

import (
	"context"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(start time.Time) events.Event {
	return events.Event{
		ID:          uuid.New(),
		Version:     1,
		Title:       "Monsoon Hackathon",
		Description: "48 hours of building",
		TicketPrice: money.New(49900, money.INR),
		OrganizerID: "organizer-1",
		StartTime:   start.UTC().Truncate(time.Second),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		resetTable(ctx)
		event := testEvent(time.Now())

		require.NoError(t, db.CreateEvent(ctx, event))

		got, err := db.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, event.Title, got.Title)
		assert.Equal(t, event.Description, got.Description)
		assert.Equal(t, event.OrganizerID, got.OrganizerID)
		assert.Equal(t, int64(49900), got.TicketPrice.Amount())
		assert.Equal(t, "INR", got.TicketPrice.Currency().Code)
		assert.WithinDuration(t, event.StartTime, got.StartTime, time.Second)
	})

	t.Run("free event has no price", func(t *testing.T) {
		resetTable(ctx)
		event := testEvent(time.Now())
		event.TicketPrice = nil

		require.NoError(t, db.CreateEvent(ctx, event))

		got, err := db.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Nil(t, got.TicketPrice)
		assert.True(t, got.IsFree())
	})

	t.Run("already exists", func(t *testing.T) {
		resetTable(ctx)
		event := testEvent(time.Now())

		require.NoError(t, db.CreateEvent(ctx, event))

		err := db.CreateEvent(ctx, event)
		var eventError *events.Error
		require.ErrorAs(t, err, &eventError)
		assert.Equal(t, events.REASON_EVENT_ALREADY_EXISTS, eventError.Reason)
	})
}

func TestGetEvent(t *testing.T) {
	ctx := context.Background()
	resetTable(ctx)

	_, err := db.GetEvent(ctx, uuid.New())
	var eventError *events.Error
	require.ErrorAs(t, err, &eventError)
	assert.Equal(t, events.REASON_EVENT_DOES_NOT_EXIST, eventError.Reason)
}

func TestGetEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("pages newest start time first", func(t *testing.T) {
		resetTable(ctx)
		base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
		created := []events.Event{}
		for i := range 5 {
			event := testEvent(base.Add(time.Duration(i) * 24 * time.Hour))
			require.NoError(t, db.CreateEvent(ctx, event))
			created = append(created, event)
		}

		first, err := db.GetEvents(ctx, 2, nil)
		require.NoError(t, err)
		require.Len(t, first.Data, 2)
		assert.True(t, first.HasNextPage)
		require.NotNil(t, first.Cursor)
		assert.Equal(t, created[4].ID, first.Data[0].ID)
		assert.Equal(t, created[3].ID, first.Data[1].ID)

		second, err := db.GetEvents(ctx, 2, first.Cursor)
		require.NoError(t, err)
		require.Len(t, second.Data, 2)
		assert.Equal(t, created[2].ID, second.Data[0].ID)

		third, err := db.GetEvents(ctx, 2, second.Cursor)
		require.NoError(t, err)
		require.Len(t, third.Data, 1)
		assert.False(t, third.HasNextPage)
		assert.Nil(t, third.Cursor)
		assert.Equal(t, created[0].ID, third.Data[0].ID)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		resetTable(ctx)

		_, err := db.GetEvents(ctx, 2, ptr.String("garbage"))
		var eventError *events.Error
		require.ErrorAs(t, err, &eventError)
		assert.Equal(t, events.REASON_INVALID_CURSOR, eventError.Reason)
	})
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("update with next version", func(t *testing.T) {
		resetTable(ctx)
		event := testEvent(time.Now())
		require.NoError(t, db.CreateEvent(ctx, event))

		event.Version = 2
		event.Title = "Monsoon Hackathon 2"
		event.TicketPrice = money.New(0, money.INR)
		require.NoError(t, db.UpdateEvent(ctx, event))

		got, err := db.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Version)
		assert.Equal(t, "Monsoon Hackathon 2", got.Title)
		assert.True(t, got.IsFree())
	})

	t.Run("stale version", func(t *testing.T) {
		resetTable(ctx)
		event := testEvent(time.Now())
		require.NoError(t, db.CreateEvent(ctx, event))

		event.Version = 3
		err := db.UpdateEvent(ctx, event)
		var eventError *events.Error
		require.ErrorAs(t, err, &eventError)
		assert.Equal(t, events.REASON_EVENT_DOES_NOT_EXIST, eventError.Reason)
	})
}
