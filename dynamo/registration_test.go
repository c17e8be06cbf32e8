package dynamo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/forms"
	"github.com/optimus-events/event-registration/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistration(eventID uuid.UUID, userID string, at time.Time) registration.Registration {
	return registration.Registration{
		ID:           uuid.New(),
		Version:      1,
		EventID:      eventID,
		UserID:       userID,
		UserEmail:    userID + "@example.com",
		RegisteredAt: at.UTC(),
		FormData: forms.Data{
			"full_name": forms.TextValue("Asha Rao"),
			"age":       forms.NumberValue(27),
			"terms":     forms.BoolValue(true),
			"dob":       forms.DateValue(time.Date(1999, 4, 12, 0, 0, 0, 0, time.UTC)),
		},
		PaymentKind: registration.FREE,
	}
}

func TestCreateRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("paid registration round trips", func(t *testing.T) {
		resetTable(ctx)
		reg := testRegistration(uuid.New(), "user-1", time.Now())
		reg.PaymentKind = registration.PAID
		reg.Payment = &registration.PaymentConfirmation{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}

		require.NoError(t, db.CreateRegistration(ctx, reg))

		resp, err := db.GetAllRegistrationsForEvent(ctx, reg.EventID, 10, nil)
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		got := resp.Data[0]
		assert.Equal(t, reg.ID, got.ID)
		assert.Equal(t, registration.PAID, got.PaymentKind)
		assert.Equal(t, reg.Payment, got.Payment)
		assert.Equal(t, reg.FormData, got.FormData)
		assert.WithinDuration(t, reg.RegisteredAt, got.RegisteredAt, time.Millisecond)
	})

	t.Run("free registration has no payment", func(t *testing.T) {
		resetTable(ctx)
		reg := testRegistration(uuid.New(), "user-1", time.Now())

		require.NoError(t, db.CreateRegistration(ctx, reg))

		resp, err := db.GetRegistrationsForUser(ctx, "user-1", 10, nil)
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, registration.FREE, resp.Data[0].PaymentKind)
		assert.Nil(t, resp.Data[0].Payment)
	})

	t.Run("paid without payment is rejected", func(t *testing.T) {
		resetTable(ctx)
		reg := testRegistration(uuid.New(), "user-1", time.Now())
		reg.PaymentKind = registration.PAID

		err := db.CreateRegistration(ctx, reg)
		var regErr *registration.Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, registration.REASON_INVALID_REGISTRATION, regErr.Reason)
	})

	t.Run("same registration twice", func(t *testing.T) {
		resetTable(ctx)
		reg := testRegistration(uuid.New(), "user-1", time.Now())

		require.NoError(t, db.CreateRegistration(ctx, reg))

		err := db.CreateRegistration(ctx, reg)
		var regErr *registration.Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, registration.REASON_REGISTRATION_ALREADY_EXISTS, regErr.Reason)
	})
}

func TestListRegistrations(t *testing.T) {
	ctx := context.Background()
	resetTable(ctx)

	eventA := uuid.New()
	eventB := uuid.New()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	var forA []registration.Registration
	for i := range 3 {
		reg := testRegistration(eventA, "user-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, db.CreateRegistration(ctx, reg))
		forA = append(forA, reg)
	}
	other := testRegistration(eventB, "user-a", base.Add(time.Hour))
	require.NoError(t, db.CreateRegistration(ctx, other))

	t.Run("per event newest first with paging", func(t *testing.T) {
		first, err := db.GetAllRegistrationsForEvent(ctx, eventA, 2, nil)
		require.NoError(t, err)
		require.Len(t, first.Data, 2)
		assert.True(t, first.HasNextPage)
		assert.Equal(t, forA[2].ID, first.Data[0].ID)
		assert.Equal(t, forA[1].ID, first.Data[1].ID)

		second, err := db.GetAllRegistrationsForEvent(ctx, eventA, 2, first.Cursor)
		require.NoError(t, err)
		require.Len(t, second.Data, 1)
		assert.False(t, second.HasNextPage)
		assert.Equal(t, forA[0].ID, second.Data[0].ID)
	})

	t.Run("per user across events", func(t *testing.T) {
		resp, err := db.GetRegistrationsForUser(ctx, "user-a", 10, nil)
		require.NoError(t, err)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, other.ID, resp.Data[0].ID)
		assert.Equal(t, forA[0].ID, resp.Data[1].ID)
	})

	t.Run("user with no registrations", func(t *testing.T) {
		resp, err := db.GetRegistrationsForUser(ctx, "nobody", 10, nil)
		require.NoError(t, err)
		assert.Empty(t, resp.Data)
		assert.False(t, resp.HasNextPage)
	})
}
