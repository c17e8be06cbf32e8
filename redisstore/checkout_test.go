package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/forms"
	"github.com/optimus-events/event-registration/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupStore() (*CheckoutStore, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()
	store := NewCheckoutStore(client)
	store.now = func() time.Time { return testNow }
	return store, mock
}

func testCheckout() registration.Checkout {
	return registration.Checkout{
		ID:         uuid.New(),
		Version:    3,
		EventID:    uuid.New(),
		EventTitle: "Monsoon Hackathon",
		UserID:     "user-1",
		UserEmail:  "asha@example.com",
		State:      registration.PAYING,
		Held: forms.Data{
			"full_name": forms.TextValue("Asha Rao"),
			"age":       forms.NumberValue(27),
			"terms":     forms.BoolValue(true),
			"dob":       forms.DateValue(time.Date(1999, 4, 12, 0, 0, 0, 0, time.UTC)),
		},
		Order:     &registration.Order{ID: "order_1", Amount: money.New(49900, money.INR), Receipt: "r1"},
		CreatedAt: testNow,
		ExpiresAt: testNow.Add(30 * time.Minute),
	}
}

func TestPutCheckout(t *testing.T) {
	ttl := (30*time.Minute + registration.RetentionAfterExpiry).Milliseconds()

	t.Run("writes with ttl past expiry", func(t *testing.T) {
		store, mock := setupStore()
		defer mock.ClearExpect()
		c := testCheckout()

		payload, err := json.Marshal(toRedis(c))
		require.NoError(t, err)
		mock.ExpectEvalSha(putCheckoutScript.Hash(), []string{checkoutKey(c.ID)}, string(payload), c.Version, ttl).SetVal(int64(1))

		require.NoError(t, store.PutCheckout(context.Background(), c))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		store, mock := setupStore()
		defer mock.ClearExpect()
		c := testCheckout()

		payload, err := json.Marshal(toRedis(c))
		require.NoError(t, err)
		mock.ExpectEvalSha(putCheckoutScript.Hash(), []string{checkoutKey(c.ID)}, string(payload), c.Version, ttl).SetVal(int64(0))

		err = store.PutCheckout(context.Background(), c)
		var regErr *registration.Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, registration.REASON_CHECKOUT_VERSION_CONFLICT, regErr.Reason)
	})

	t.Run("redis failure", func(t *testing.T) {
		store, mock := setupStore()
		defer mock.ClearExpect()
		c := testCheckout()

		payload, err := json.Marshal(toRedis(c))
		require.NoError(t, err)
		mock.ExpectEvalSha(putCheckoutScript.Hash(), []string{checkoutKey(c.ID)}, string(payload), c.Version, ttl).SetErr(errors.New("connection refused"))

		err = store.PutCheckout(context.Background(), c)
		var regErr *registration.Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, registration.REASON_FAILED_TO_WRITE, regErr.Reason)
	})
}

func TestGetCheckout(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		store, mock := setupStore()
		defer mock.ClearExpect()
		c := testCheckout()
		c.Confirmation = &registration.PaymentConfirmation{OrderID: "order_1", PaymentID: "pay_1"}
		c.Failure = &registration.Failure{Reason: registration.REASON_PERSISTENCE_AFTER_PAYMENT, Message: "pay_1"}

		payload, err := json.Marshal(toRedis(c))
		require.NoError(t, err)
		mock.ExpectGet(checkoutKey(c.ID)).SetVal(string(payload))

		got, err := store.GetCheckout(context.Background(), c.ID)
		require.NoError(t, err)
		assert.Equal(t, c, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := setupStore()
		defer mock.ClearExpect()
		id := uuid.New()
		mock.ExpectGet(checkoutKey(id)).RedisNil()

		_, err := store.GetCheckout(context.Background(), id)
		var regErr *registration.Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, registration.REASON_CHECKOUT_DOES_NOT_EXIST, regErr.Reason)
	})

	t.Run("redis failure", func(t *testing.T) {
		store, mock := setupStore()
		defer mock.ClearExpect()
		id := uuid.New()
		mock.ExpectGet(checkoutKey(id)).SetErr(errors.New("connection refused"))

		_, err := store.GetCheckout(context.Background(), id)
		var regErr *registration.Error
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, registration.REASON_FAILED_TO_FETCH, regErr.Reason)
	})
}
