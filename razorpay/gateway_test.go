package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/optimus-events/event-registration/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOrders struct {
	CreateFunc func(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

func (m *mockOrders) Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	return m.CreateFunc(data, extraHeaders)
}

func requireReason(t *testing.T, err error, reason registration.ErrorReason) *registration.Error {
	t.Helper()
	var regErr *registration.Error
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, reason, regErr.Reason)
	return regErr
}

func TestCreateOrder(t *testing.T) {
	t.Run("missing keys", func(t *testing.T) {
		for _, g := range []*Gateway{NewGateway("", ""), NewGateway("rzp_test_key", ""), NewGateway("", "secret")} {
			_, err := g.CreateOrder(context.Background(), money.New(49900, money.INR), "receipt")
			regErr := requireReason(t, err, registration.REASON_GATEWAY_CONFIG_ERROR)
			assert.Equal(t, "Server Configuration Issue: Missing Razorpay Keys", regErr.Message)
		}
	})

	t.Run("sends minor units", func(t *testing.T) {
		g := NewGateway("rzp_test_key", "secret")
		var sent map[string]interface{}
		g.orders = &mockOrders{
			CreateFunc: func(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
				sent = data
				return map[string]interface{}{"id": "order_abc", "amount": float64(49900)}, nil
			},
		}

		order, err := g.CreateOrder(context.Background(), money.New(49900, money.INR), "chk_1")
		require.NoError(t, err)

		assert.Equal(t, "order_abc", order.ID)
		assert.Equal(t, "chk_1", order.Receipt)
		assert.Equal(t, int64(49900), order.Amount.Amount())
		assert.Equal(t, map[string]interface{}{"amount": int64(49900), "currency": "INR", "receipt": "chk_1"}, sent)
	})

	t.Run("gateway error", func(t *testing.T) {
		g := NewGateway("rzp_test_key", "secret")
		g.orders = &mockOrders{
			CreateFunc: func(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
				return nil, errors.New("BAD_REQUEST_ERROR")
			},
		}

		_, err := g.CreateOrder(context.Background(), money.New(100, money.INR), "chk_1")
		requireReason(t, err, registration.REASON_ORDER_CREATION_FAILED)
	})

	t.Run("response without id", func(t *testing.T) {
		g := NewGateway("rzp_test_key", "secret")
		g.orders = &mockOrders{
			CreateFunc: func(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
				return map[string]interface{}{"status": "created"}, nil
			},
		}

		_, err := g.CreateOrder(context.Background(), money.New(100, money.INR), "chk_1")
		requireReason(t, err, registration.REASON_ORDER_CREATION_FAILED)
	})

	t.Run("zero amount", func(t *testing.T) {
		g := NewGateway("rzp_test_key", "secret")

		_, err := g.CreateOrder(context.Background(), money.New(0, money.INR), "chk_1")
		requireReason(t, err, registration.REASON_ORDER_CREATION_FAILED)
	})
}

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPayment(t *testing.T) {
	g := NewGateway("rzp_test_key", "secret")

	t.Run("valid signature", func(t *testing.T) {
		err := g.VerifyPayment(context.Background(), registration.PaymentConfirmation{
			OrderID:   "order_abc",
			PaymentID: "pay_42",
			Signature: sign("order_abc", "pay_42", "secret"),
		})
		assert.NoError(t, err)
	})

	t.Run("signature for another payment", func(t *testing.T) {
		err := g.VerifyPayment(context.Background(), registration.PaymentConfirmation{
			OrderID:   "order_abc",
			PaymentID: "pay_42",
			Signature: sign("order_abc", "pay_43", "secret"),
		})
		requireReason(t, err, registration.REASON_PAYMENT_VERIFICATION_FAILED)
	})

	t.Run("not configured", func(t *testing.T) {
		err := NewGateway("", "").VerifyPayment(context.Background(), registration.PaymentConfirmation{})
		requireReason(t, err, registration.REASON_GATEWAY_CONFIG_ERROR)
	})

	assert.Equal(t, "rzp_test_key", g.CheckoutKey())
}
