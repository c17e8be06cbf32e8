// Package redisstore keeps checkouts in Redis with a TTL. Writes only land
// when the stored version is the one before the version being written.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/forms"
	"github.com/optimus-events/event-registration/registration"
	"github.com/redis/go-redis/v9"
)

var _ registration.CheckoutStore = &CheckoutStore{}

type CheckoutStore struct {
	redis *redis.Client
	now   func() time.Time
}

func NewCheckoutStore(client *redis.Client) *CheckoutStore {
	return &CheckoutStore{
		redis: client,
		now:   time.Now,
	}
}

type checkoutRedis struct {
	ID             uuid.UUID                         `json:"id"`
	Version        int                               `json:"version"`
	EventID        uuid.UUID                         `json:"eventId"`
	EventTitle     string                            `json:"eventTitle"`
	UserID         string                            `json:"userId"`
	UserEmail      string                            `json:"userEmail"`
	State          int                               `json:"state"`
	Held           map[string]any                    `json:"held,omitempty"`
	HeldKinds      map[string]forms.ValueKind        `json:"heldKinds,omitempty"`
	Order          *orderRedis                       `json:"order,omitempty"`
	Confirmation   *registration.PaymentConfirmation `json:"confirmation,omitempty"`
	RegistrationID *uuid.UUID                        `json:"registrationId,omitempty"`
	Failure        *registration.Failure             `json:"failure,omitempty"`
	CreatedAt      time.Time                         `json:"createdAt"`
	ExpiresAt      time.Time                         `json:"expiresAt"`
}

type orderRedis struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func checkoutKey(id uuid.UUID) string {
	return fmt.Sprintf("checkout:%s", id)
}

func toRedis(c registration.Checkout) checkoutRedis {
	item := checkoutRedis{
		ID:             c.ID,
		Version:        c.Version,
		EventID:        c.EventID,
		EventTitle:     c.EventTitle,
		UserID:         c.UserID,
		UserEmail:      c.UserEmail,
		State:          int(c.State),
		Confirmation:   c.Confirmation,
		RegistrationID: c.RegistrationID,
		Failure:        c.Failure,
		CreatedAt:      c.CreatedAt,
		ExpiresAt:      c.ExpiresAt,
	}
	if len(c.Held) > 0 {
		item.Held = c.Held.ToMap()
		item.HeldKinds = make(map[string]forms.ValueKind, len(c.Held))
		for k, v := range c.Held {
			item.HeldKinds[k] = v.Kind
		}
	}
	if c.Order != nil {
		item.Order = &orderRedis{
			ID:       c.Order.ID,
			Amount:   c.Order.Amount.Amount(),
			Currency: c.Order.Amount.Currency().Code,
			Receipt:  c.Order.Receipt,
		}
	}

	return item
}

func fromRedis(item checkoutRedis) (registration.Checkout, error) {
	c := registration.Checkout{
		ID:             item.ID,
		Version:        item.Version,
		EventID:        item.EventID,
		EventTitle:     item.EventTitle,
		UserID:         item.UserID,
		UserEmail:      item.UserEmail,
		State:          registration.State(item.State),
		Confirmation:   item.Confirmation,
		RegistrationID: item.RegistrationID,
		Failure:        item.Failure,
		CreatedAt:      item.CreatedAt,
		ExpiresAt:      item.ExpiresAt,
	}

	if len(item.Held) > 0 {
		c.Held = make(forms.Data, len(item.Held))
		for k, raw := range item.Held {
			v, err := heldValue(item.HeldKinds[k], raw)
			if err != nil {
				return registration.Checkout{}, fmt.Errorf("held value %q: %w", k, err)
			}
			c.Held[k] = v
		}
	}

	if item.Order != nil {
		c.Order = &registration.Order{
			ID:      item.Order.ID,
			Amount:  money.New(item.Order.Amount, item.Order.Currency),
			Receipt: item.Order.Receipt,
		}
	}

	return c, nil
}

func heldValue(kind forms.ValueKind, raw any) (forms.Value, error) {
	switch kind {
	case forms.TEXT_VALUE:
		if s, ok := raw.(string); ok {
			return forms.TextValue(s), nil
		}
	case forms.NUMBER_VALUE:
		if n, ok := raw.(float64); ok {
			return forms.NumberValue(n), nil
		}
	case forms.BOOL_VALUE:
		if b, ok := raw.(bool); ok {
			return forms.BoolValue(b), nil
		}
	case forms.DATE_VALUE:
		if s, ok := raw.(string); ok {
			t, err := time.Parse(time.DateOnly, s)
			if err != nil {
				return forms.Value{}, err
			}
			return forms.DateValue(t), nil
		}
	}
	return forms.Value{}, fmt.Errorf("unexpected %T for kind %d", raw, kind)
}

func (s *CheckoutStore) GetCheckout(ctx context.Context, id uuid.UUID) (registration.Checkout, error) {
	payload, err := s.redis.Get(ctx, checkoutKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return registration.Checkout{}, registration.NewCheckoutDoesNotExistError(fmt.Sprintf("Checkout %s does not exist", id), nil)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.Checkout{}, registration.NewTimeoutError("GetCheckout timed out")
		}
		return registration.Checkout{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch checkout %s", id), err)
	}

	var item checkoutRedis
	err = json.Unmarshal(payload, &item)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal checkout from redis: %s", err))
	}

	c, err := fromRedis(item)
	if err != nil {
		panic(fmt.Sprintf("failed to translate checkout from redis: %s", err))
	}

	return c, nil
}

func (s *CheckoutStore) PutCheckout(ctx context.Context, checkout registration.Checkout) error {
	payload, err := json.Marshal(toRedis(checkout))
	if err != nil {
		return registration.NewFailedToTranslateToDBModelError("Failed to encode checkout", err)
	}

	ttl := checkout.ExpiresAt.Add(registration.RetentionAfterExpiry).Sub(s.now())
	if ttl < time.Second {
		ttl = time.Second
	}

	written, err := putCheckoutScript.Run(ctx, s.redis, []string{checkoutKey(checkout.ID)}, string(payload), checkout.Version, ttl.Milliseconds()).Int()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("PutCheckout timed out")
		}
		return registration.NewFailedToWriteError("Failed to write checkout to redis", err)
	}
	if written == 0 {
		return registration.NewCheckoutVersionConflictError(fmt.Sprintf("Checkout %s was changed in another window", checkout.ID), nil)
	}

	return nil
}

// putCheckoutScript sets KEYS[1] to ARGV[1] for ARGV[3] milliseconds if the
// stored version is ARGV[2]-1, or if nothing is stored and ARGV[2] is 1.
var putCheckoutScript = redis.NewScript(`
local version = tonumber(ARGV[2])
local current = redis.call('GET', KEYS[1])
if current then
	if cjson.decode(current).version ~= version - 1 then
		return 0
	end
elseif version > 1 then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)
