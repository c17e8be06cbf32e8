package api

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/forms"
	"github.com/optimus-events/event-registration/registration"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ events.Repository = &mockEventRepository{}

type mockEventRepository struct {
	GetEventFunc    func(ctx context.Context, id uuid.UUID) (events.Event, error)
	GetEventsFunc   func(ctx context.Context, limit int32, cursor *string) (events.GetEventsResponse, error)
	CreateEventFunc func(ctx context.Context, event events.Event) error
	UpdateEventFunc func(ctx context.Context, event events.Event) error
}

func (m *mockEventRepository) GetEvent(ctx context.Context, id uuid.UUID) (events.Event, error) {
	if m.GetEventFunc != nil {
		return m.GetEventFunc(ctx, id)
	}
	return events.Event{}, events.NewEventDoesNotExistsError("not found", nil)
}

func (m *mockEventRepository) GetEvents(ctx context.Context, limit int32, cursor *string) (events.GetEventsResponse, error) {
	if m.GetEventsFunc != nil {
		return m.GetEventsFunc(ctx, limit, cursor)
	}
	return events.GetEventsResponse{}, nil
}

func (m *mockEventRepository) CreateEvent(ctx context.Context, event events.Event) error {
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepository) UpdateEvent(ctx context.Context, event events.Event) error {
	if m.UpdateEventFunc != nil {
		return m.UpdateEventFunc(ctx, event)
	}
	return nil
}

var _ forms.Repository = &mockFormRepository{}

type mockFormRepository struct {
	GetFormSchemaFunc  func(ctx context.Context, eventID uuid.UUID) (forms.Schema, error)
	SaveFormSchemaFunc func(ctx context.Context, schema forms.Schema) error
}

func (m *mockFormRepository) GetFormSchema(ctx context.Context, eventID uuid.UUID) (forms.Schema, error) {
	if m.GetFormSchemaFunc != nil {
		return m.GetFormSchemaFunc(ctx, eventID)
	}
	return forms.Schema{}, forms.NewSchemaDoesNotExistError("no form", nil)
}

func (m *mockFormRepository) SaveFormSchema(ctx context.Context, schema forms.Schema) error {
	if m.SaveFormSchemaFunc != nil {
		return m.SaveFormSchemaFunc(ctx, schema)
	}
	return nil
}

var _ registration.Repository = &mockRegistrationRepository{}

type mockRegistrationRepository struct {
	CreateRegistrationFunc          func(ctx context.Context, reg registration.Registration) error
	GetAllRegistrationsForEventFunc func(ctx context.Context, eventId uuid.UUID, limit int32, cursor *string) (registration.GetRegistrationsResponse, error)
	GetRegistrationsForUserFunc     func(ctx context.Context, userId string, limit int32, cursor *string) (registration.GetRegistrationsResponse, error)
}

func (m *mockRegistrationRepository) CreateRegistration(ctx context.Context, reg registration.Registration) error {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	return nil
}

func (m *mockRegistrationRepository) GetAllRegistrationsForEvent(ctx context.Context, eventId uuid.UUID, limit int32, cursor *string) (registration.GetRegistrationsResponse, error) {
	if m.GetAllRegistrationsForEventFunc != nil {
		return m.GetAllRegistrationsForEventFunc(ctx, eventId, limit, cursor)
	}
	return registration.GetRegistrationsResponse{}, nil
}

func (m *mockRegistrationRepository) GetRegistrationsForUser(ctx context.Context, userId string, limit int32, cursor *string) (registration.GetRegistrationsResponse, error) {
	if m.GetRegistrationsForUserFunc != nil {
		return m.GetRegistrationsForUserFunc(ctx, userId, limit, cursor)
	}
	return registration.GetRegistrationsResponse{}, nil
}

var _ RegistrationWorkflow = &mockWorkflow{}

type mockWorkflow struct {
	BeginFunc          func(ctx context.Context, eventID uuid.UUID) (registration.Checkout, []forms.FormField, error)
	GetFunc            func(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, error)
	SubmitFunc         func(ctx context.Context, checkoutID uuid.UUID, raw map[string]any) (registration.Checkout, error)
	OpenCheckoutFunc   func(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, registration.CheckoutOptions, error)
	DismissFunc        func(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, error)
	ConfirmPaymentFunc func(ctx context.Context, checkoutID uuid.UUID, confirmation registration.PaymentConfirmation) (registration.Checkout, error)
	RetryFinalizeFunc  func(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, error)
}

func (m *mockWorkflow) Begin(ctx context.Context, eventID uuid.UUID) (registration.Checkout, []forms.FormField, error) {
	return m.BeginFunc(ctx, eventID)
}

func (m *mockWorkflow) Get(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, error) {
	return m.GetFunc(ctx, checkoutID)
}

func (m *mockWorkflow) Submit(ctx context.Context, checkoutID uuid.UUID, raw map[string]any) (registration.Checkout, error) {
	return m.SubmitFunc(ctx, checkoutID, raw)
}

func (m *mockWorkflow) OpenCheckout(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, registration.CheckoutOptions, error) {
	return m.OpenCheckoutFunc(ctx, checkoutID)
}

func (m *mockWorkflow) Dismiss(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, error) {
	return m.DismissFunc(ctx, checkoutID)
}

func (m *mockWorkflow) ConfirmPayment(ctx context.Context, checkoutID uuid.UUID, confirmation registration.PaymentConfirmation) (registration.Checkout, error) {
	return m.ConfirmPaymentFunc(ctx, checkoutID, confirmation)
}

func (m *mockWorkflow) RetryFinalize(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, error) {
	return m.RetryFinalizeFunc(ctx, checkoutID)
}

var _ registration.PaymentGateway = &mockGateway{}

type mockGateway struct {
	CreateOrderFunc func(ctx context.Context, amount *money.Money, receipt string) (registration.Order, error)
}

func (m *mockGateway) CreateOrder(ctx context.Context, amount *money.Money, receipt string) (registration.Order, error) {
	return m.CreateOrderFunc(ctx, amount, receipt)
}

func (m *mockGateway) VerifyPayment(ctx context.Context, confirmation registration.PaymentConfirmation) error {
	return nil
}

func (m *mockGateway) CheckoutKey() string {
	return "rzp_test_key"
}

type mockGoogleIdVerifier struct {
	ValidateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

func (m *mockGoogleIdVerifier) Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error) {
	return m.ValidateFunc(ctx, idToken, audience)
}

type observedRequest struct {
	method string
	status int
}

type mockRequestObserver struct {
	requests []observedRequest
}

func (m *mockRequestObserver) ObserveRequest(method string, status int, duration time.Duration) {
	m.requests = append(m.requests, observedRequest{method: method, status: status})
}

const (
	testClientID = "test-client-id"
	organizerID  = "organizer-1"
)

var (
	organizer        = registration.User{ID: organizerID, Email: "organizer@example.com"}
	registrationUser = registration.User{ID: "user-1", Email: "user@example.com"}
)

func newTestAPI(opts ...func(*API)) *API {
	a := &API{
		events:           &mockEventRepository{},
		forms:            &mockFormRepository{},
		registrations:    &mockRegistrationRepository{},
		workflow:         &mockWorkflow{},
		googleIdVerifier: &mockGoogleIdVerifier{},
		logger:           noopLogger,
		config: Config{
			Env:            LOCAL,
			GoogleClientID: testClientID,
			CookieDomain:   "events.example.com",
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func asUser(user registration.User) context.Context {
	return ctxWithUser(context.Background(), user)
}

func requireResponse[T any](t *testing.T, resp any, err error) T {
	t.Helper()

	require.NoError(t, err)
	r, ok := resp.(T)
	require.Truef(t, ok, "unexpected response type: %T", resp)
	return r
}
