//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml api.yaml
package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/forms"
	"github.com/optimus-events/event-registration/registration"
	"google.golang.org/api/idtoken"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

func ParseEnvironment(s string) Environment {
	if s == "PROD" {
		return PROD
	}
	return LOCAL
}

type GoogleIdVerifier interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// RegistrationWorkflow is the checkout flow the checkout endpoints drive.
type RegistrationWorkflow interface {
	Begin(ctx context.Context, eventID uuid.UUID) (registration.Checkout, []forms.FormField, error)
	Get(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, error)
	Submit(ctx context.Context, checkoutID uuid.UUID, raw map[string]any) (registration.Checkout, error)
	OpenCheckout(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, registration.CheckoutOptions, error)
	Dismiss(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, error)
	ConfirmPayment(ctx context.Context, checkoutID uuid.UUID, confirmation registration.PaymentConfirmation) (registration.Checkout, error)
	RetryFinalize(ctx context.Context, checkoutID uuid.UUID) (registration.Checkout, error)
}

type RequestObserver interface {
	ObserveRequest(method string, status int, duration time.Duration)
}

type Config struct {
	Env Environment
	// GoogleClientID is the audience login tokens must be issued for.
	GoogleClientID string
	CookieDomain   string
	AllowedOrigins []string
}

var _ StrictServerInterface = (*API)(nil)

type API struct {
	events        events.Repository
	forms         forms.Repository
	registrations registration.Repository
	workflow      RegistrationWorkflow
	gateway       registration.PaymentGateway

	googleIdVerifier GoogleIdVerifier
	requestObserver  RequestObserver

	logger *slog.Logger
	config Config
	now    func() time.Time
}

func NewAPI(
	eventRepo events.Repository,
	formRepo forms.Repository,
	registrationRepo registration.Repository,
	workflow RegistrationWorkflow,
	gateway registration.PaymentGateway,
	verifier GoogleIdVerifier,
	observer RequestObserver,
	logger *slog.Logger,
	config Config,
) *API {
	return &API{
		events:           eventRepo,
		forms:            formRepo,
		registrations:    registrationRepo,
		workflow:         workflow,
		gateway:          gateway,
		googleIdVerifier: verifier,
		requestObserver:  observer,
		logger:           logger,
		config:           config,
		now:              time.Now,
	}
}

func (a *API) getLoggerOrBaseLogger(ctx context.Context) *slog.Logger {
	if logger, ok := getLoggerFromCtx(ctx); ok {
		return logger
	}
	return a.logger
}
