package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/forms"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultCheckoutTTL = 30 * time.Minute

var tracer = otel.Tracer("github.com/optimus-events/event-registration/registration")

type Options struct {
	CheckoutTTL time.Duration
	// VerifySignature makes ConfirmPayment check the gateway signature before
	// the registration is written.
	VerifySignature bool
	MerchantName    string
}

// TransitionObserver is told about every state change a checkout makes.
type TransitionObserver interface {
	ObserveTransition(from, to State)
}

// Notifier is told about registrations once they are stored. Errors are
// logged and never fail the flow.
type Notifier interface {
	NotifyRegistered(ctx context.Context, reg Registration, event events.Event) error
}

type Workflow struct {
	events        events.Repository
	forms         forms.Repository
	registrations Repository
	checkouts     CheckoutStore
	sessions      SessionProvider
	gateway       PaymentGateway

	options   Options
	now       func() time.Time
	observers []TransitionObserver
	notifiers []Notifier
	logger    *slog.Logger
}

type WorkflowOption func(*Workflow)

func WithClock(now func() time.Time) WorkflowOption {
	return func(w *Workflow) {
		w.now = now
	}
}

func WithObserver(o TransitionObserver) WorkflowOption {
	return func(w *Workflow) {
		w.observers = append(w.observers, o)
	}
}

func WithNotifier(n Notifier) WorkflowOption {
	return func(w *Workflow) {
		w.notifiers = append(w.notifiers, n)
	}
}

func WithLogger(logger *slog.Logger) WorkflowOption {
	return func(w *Workflow) {
		w.logger = logger
	}
}

func NewWorkflow(
	eventRepo events.Repository,
	formRepo forms.Repository,
	registrationRepo Repository,
	checkouts CheckoutStore,
	sessions SessionProvider,
	gateway PaymentGateway,
	options Options,
	opts ...WorkflowOption,
) *Workflow {
	if options.CheckoutTTL <= 0 {
		options.CheckoutTTL = DefaultCheckoutTTL
	}

	w := &Workflow{
		events:        eventRepo,
		forms:         formRepo,
		registrations: registrationRepo,
		checkouts:     checkouts,
		sessions:      sessions,
		gateway:       gateway,
		options:       options,
		now:           time.Now,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Begin starts a new checkout for the signed in user.
func (w *Workflow) Begin(ctx context.Context, eventID uuid.UUID) (Checkout, []forms.FormField, error) {
	ctx, span := tracer.Start(ctx, "registration.Begin", trace.WithAttributes(attribute.String("event.id", eventID.String())))
	defer span.End()

	user, ok := w.sessions.CurrentUser(ctx)
	if !ok {
		return Checkout{}, nil, recordErr(span, NewUnauthenticatedError("You must be signed in to register", nil))
	}

	event, err := w.getEvent(ctx, eventID)
	if err != nil {
		return Checkout{}, nil, recordErr(span, err)
	}

	fields, err := forms.GetFields(ctx, w.forms, eventID)
	if err != nil {
		return Checkout{}, nil, recordErr(span, NewFailedToFetchError("Failed to load the registration form", err))
	}

	now := w.now()
	c := Checkout{
		ID:         uuid.New(),
		EventID:    eventID,
		EventTitle: event.Title,
		UserID:     user.ID,
		UserEmail:  user.Email,
		State:      IDLE,
		CreatedAt:  now,
		ExpiresAt:  now.Add(w.options.CheckoutTTL),
	}
	w.transition(&c, COLLECTING)

	if err := SaveCheckout(ctx, w.checkouts, &c); err != nil {
		return Checkout{}, nil, recordErr(span, err)
	}

	return c, fields, nil
}

// Get returns the checkout if it belongs to the signed in user.
func (w *Workflow) Get(ctx context.Context, checkoutID uuid.UUID) (Checkout, error) {
	return w.load(ctx, checkoutID)
}

// Submit validates raw against the event's form and moves the checkout on.
// A nil raw reuses the data held from the previous submission.
func (w *Workflow) Submit(ctx context.Context, checkoutID uuid.UUID, raw map[string]any) (Checkout, error) {
	ctx, span := tracer.Start(ctx, "registration.Submit", trace.WithAttributes(attribute.String("checkout.id", checkoutID.String())))
	defer span.End()

	c, err := w.load(ctx, checkoutID)
	if err != nil {
		return Checkout{}, recordErr(span, err)
	}

	switch {
	case c.State == COLLECTING, c.State == PAYMENT_REQUIRED:
	case c.Recoverable():
	default:
		return c, recordErr(span, NewInvalidStateError("submit the form", c.State))
	}

	event, err := w.getEvent(ctx, c.EventID)
	if err != nil {
		return c, recordErr(span, err)
	}

	fields, err := forms.GetFields(ctx, w.forms, c.EventID)
	if err != nil {
		return c, recordErr(span, NewFailedToFetchError("Failed to load the registration form", err))
	}

	if raw == nil {
		raw = c.Held.ToMap()
	}

	data, err := forms.Validate(fields, raw)
	if err != nil {
		return c, recordErr(span, NewValidationError(err))
	}

	c.Held = data
	c.Failure = nil

	if event.IsFree() {
		w.transition(&c, FINALIZING)
		return w.finalize(ctx, span, c, event, FREE)
	}

	order, err := w.createOrder(ctx, c, event)
	if err != nil {
		return w.fail(ctx, span, c, err)
	}

	c.Order = &order
	c.Confirmation = nil
	w.transition(&c, PAYMENT_REQUIRED)

	if err := SaveCheckout(ctx, w.checkouts, &c); err != nil {
		return c, recordErr(span, err)
	}

	return c, nil
}

// OpenCheckout hands out what the client needs to show the payment popup.
func (w *Workflow) OpenCheckout(ctx context.Context, checkoutID uuid.UUID) (Checkout, CheckoutOptions, error) {
	ctx, span := tracer.Start(ctx, "registration.OpenCheckout", trace.WithAttributes(attribute.String("checkout.id", checkoutID.String())))
	defer span.End()

	c, err := w.load(ctx, checkoutID)
	if err != nil {
		return Checkout{}, CheckoutOptions{}, recordErr(span, err)
	}

	if c.State != PAYMENT_REQUIRED || c.Order == nil {
		return c, CheckoutOptions{}, recordErr(span, NewInvalidStateError("open the payment window", c.State))
	}

	title := c.EventTitle
	if title == "" {
		if event, err := w.getEvent(ctx, c.EventID); err == nil {
			title = event.Title
		}
	}

	opts := CheckoutOptions{
		Key:          w.gateway.CheckoutKey(),
		OrderID:      c.Order.ID,
		Amount:       c.Order.Amount.Amount(),
		Currency:     c.Order.Amount.Currency().Code,
		Name:         w.options.MerchantName,
		Description:  fmt.Sprintf("Registration for %s", title),
		PrefillEmail: c.UserEmail,
	}

	w.transition(&c, PAYING)
	if err := SaveCheckout(ctx, w.checkouts, &c); err != nil {
		return c, CheckoutOptions{}, recordErr(span, err)
	}

	return c, opts, nil
}

// Dismiss records that the payment popup was closed without paying. The
// order and held data stay so the user can open it again.
func (w *Workflow) Dismiss(ctx context.Context, checkoutID uuid.UUID) (Checkout, error) {
	c, err := w.load(ctx, checkoutID)
	if err != nil {
		return Checkout{}, err
	}

	if c.State != PAYING {
		return c, NewInvalidStateError("dismiss the payment window", c.State)
	}

	w.transition(&c, PAYMENT_REQUIRED)
	if err := SaveCheckout(ctx, w.checkouts, &c); err != nil {
		return c, err
	}

	return c, nil
}

// ConfirmPayment takes the popup's success data and writes the registration.
func (w *Workflow) ConfirmPayment(ctx context.Context, checkoutID uuid.UUID, confirmation PaymentConfirmation) (Checkout, error) {
	ctx, span := tracer.Start(ctx, "registration.ConfirmPayment", trace.WithAttributes(
		attribute.String("checkout.id", checkoutID.String()),
		attribute.String("payment.id", confirmation.PaymentID),
	))
	defer span.End()

	c, err := w.load(ctx, checkoutID)
	if err != nil {
		return Checkout{}, recordErr(span, err)
	}

	if c.State != PAYING || c.Order == nil {
		return c, recordErr(span, NewInvalidStateError("confirm a payment", c.State))
	}

	if confirmation.OrderID != c.Order.ID {
		return c, recordErr(span, NewOrderMismatchError(c.Order.ID, confirmation.OrderID))
	}

	if confirmation.PaymentID == "" {
		return w.fail(ctx, span, c, NewPaymentVerificationError("Payment confirmation has no payment id", nil))
	}

	if w.options.VerifySignature {
		if err := w.gateway.VerifyPayment(ctx, confirmation); err != nil {
			var regErr *Error
			if !errors.As(err, &regErr) || regErr.Reason != REASON_PAYMENT_VERIFICATION_FAILED {
				err = NewPaymentVerificationError("Failed to verify payment", err)
			}
			return w.fail(ctx, span, c, err)
		}
	}

	c.Confirmation = &confirmation
	w.transition(&c, FINALIZING)

	event, err := w.getEvent(ctx, c.EventID)
	if err != nil {
		w.logger.WarnContext(ctx, "Failed to load event for a paid registration", slog.String("error", err.Error()))
		event = events.Event{ID: c.EventID, Title: c.EventTitle}
	}

	return w.finalize(ctx, span, c, event, PAID)
}

// RetryFinalize attempts the registration write once more after a payment
// went through but storing the registration failed.
func (w *Workflow) RetryFinalize(ctx context.Context, checkoutID uuid.UUID) (Checkout, error) {
	ctx, span := tracer.Start(ctx, "registration.RetryFinalize", trace.WithAttributes(attribute.String("checkout.id", checkoutID.String())))
	defer span.End()

	c, err := w.load(ctx, checkoutID)
	if err != nil {
		return Checkout{}, recordErr(span, err)
	}

	if c.State != ERROR || c.Failure == nil || c.Failure.Reason != REASON_PERSISTENCE_AFTER_PAYMENT || c.Confirmation == nil {
		return c, recordErr(span, NewInvalidStateError("retry the registration", c.State))
	}

	c.Failure = nil
	w.transition(&c, FINALIZING)

	event, err := w.getEvent(ctx, c.EventID)
	if err != nil {
		event = events.Event{ID: c.EventID, Title: c.EventTitle}
	}

	return w.finalize(ctx, span, c, event, PAID)
}

// finalize claims the checkout by storing the finalizing state before the
// registration is written. A version conflict means another request got
// there first, so nothing is written.
func (w *Workflow) finalize(ctx context.Context, span trace.Span, c Checkout, event events.Event, kind PaymentKind) (Checkout, error) {
	if err := SaveCheckout(ctx, w.checkouts, &c); err != nil {
		return c, recordErr(span, err)
	}

	reg := Registration{
		ID:           uuid.New(),
		Version:      1,
		EventID:      c.EventID,
		UserID:       c.UserID,
		UserEmail:    c.UserEmail,
		RegisteredAt: w.now(),
		FormData:     c.Held.Clone(),
		PaymentKind:  kind,
	}
	if kind == PAID {
		confirmation := *c.Confirmation
		reg.Payment = &confirmation
	}

	err := reg.Validate()
	if err == nil {
		err = w.registrations.CreateRegistration(ctx, reg)
	}
	if err != nil {
		if kind == PAID {
			return w.fail(ctx, span, c, NewPersistenceAfterPaymentError(c.Confirmation.PaymentID, err))
		}
		return w.fail(ctx, span, c, err)
	}

	c.RegistrationID = &reg.ID
	w.transition(&c, SUCCESS)

	if err := SaveCheckout(ctx, w.checkouts, &c); err != nil {
		// The registration is stored, so this is not a failed flow.
		w.logger.ErrorContext(ctx, "Failed to save completed checkout", slog.String("checkoutId", c.ID.String()), slog.String("error", err.Error()))
	}

	for _, n := range w.notifiers {
		if err := n.NotifyRegistered(ctx, reg, event); err != nil {
			w.logger.ErrorContext(ctx, "Failed to send registration notification", slog.String("registrationId", reg.ID.String()), slog.String("error", err.Error()))
		}
	}

	return c, nil
}

// fail moves the checkout into the error state and stores why.
func (w *Workflow) fail(ctx context.Context, span trace.Span, c Checkout, cause error) (Checkout, error) {
	failure := &Failure{Reason: REASON_FAILED_TO_WRITE, Message: cause.Error()}
	var regErr *Error
	if errors.As(cause, &regErr) {
		failure = &Failure{Reason: regErr.Reason, Message: regErr.Message}
	}

	c.Failure = failure
	w.transition(&c, ERROR)

	if err := SaveCheckout(ctx, w.checkouts, &c); err != nil {
		w.logger.ErrorContext(ctx, "Failed to save failed checkout", slog.String("checkoutId", c.ID.String()), slog.String("error", err.Error()))
	}

	return c, recordErr(span, cause)
}

func (w *Workflow) createOrder(ctx context.Context, c Checkout, event events.Event) (Order, error) {
	if w.gateway == nil {
		return Order{}, NewGatewayConfigError("Payment gateway is not configured")
	}

	order, err := w.gateway.CreateOrder(ctx, event.TicketPrice, c.ID.String())
	if err != nil {
		var regErr *Error
		if errors.As(err, &regErr) && (regErr.Reason == REASON_GATEWAY_CONFIG_ERROR || regErr.Reason == REASON_ORDER_CREATION_FAILED) {
			return Order{}, err
		}
		return Order{}, NewOrderCreationError("Failed to create payment order", err)
	}

	return order, nil
}

func (w *Workflow) load(ctx context.Context, checkoutID uuid.UUID) (Checkout, error) {
	user, ok := w.sessions.CurrentUser(ctx)
	if !ok {
		return Checkout{}, NewUnauthenticatedError("You must be signed in to register", nil)
	}

	c, err := LoadCheckout(ctx, w.checkouts, checkoutID, w.now())
	if err != nil {
		return Checkout{}, err
	}

	if c.UserID != user.ID {
		return Checkout{}, NewCheckoutDoesNotExistError(fmt.Sprintf("Checkout %s does not exist", checkoutID), nil)
	}

	return c, nil
}

func (w *Workflow) getEvent(ctx context.Context, eventID uuid.UUID) (events.Event, error) {
	event, err := w.events.GetEvent(ctx, eventID)
	if err != nil {
		var eventErr *events.Error
		if errors.As(err, &eventErr) {
			switch eventErr.Reason {
			case events.REASON_EVENT_DOES_NOT_EXIST:
				return events.Event{}, NewEventNotFoundError(fmt.Sprintf("Event %s does not exist", eventID), err)
			case events.REASON_TIMEOUT:
				return events.Event{}, NewTimeoutError("Timed out loading the event")
			}
		}
		return events.Event{}, NewFailedToFetchError("Failed to fetch the event", err)
	}

	return event, nil
}

func (w *Workflow) transition(c *Checkout, to State) {
	if !c.canTransition(to) {
		panic(fmt.Sprintf("illegal checkout transition %s -> %s", c.State, to))
	}

	from := c.State
	c.State = to
	for _, o := range w.observers {
		o.ObserveTransition(from, to)
	}
}

func recordErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
