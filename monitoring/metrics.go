package monitoring

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/registration"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	checkoutTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_transitions_total",
			Help: "Checkout state changes",
		},
		[]string{"from", "to"},
	)

	registrationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_created_total",
			Help: "Registrations stored",
		},
		[]string{"payment_kind"},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method and status",
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

var (
	_ registration.TransitionObserver = &Monitor{}
	_ registration.Notifier           = &Monitor{}
)

// Monitor feeds workflow activity into the Prometheus counters.
type Monitor struct{}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) ObserveTransition(from, to registration.State) {
	checkoutTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Monitor) NotifyRegistered(ctx context.Context, reg registration.Registration, event events.Event) error {
	registrationsCreated.WithLabelValues(reg.PaymentKind.String()).Inc()
	return nil
}

func (m *Monitor) ObserveRequest(method string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
