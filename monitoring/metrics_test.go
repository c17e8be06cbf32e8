package monitoring

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/optimus-events/event-registration/events"
	"github.com/optimus-events/event-registration/registration"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveTransition(t *testing.T) {
	m := NewMonitor()
	counter := checkoutTransitions.WithLabelValues("paying", "finalizing")
	before := testutil.ToFloat64(counter)

	m.ObserveTransition(registration.PAYING, registration.FINALIZING)
	m.ObserveTransition(registration.PAYING, registration.FINALIZING)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestNotifyRegistered(t *testing.T) {
	m := NewMonitor()
	counter := registrationsCreated.WithLabelValues("FREE_EVENT")
	before := testutil.ToFloat64(counter)

	require.NoError(t, m.NotifyRegistered(context.Background(), registration.Registration{PaymentKind: registration.FREE}, events.Event{}))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMonitor()
	m.ObserveRequest(http.MethodGet, http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds")
}
