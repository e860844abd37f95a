//go:build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.BookingCreated()
	m.BookingCreated()
	m.BookingRejected("slot_taken")
	m.StatusChanged("pending", "confirmed")
	m.SlotToggled(false)
	m.SlotToggled(false)
	m.SlotToggled(true)
	m.NotificationRecorded("failed")
	m.RequestLimited("/api/bookings")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsRejected.WithLabelValues("slot_taken")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.BookingsRejected.WithLabelValues("not_weekend")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatusTransitions.WithLabelValues("pending", "confirmed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SlotToggles.WithLabelValues("disable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotToggles.WithLabelValues("enable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited.WithLabelValues("/api/bookings")))
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.BookingCreated()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.BookingsCreated))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.BookingsCreated))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.BookingRejected("not_weekend")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `weekend_booking_bookings_rejected_total{reason="not_weekend"} 1`))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := New()

	m.ObserveHTTP("/api/bookings", http.MethodPost, http.StatusCreated, 20*time.Millisecond)
	m.ObserveHTTP("", http.MethodGet, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/bookings", "POST", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("unmatched", "GET", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestSeconds))
}
