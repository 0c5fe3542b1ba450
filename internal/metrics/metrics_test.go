package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/my-bookings", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/my-bookings", "200"))
	assert.Equal(t, float64(1), count)

	metric := HTTPRequestDuration.WithLabelValues("GET", "/my-bookings").(prometheus.Histogram)
	metric.Observe(0.5)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("confirmed")
	RecordBooking("confirmed")
	RecordBooking("slot_taken")

	assert.Equal(t, float64(2), testutil.ToFloat64(BookingsTotal.WithLabelValues("confirmed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BookingsTotal.WithLabelValues("slot_taken")))
}

func TestRecordBookingTransition(t *testing.T) {
	BookingTransitionsTotal.Reset()

	RecordBookingTransition("CONFIRMED", "CANCELLED")
	RecordBookingTransition("CONFIRMED", "COMPLETED")
	RecordBookingTransition("CONFIRMED", "CANCELLED")

	assert.Equal(t, float64(2), testutil.ToFloat64(BookingTransitionsTotal.WithLabelValues("CONFIRMED", "CANCELLED")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BookingTransitionsTotal.WithLabelValues("CONFIRMED", "COMPLETED")))
}

func TestRecordAvailabilitySlot(t *testing.T) {
	AvailabilitySlotsTotal.Reset()

	RecordAvailabilitySlot("added")
	RecordAvailabilitySlot("overlap")

	assert.Equal(t, float64(1), testutil.ToFloat64(AvailabilitySlotsTotal.WithLabelValues("added")))
	assert.Equal(t, float64(1), testutil.ToFloat64(AvailabilitySlotsTotal.WithLabelValues("overlap")))
}

func TestRecordStoreConflict(t *testing.T) {
	StoreConflictsTotal.Reset()

	RecordStoreConflict("bookings")

	assert.Equal(t, float64(1), testutil.ToFloat64(StoreConflictsTotal.WithLabelValues("bookings")))
}

func TestRecordEmailMultipleTypes(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("booking_confirmation", "success")
	RecordEmail("booking_confirmation", "failed")
	RecordEmail("cancellation", "success")

	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("cancellation", "success")))
}

func TestEmailQueueLength(t *testing.T) {
	SetEmailQueueLength(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	SetEmailQueueLength(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}

func TestRecordConnectionAndEnrollment(t *testing.T) {
	connections := testutil.ToFloat64(ConnectionsCreatedTotal)
	enrollments := testutil.ToFloat64(EnrollmentsTotal)

	RecordConnection()
	RecordEnrollment()
	RecordEnrollment()

	assert.Equal(t, connections+1, testutil.ToFloat64(ConnectionsCreatedTotal))
	assert.Equal(t, enrollments+2, testutil.ToFloat64(EnrollmentsTotal))
}
