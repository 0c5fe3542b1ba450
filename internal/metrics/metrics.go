package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitconnect_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitconnect_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitconnect_bookings_total",
			Help: "Total number of booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	BookingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitconnect_booking_transitions_total",
			Help: "Total number of booking status transitions",
		},
		[]string{"from", "to"},
	)

	AvailabilitySlotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitconnect_availability_slots_total",
			Help: "Total number of availability slot changes by outcome",
		},
		[]string{"outcome"},
	)

	StoreConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitconnect_store_version_conflicts_total",
			Help: "Total number of optimistic write conflicts per namespace",
		},
		[]string{"namespace"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitconnect_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitconnect_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	ConnectionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitconnect_connections_created_total",
			Help: "Total number of trainer-client connections created",
		},
	)

	EnrollmentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitconnect_course_enrollments_total",
			Help: "Total number of course enrollments",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordBookingTransition(from, to string) {
	BookingTransitionsTotal.WithLabelValues(from, to).Inc()
}

func RecordAvailabilitySlot(outcome string) {
	AvailabilitySlotsTotal.WithLabelValues(outcome).Inc()
}

func RecordStoreConflict(namespace string) {
	StoreConflictsTotal.WithLabelValues(namespace).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func SetEmailQueueLength(n int64) {
	EmailQueueLength.Set(float64(n))
}

func RecordConnection() {
	ConnectionsCreatedTotal.Inc()
}

func RecordEnrollment() {
	EnrollmentsTotal.Inc()
}
