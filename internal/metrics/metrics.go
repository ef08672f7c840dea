package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Business metrics
	appointmentsBooked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointments_booked_total",
			Help: "Total number of appointments booked",
		},
		[]string{"type"},
	)

	recordsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "health_records_created_total",
			Help: "Total number of health records created",
		},
		[]string{"type"},
	)

	filesUploaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_files_uploaded_total",
			Help: "Total number of record files uploaded",
		},
		[]string{"type"},
	)

	chatTurnsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Total number of completed assistant chat turns",
		},
	)

	usersRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of registered users",
		},
		[]string{"user_type"},
	)
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware creates HTTP metrics middleware
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// normalizePath keeps metric label cardinality bounded.
func normalizePath(path string) string {
	if len(path) > 100 {
		return "/api/..."
	}
	return path
}

// --- Business metric helpers ---

func RecordAppointmentBooked(appointmentType string) {
	appointmentsBooked.WithLabelValues(appointmentType).Inc()
}

func RecordHealthRecordCreated(recordType string) {
	recordsCreated.WithLabelValues(recordType).Inc()
}

func RecordFileUploaded(fileType string) {
	filesUploaded.WithLabelValues(fileType).Inc()
}

func RecordChatTurn() {
	chatTurnsTotal.Inc()
}

func RecordUserRegistered(userType string) {
	usersRegistered.WithLabelValues(userType).Inc()
}
