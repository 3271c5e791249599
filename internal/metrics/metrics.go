package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// Business metrics
	contactSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
	)

	contactNotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_notifications_total",
			Help: "Total number of submission notification emails attempted",
		},
		[]string{"status"}, // sent, failed
	)

	leetcodeFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leetcode_fetches_total",
			Help: "Total number of upstream LeetCode stats fetches",
		},
		[]string{"status"}, // success, failure
	)

	skillCreationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skill_creations_total",
			Help: "Total number of skills created",
		},
	)
)

// Middleware records Prometheus metrics for every request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip metrics endpoint itself
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		// Wrap response writer to capture status code
		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, statusCode).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path, statusCode).Observe(duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RecordContactSubmission records a new contact form submission
func RecordContactSubmission() {
	contactSubmissionsTotal.Inc()
}

// RecordContactNotification records a notification email attempt
func RecordContactNotification(sent bool) {
	status := "failed"
	if sent {
		status = "sent"
	}
	contactNotificationsTotal.WithLabelValues(status).Inc()
}

// RecordLeetCodeFetch records an upstream stats fetch
func RecordLeetCodeFetch(success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	leetcodeFetchesTotal.WithLabelValues(status).Inc()
}

// RecordSkillCreation records a new skill
func RecordSkillCreation() {
	skillCreationsTotal.Inc()
}
