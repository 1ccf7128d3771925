package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jirao_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jirao_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	interestEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jirao_interest_events_total",
		Help: "Interest lifecycle events by outcome",
	}, []string{"event"})

	reportsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jirao_reports_created_total",
		Help: "Reports filed against users",
	})

	moderationActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jirao_moderation_actions_total",
		Help: "Admin moderation actions by kind",
	}, []string{"action"})
)

// ObserveHTTPRequest records an HTTP request metric.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveInterestEvent counts an interest lifecycle event: expressed,
// accepted, rejected or cancelled.
func ObserveInterestEvent(event string) {
	interestEvents.WithLabelValues(event).Inc()
}

// ObserveReportCreated counts a filed report.
func ObserveReportCreated() {
	reportsCreated.Inc()
}

// ObserveModerationAction counts an admin action: ban, unban, delete,
// approve_host or reject_host.
func ObserveModerationAction(action string) {
	moderationActions.WithLabelValues(action).Inc()
}
