package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seekr",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "seekr",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "path"},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seekr",
			Subsystem: "search",
			Name:      "searches_total",
			Help:      "Total searches run",
		},
		[]string{"category"},
	)

	ChatMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seekr",
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Total chat messages appended",
		},
		[]string{"role"},
	)

	TopicViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "seekr",
			Subsystem: "trending",
			Name:      "topic_views_total",
			Help:      "Total trending topic view increments",
		},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "seekr",
			Subsystem: "ai",
			Name:      "generation_duration_seconds",
			Help:      "Answer generation duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)
)

// Handler returns the Prometheus metrics handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRequest records an HTTP request.
func RecordRequest(method, path, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, path, status).Inc()
	RequestDuration.WithLabelValues(method, path).Observe(durationSec)
}

// RecordSearch records a completed search.
func RecordSearch(category string) {
	SearchesTotal.WithLabelValues(category).Inc()
}

// RecordChatMessage records a persisted chat message.
func RecordChatMessage(role string) {
	ChatMessagesTotal.WithLabelValues(role).Inc()
}

// RecordTopicView records a trending topic view increment.
func RecordTopicView() {
	TopicViewsTotal.Inc()
}

// RecordGeneration records answer generation time.
func RecordGeneration(durationSec float64) {
	GenerationDuration.Observe(durationSec)
}
