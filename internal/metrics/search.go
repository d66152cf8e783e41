package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchlab",
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"method", "status"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchlab",
			Name:      "search_duration_seconds",
			Help:      "Search request duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method"},
	)

	SearchResultsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchlab",
			Name:      "search_results_returned",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
		[]string{"method"},
	)

	DocumentsIndexed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "searchlab",
			Name:      "documents_indexed",
			Help:      "Number of documents currently in the index",
		},
	)

	QueryRewritesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "searchlab",
			Name:      "query_rewrites_total",
			Help:      "Total number of semantic query rewrites that expanded the query",
		},
	)

	ChatMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchlab",
			Name:      "chat_messages_total",
			Help:      "Total chat messages processed",
		},
		[]string{"type"}, // "text" / "audio" / "image"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResultsReturned)
	prometheus.MustRegister(DocumentsIndexed)
	prometheus.MustRegister(QueryRewritesTotal)
	prometheus.MustRegister(ChatMessagesTotal)
	searchMetricsRegistered = true
}
