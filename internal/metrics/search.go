package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search engine metrics.
var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invsearch",
			Name:      "searches_total",
			Help:      "Total number of searches executed",
		},
		[]string{"scope"},
	)

	searchMatches = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "invsearch",
			Name:      "search_matches",
			Help:      "Pre-pagination match count per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
		[]string{"scope"},
	)

	fallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "invsearch",
			Name:      "search_fallback_total",
			Help:      "Searches served from the in-memory fallback after a primary failure",
		},
	)
)

func init() {
	prometheus.MustRegister(searchesTotal)
	prometheus.MustRegister(searchMatches)
	prometheus.MustRegister(fallbackTotal)
}

// SearchExecuted records one completed search and its match count.
func SearchExecuted(scope string, matches int) {
	searchesTotal.WithLabelValues(scope).Inc()
	searchMatches.WithLabelValues(scope).Observe(float64(matches))
}

// FallbackServed records one search that fell back to in-memory data.
func FallbackServed() {
	fallbackTotal.Inc()
}
