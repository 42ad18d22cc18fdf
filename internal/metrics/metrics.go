// Package metrics defines Prometheus metrics for routegrid.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routegrid_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routegrid_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routegrid_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routegrid_search_duration_seconds",
			Help:    "Path search duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"algorithm"},
	)

	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routegrid_searches_total",
			Help: "Total path searches by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"},
	)

	TicksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "routegrid_traffic_ticks_total",
			Help: "Total traffic simulator ticks",
		},
	)

	TickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "routegrid_traffic_tick_duration_seconds",
			Help:    "Traffic tick duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "routegrid_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)

	NodeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "routegrid_nodes_total",
			Help: "Total node count",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "routegrid_edges_total",
			Help: "Total edge count",
		},
	)

	BlockedEdges = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "routegrid_blocked_edges",
			Help: "Edges currently excluded from search",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		SearchDuration, SearchesTotal,
		TicksTotal, TickDuration,
		WSConnections,
		NodeCount, EdgeCount, BlockedEdges,
	)
}
