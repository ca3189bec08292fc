package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "path"},
	)
	HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests in flight",
		},
	)

	// Hosted table store metrics
	StoreRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_requests_total",
			Help: "Total number of table store REST requests",
		},
		[]string{"table", "op", "status"},
	)
	StoreRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "store_request_duration_seconds",
			Help: "Duration of table store REST requests in seconds",
		},
		[]string{"table", "op"},
	)

	// Generative model metrics
	AIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of generative model API requests",
		},
		[]string{"status"},
	)
	AIRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "ai_request_duration_seconds",
			Help: "Duration of generative model API requests in seconds",
		},
	)

	// Payment provider metrics
	PaymentRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_requests_total",
			Help: "Total number of payment provider API requests",
		},
		[]string{"endpoint", "status"},
	)
	PaymentRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "payment_request_duration_seconds",
			Help: "Duration of payment provider API requests in seconds",
		},
		[]string{"endpoint"},
	)
)

func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestsInFlight)

	prometheus.MustRegister(StoreRequestsTotal)
	prometheus.MustRegister(StoreRequestDuration)

	prometheus.MustRegister(AIRequestsTotal)
	prometheus.MustRegister(AIRequestDuration)

	prometheus.MustRegister(PaymentRequestsTotal)
	prometheus.MustRegister(PaymentRequestDuration)

	prometheus.MustRegister(prometheus.NewGoCollector())
	prometheus.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
}
