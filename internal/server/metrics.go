package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kinderly_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	allocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kinderly_allocations_total",
			Help: "Payment allocation calls by outcome.",
		},
		[]string{"outcome"},
	)

	allocatedAmountTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kinderly_allocated_amount_total",
			Help: "Sum of requested amounts across successful allocations.",
		},
	)
)

// Metrics records a latency histogram sample per request, labeled by the
// route pattern rather than the raw path to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

// observeAllocation counts one allocation call. A zero amount is passed
// for failed calls so only successful allocations move the amount total.
func observeAllocation(outcome string, amount float64) {
	if outcome == "" {
		outcome = "internal"
	}
	allocationsTotal.WithLabelValues(outcome).Inc()
	allocatedAmountTotal.Add(amount)
}
