// Package metrics holds the Prometheus collectors shared by the API server,
// the background jobs and the pollers.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the console API.
type Metrics struct {
	// Counters
	RequestsTotal *prometheus.CounterVec
	ActionsTotal  *prometheus.CounterVec
	ErrorsTotal   *prometheus.CounterVec

	// Gauges
	ActiveSessions      prometheus.Gauge
	PollerFailures      *prometheus.GaugeVec
	TablespaceUsedRatio *prometheus.GaugeVec

	// Histograms
	RequestDuration *prometheus.HistogramVec
	QueryDuration   *prometheus.HistogramVec
}

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// InitMetrics registers the collectors with the default registry once.
func InitMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			RequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "oraconsole_http_requests_total",
					Help: "HTTP requests by route and status",
				},
				[]string{"method", "route", "status"},
			),
			ActionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "oraconsole_actions_total",
					Help: "Mutating actions dispatched to Oracle",
				},
				[]string{"category", "status"},
			),
			ErrorsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "oraconsole_errors_total",
					Help: "Errors by component",
				},
				[]string{"component"},
			),
			ActiveSessions: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "oraconsole_active_sessions",
					Help: "Active sessions seen by the last snapshot",
				},
			),
			PollerFailures: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "oraconsole_poller_consecutive_failures",
					Help: "Consecutive failed fetches per poller",
				},
				[]string{"poller"},
			),
			TablespaceUsedRatio: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "oraconsole_tablespace_used_percent",
					Help: "Tablespace used percentage from the last health check",
				},
				[]string{"tablespace"},
			),
			RequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "oraconsole_http_request_duration_seconds",
					Help:    "HTTP request duration",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
			QueryDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "oraconsole_oracle_query_duration_seconds",
					Help:    "Oracle query duration by operation",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"operation"},
			),
		}
	})
	return globalMetrics
}

// RecordAction counts a dispatched action.
func (m *Metrics) RecordAction(category string, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.ActionsTotal.WithLabelValues(category, status).Inc()
}

// RecordError counts an error raised by a component.
func (m *Metrics) RecordError(component string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(component).Inc()
}

// ObserveQuery records how long an Oracle round trip took.
func (m *Metrics) ObserveQuery(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// SetPollerFailures publishes the failure streak of a named poller.
func (m *Metrics) SetPollerFailures(poller string, n int) {
	if m == nil {
		return
	}
	m.PollerFailures.WithLabelValues(poller).Set(float64(n))
}

// Middleware records request count and latency keyed by the matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
