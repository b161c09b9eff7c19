package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/IDNLab/ddl-parser/internal/engine"
)

// Metrics holds the Prometheus collectors of one server.
type Metrics struct {
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Conversion metrics
	StatementsTotal *prometheus.CounterVec
	ColumnsTotal    *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ddlparser_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ddlparser_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		StatementsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ddlparser_statements_total",
				Help: "Total number of CREATE TABLE statements processed",
			},
			[]string{"outcome"},
		),
		ColumnsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ddlparser_columns_total",
				Help: "Total number of converted columns by target type",
			},
			[]string{"target_type"},
		),
	}
}

// Middleware records count and latency of every request.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		m.HttpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.HttpRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
	}
}

// RecordStatement counts one processed statement. outcome is "ok", "empty"
// or "error".
func (m *Metrics) RecordStatement(outcome string) {
	m.StatementsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordResult(res *engine.Result) {
	m.RecordStatement("ok")
	for _, c := range res.Columns {
		m.ColumnsTotal.WithLabelValues(c.TargetType).Inc()
	}
}
