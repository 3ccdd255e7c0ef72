// Package metrics exposes Prometheus metrics for batch runs and the HTTP surface.
//
// Exported series:
//   - workorder_batch_runs_total{outcome}            completed | idle | error
//   - workorder_batch_run_duration_seconds{outcome}
//   - workorder_orders_finalized_total{status}       processed | failed
//   - workorder_delivery_duration_seconds{step,result} billing | email, success | failure
//   - workorder_http_requests_total{method,route,code}
//   - workorder_http_request_duration_seconds{method,route}
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	runs         *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	orders       *prometheus.CounterVec
	delivery     *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

var _ interfaces.IBatchMetrics = (*Collector)(nil)

// NewCollector registers every series on reg. A nil reg uses a fresh registry, so tests and
// the CLI can build collectors freely.
func NewCollector(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workorder_batch_runs_total",
			Help: "Batch processor runs by outcome.",
		}, []string{"outcome"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "workorder_batch_run_duration_seconds",
			Help:    "Wall time of a batch processor run.",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"outcome"}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workorder_orders_finalized_total",
			Help: "Work orders moved to a terminal status by the batch processor.",
		}, []string{"status"}),
		delivery: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "workorder_delivery_duration_seconds",
			Help:    "Duration of billing and email delivery calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"step", "result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workorder_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "workorder_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gatherer: reg,
	}

	reg.MustRegister(c.runs, c.runDuration, c.orders, c.delivery, c.httpRequests, c.httpDuration)
	return c
}

func (c *Collector) ObserveRun(outcome string, d time.Duration) {
	c.runs.WithLabelValues(outcome).Inc()
	c.runDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (c *Collector) ObserveOrder(status entities.WorkOrderStatus) {
	c.orders.WithLabelValues(string(status)).Inc()
}

func (c *Collector) ObserveDelivery(step string, success bool, d time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	c.delivery.WithLabelValues(step, result).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// GinMiddleware records request count and latency per matched route.
func (c *Collector) GinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		c.httpRequests.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
