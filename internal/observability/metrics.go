package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Gym lifecycle operations tracked by RecordGymOperation.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpRemove = "remove"
)

var (
	gymOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gyms_api",
		Subsystem: "gyms",
		Name:      "operations_total",
		Help:      "Gym lifecycle mutations by operation and outcome.",
	}, []string{"operation", "outcome"})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gyms_api",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gyms_api",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(gymOperations, httpRequests, httpDuration)
}

// RecordGymOperation counts a lifecycle mutation; a nil err is a success.
func RecordGymOperation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	gymOperations.WithLabelValues(operation, outcome).Inc()
}

// GinMiddleware records request counts and latency. Unmatched routes are
// grouped under a single label to keep cardinality bounded.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
