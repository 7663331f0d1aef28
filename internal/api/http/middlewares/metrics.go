package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute: метка для запросов, не попавших ни в один маршрут (404 до хендлера).
const unmatchedRoute = "unmatched"

type httpMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

func newHTTPMetrics(reg prometheus.Registerer) *httpMetrics {
	f := promauto.With(reg)
	return &httpMetrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route template and status",
		}, []string{"method", "path", "status"}),
		// нажатие клавиши: доли миллисекунды, запись в хранилище: десятки
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route template",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method", "path"}),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "HTTP requests being served right now",
		}),
	}
}

var defaultHTTPMetrics = newHTTPMetrics(prometheus.DefaultRegisterer)

// unobserved: служебные маршруты, которые не попадают в метрики (скрейп и пробы k8s).
func unobserved(path string) bool {
	switch path {
	case "/metrics", "/liveness", "/readyness":
		return true
	}
	return false
}

// routeLabel: шаблон маршрута gin ("/api/v1/sessions/:id"), id сессии в метки не попадает.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}

func (m *httpMetrics) handle(c *gin.Context) {
	if unobserved(c.Request.URL.Path) {
		c.Next()
		return
	}

	m.inFlight.Inc()
	start := time.Now()
	c.Next()
	m.inFlight.Dec()

	route := routeLabel(c)
	m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}

// PrometheusMetrics: middleware метрик http_* в реестре по умолчанию.
func PrometheusMetrics(c *gin.Context) {
	defaultHTTPMetrics.handle(c)
}
