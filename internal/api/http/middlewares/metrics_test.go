package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnobserved(t *testing.T) {
	assert.True(t, unobserved("/metrics"))
	assert.True(t, unobserved("/liveness"))
	assert.True(t, unobserved("/readyness"))
	assert.False(t, unobserved("/api/v1/sessions"))
}

// counterValue возвращает значение счётчика http_requests_total с заданными метками (0, если серии нет).
func counterValue(t *testing.T, reg *prometheus.Registry, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "http_requests_total" {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestHTTPMetrics_LabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := newHTTPMetrics(reg)

	r := gin.New()
	r.Use(m.handle)
	r.GET("/api/v1/sessions/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/liveness", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/v1/sessions/a", "/api/v1/sessions/b", "/liveness", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, counterValue(t, reg, map[string]string{
		"method": "GET", "path": "/api/v1/sessions/:id", "status": "200",
	}))
	assert.Equal(t, 1.0, counterValue(t, reg, map[string]string{
		"method": "GET", "path": unmatchedRoute, "status": "404",
	}))
	assert.Equal(t, 0.0, counterValue(t, reg, map[string]string{
		"method": "GET", "path": "/liveness", "status": "200",
	}))
}
