package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"keypadCalc/internal/api/http/middlewares"
)

type pingController struct{}

func (pingController) RegisterRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
}

func newTestServer(origins string) *Server {
	gin.SetMode(gin.TestMode)
	s := NewServer(ServerConfig{Host: "127.0.0.1", Port: "0", CORSOrigins: origins})
	s.AddController(pingController{})
	return s
}

func TestRouter_RegistersControllers(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer("").Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middlewares.RequestIDHeader))
}

func TestRouter_RecoversPanics(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer("").Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w := httptest.NewRecorder()

	newTestServer("http://localhost:5173").Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerConfig_Origins(t *testing.T) {
	cfg := ServerConfig{CORSOrigins: " http://a , ,http://b"}

	assert.Equal(t, []string{"http://a", "http://b"}, cfg.origins())
	assert.Equal(t, "0.0.0.0:8080", ServerConfig{Host: "0.0.0.0", Port: "8080"}.Addr())
}
