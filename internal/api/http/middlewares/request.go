package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader: заголовок с id запроса: принимается от клиента или генерируется.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID кладёт id запроса в контекст gin и в заголовок ответа.
func RequestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// RequestLogger логирует каждый запрос: метод, путь, статус, длительность, client IP, id запроса.
func RequestLogger(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path
	raw := c.Request.URL.RawQuery
	clientIP := c.ClientIP()
	method := c.Request.Method

	c.Next()

	latency := time.Since(start)
	status := c.Writer.Status()
	if raw != "" {
		path = path + "?" + raw
	}
	slog.Info("request",
		"method", method,
		"path", path,
		"status", status,
		"ip", clientIP,
		"request_id", c.GetString(requestIDKey),
		"latency_ms", latency.Milliseconds(),
	)
}
