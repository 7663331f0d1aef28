package system

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"keypadCalc/internal/mocks"
	"keypadCalc/internal/ports"
)

func serve(repo ports.IEvaluationRepository, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(repo, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiveness(t *testing.T) {
	w := serve(nil, "/liveness")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "хранилище доступно", wantStatus: http.StatusOK},
		{name: "хранилище недоступно", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockIEvaluationRepository(gomock.NewController(t))
			repo.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)

			w := serve(repo, "/readyness")

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestReadiness_NoStorage(t *testing.T) {
	w := serve(nil, "/readyness")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
}

func TestMetrics(t *testing.T) {
	w := serve(nil, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
