package calculator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/mocks"
)

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockIKeypadUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIKeypadUseCase(ctrl)

	r := gin.New()
	New(uc, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r)
	return r, uc
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeScreen(t *testing.T, w *httptest.ResponseRecorder) ScreenResponse {
	t.Helper()
	var resp ScreenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestOpenSession(t *testing.T) {
	r, uc := newRouter(t)
	uc.EXPECT().OpenSession(gomock.Any()).Return(&domain.Screen{SessionID: "s1", Display: "0", Accepted: true}, nil)

	w := do(r, http.MethodPost, "/api/v1/sessions", "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, ScreenResponse{SessionID: "s1", Display: "0", Accepted: true}, decodeScreen(t, w))
}

func TestScreen(t *testing.T) {
	r, uc := newRouter(t)
	uc.EXPECT().Screen(gomock.Any(), "s1").Return(&domain.Screen{SessionID: "s1", Display: "42", Accepted: true}, nil)

	w := do(r, http.MethodGet, "/api/v1/sessions/s1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", decodeScreen(t, w).Display)
}

func TestScreen_NotFound(t *testing.T) {
	r, uc := newRouter(t)
	uc.EXPECT().Screen(gomock.Any(), "nope").Return(nil, fmt.Errorf("%w: nope", domain.ErrSessionNotFound))

	w := do(r, http.MethodGet, "/api/v1/sessions/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "session not found")
}

func TestCloseSession(t *testing.T) {
	r, uc := newRouter(t)
	uc.EXPECT().CloseSession(gomock.Any(), "s1").Return(nil)

	w := do(r, http.MethodDelete, "/api/v1/sessions/s1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestPress(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mocks.MockIKeypadUseCase)
		wantStatus int
		wantScreen *ScreenResponse
	}{
		{
			name: "принятая клавиша",
			body: `{"key":"7"}`,
			setup: func(uc *mocks.MockIKeypadUseCase) {
				uc.EXPECT().Press(gomock.Any(), "s1", "7").Return(&domain.Screen{SessionID: "s1", Display: "7", Accepted: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantScreen: &ScreenResponse{SessionID: "s1", Display: "7", Accepted: true},
		},
		{
			name: "нераспознанная клавиша",
			body: `{"key":"F1"}`,
			setup: func(uc *mocks.MockIKeypadUseCase) {
				uc.EXPECT().Press(gomock.Any(), "s1", "F1").Return(&domain.Screen{SessionID: "s1", Display: "0", Accepted: false}, nil)
			},
			wantStatus: http.StatusOK,
			wantScreen: &ScreenResponse{SessionID: "s1", Display: "0", Accepted: false},
		},
		{
			name:       "без клавиши",
			body:       `{}`,
			setup:      func(uc *mocks.MockIKeypadUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "битый JSON",
			body:       `{"key":`,
			setup:      func(uc *mocks.MockIKeypadUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "сессия не найдена",
			body: `{"key":"1"}`,
			setup: func(uc *mocks.MockIKeypadUseCase) {
				uc.EXPECT().Press(gomock.Any(), "s1", "1").Return(nil, domain.ErrSessionNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "внутренняя ошибка",
			body: `{"key":"1"}`,
			setup: func(uc *mocks.MockIKeypadUseCase) {
				uc.EXPECT().Press(gomock.Any(), "s1", "1").Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newRouter(t)
			tt.setup(uc)

			w := do(r, http.MethodPost, "/api/v1/sessions/s1/keys", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantScreen != nil {
				assert.Equal(t, *tt.wantScreen, decodeScreen(t, w))
			}
		})
	}
}

func TestPush(t *testing.T) {
	r, uc := newRouter(t)
	uc.EXPECT().Push(gomock.Any(), "s1", "operator", "÷").Return(&domain.Screen{SessionID: "s1", Display: "9", Accepted: true}, nil)

	w := do(r, http.MethodPost, "/api/v1/sessions/s1/buttons", `{"action":"operator","value":"÷"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "9", decodeScreen(t, w).Display)
}

func TestPush_MissingAction(t *testing.T) {
	r, _ := newRouter(t)

	w := do(r, http.MethodPost, "/api/v1/sessions/s1/buttons", `{"value":"1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistory(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r, uc := newRouter(t)
	uc.EXPECT().History(gomock.Any(), 10).Return([]domain.Evaluation{
		{ID: 2, SessionID: "s1", Operand1: "5", Operator: "/", Operand2: "0", Display: "Cannot divide by 0", Error: "division by zero", Timestamp: ts},
		{ID: 1, SessionID: "s1", Operand1: "3", Operator: "+", Operand2: "4", Result: "7", Display: "7", Timestamp: ts},
	}, nil)

	w := do(r, http.MethodGet, "/api/v1/history?limit=10", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "division by zero", resp.Items[0].Error)
	assert.Empty(t, resp.Items[0].Result)
	assert.Equal(t, "7", resp.Items[1].Result)
	assert.True(t, ts.Equal(resp.Items[1].Timestamp))
}

func TestHistory_DefaultLimit(t *testing.T) {
	r, uc := newRouter(t)
	uc.EXPECT().History(gomock.Any(), 0).Return([]domain.Evaluation{}, nil)

	w := do(r, http.MethodGet, "/api/v1/history", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}

func TestHistory_BadLimit(t *testing.T) {
	for _, raw := range []string{"abc", "-1"} {
		t.Run(raw, func(t *testing.T) {
			r, _ := newRouter(t)

			w := do(r, http.MethodGet, "/api/v1/history?limit="+raw, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHistory_Error(t *testing.T) {
	r, uc := newRouter(t)
	uc.EXPECT().History(gomock.Any(), 0).Return(nil, errors.New("db down"))

	w := do(r, http.MethodGet, "/api/v1/history", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "db down")
}
