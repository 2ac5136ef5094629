package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mock_handlers "github.com/baharkarakas/timebank-backend/internal/api/handlers/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mock_handlers.NewMockHealthService(ctrl)

	tests := []struct {
		name        string
		returnError error
		wantCode    int
	}{
		{
			name:     "success",
			wantCode: http.StatusOK,
		},
		{
			name:        "redis down",
			returnError: errors.New("redis: connection refused"),
			wantCode:    http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m.EXPECT().Check(gomock.Any()).Return(tc.returnError)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			NewHealthHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
