package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mock_handlers "github.com/baharkarakas/timebank-backend/internal/api/handlers/mocks"
	"github.com/baharkarakas/timebank-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func withUsername(r *http.Request, username string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", username)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestBalanceHandler_Get(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		balance  models.Balance
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "success",
			balance:  models.Balance{Owner: "alice", Seconds: 2700},
			wantCode: http.StatusOK,
			wantBody: `{"user":"alice","remaining_time":"00:45:00"}`,
		},
		{
			name:     "fresh user",
			balance:  models.Balance{Owner: "alice"},
			wantCode: http.StatusOK,
			wantBody: `{"user":"alice","remaining_time":"00:00:00"}`,
		},
		{
			name:     "not found",
			err:      models.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"User or time not found"}`,
		},
		{
			name:     "internal",
			err:      errors.New("db down"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal error"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockBalanceService(ctrl)
			m.EXPECT().Get(gomock.Any(), "alice").Return(tc.balance, tc.err)

			rec := httptest.NewRecorder()
			req := withUsername(httptest.NewRequest(http.MethodGet, "/users/alice/time", nil), "alice")
			NewBalanceHandler(m).Get(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestBalanceHandler_Increment(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	type mockData struct {
		expectAdd bool
		minutes   int64
		addResult models.Balance
		addErr    error
		expectGet bool
		getErr    error
	}

	tests := []struct {
		name     string
		body     string
		mockData mockData
		wantCode int
		wantBody string
	}{
		{
			name: "success",
			body: `{"add_minutes":15}`,
			mockData: mockData{
				expectAdd: true,
				minutes:   15,
				addResult: models.Balance{Owner: "alice", Seconds: 900},
			},
			wantCode: http.StatusOK,
			wantBody: `{"user":"alice","remaining_time":"00:15:00"}`,
		},
		{
			name: "numeric string",
			body: `{"add_minutes":"10"}`,
			mockData: mockData{
				expectAdd: true,
				minutes:   10,
				addResult: models.Balance{Owner: "alice", Seconds: 600},
			},
			wantCode: http.StatusOK,
			wantBody: `{"user":"alice","remaining_time":"00:10:00"}`,
		},
		{
			name: "negative goes below zero",
			body: `{"add_minutes":-5}`,
			mockData: mockData{
				expectAdd: true,
				minutes:   -5,
				addResult: models.Balance{Owner: "alice", Seconds: -300},
			},
			wantCode: http.StatusOK,
			wantBody: `{"user":"alice","remaining_time":"-00:05:00"}`,
		},
		{
			name:     "missing field",
			body:     `{}`,
			mockData: mockData{expectGet: true},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"add_minutes field is required"}`,
		},
		{
			name:     "empty body",
			body:     ``,
			mockData: mockData{expectGet: true},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"add_minutes field is required"}`,
		},
		{
			name:     "not an integer",
			body:     `{"add_minutes":"abc"}`,
			mockData: mockData{expectGet: true},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"add_minutes must be an integer"}`,
		},
		{
			name:     "missing field for unknown user is 404",
			body:     `{}`,
			mockData: mockData{expectGet: true, getErr: models.ErrNotFound},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"User or time not found"}`,
		},
		{
			name:     "invalid json",
			body:     `{"add_minutes":`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid JSON"}`,
		},
		{
			name: "not found",
			body: `{"add_minutes":15}`,
			mockData: mockData{
				expectAdd: true,
				minutes:   15,
				addErr:    models.ErrNotFound,
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"User or time not found"}`,
		},
		{
			name: "overflow",
			body: `{"add_minutes":9223372036854775807}`,
			mockData: mockData{
				expectAdd: true,
				minutes:   9223372036854775807,
				addErr:    models.ErrOutOfRange,
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"value out of range"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockBalanceService(ctrl)
			if tc.mockData.expectAdd {
				m.EXPECT().
					AddMinutes(gomock.Any(), "alice", tc.mockData.minutes).
					Return(tc.mockData.addResult, tc.mockData.addErr)
			}
			if tc.mockData.expectGet {
				m.EXPECT().
					Get(gomock.Any(), "alice").
					Return(models.Balance{Owner: "alice"}, tc.mockData.getErr)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/users/alice/time", strings.NewReader(tc.body))
			NewBalanceHandler(m).Increment(rec, withUsername(req, "alice"))

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestBalanceHandler_Overwrite(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name      string
		body      string
		expectSet bool
		seconds   int64
		result    models.Balance
		setErr    error
		wantCode  int
		wantBody  string
	}{
		{
			name:      "success",
			body:      `{"remaining_time":2700}`,
			expectSet: true,
			seconds:   2700,
			result:    models.Balance{Owner: "alice", Seconds: 2700},
			wantCode:  http.StatusOK,
			wantBody:  `{"user":"alice","remaining_time":"00:45:00"}`,
		},
		{
			name:      "over a day",
			body:      `{"remaining_time":"90000"}`,
			expectSet: true,
			seconds:   90000,
			result:    models.Balance{Owner: "alice", Seconds: 90000},
			wantCode:  http.StatusOK,
			wantBody:  `{"user":"alice","remaining_time":"25:00:00"}`,
		},
		{
			name:      "zero",
			body:      `{"remaining_time":0}`,
			expectSet: true,
			seconds:   0,
			result:    models.Balance{Owner: "alice"},
			wantCode:  http.StatusOK,
			wantBody:  `{"user":"alice","remaining_time":"00:00:00"}`,
		},
		{
			name:     "missing field",
			body:     `{"add_minutes":5}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"remaining_time field is required"}`,
		},
		{
			name:     "duration string is not an integer",
			body:     `{"remaining_time":"00:45:00"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"remaining_time must be an integer"}`,
		},
		{
			name:      "internal",
			body:      `{"remaining_time":1}`,
			expectSet: true,
			seconds:   1,
			setErr:    errors.New("db down"),
			wantCode:  http.StatusInternalServerError,
			wantBody:  `{"error":"internal error"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockBalanceService(ctrl)
			if tc.expectSet {
				m.EXPECT().SetSeconds(gomock.Any(), "alice", tc.seconds).Return(tc.result, tc.setErr)
			} else {
				m.EXPECT().Get(gomock.Any(), "alice").Return(models.Balance{Owner: "alice"}, nil)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/users/alice/time/update", strings.NewReader(tc.body))
			NewBalanceHandler(m).Overwrite(rec, withUsername(req, "alice"))

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}
