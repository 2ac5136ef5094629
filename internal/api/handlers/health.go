package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/timebank-backend/internal/logger"
)

//go:generate mockgen -destination ./mocks/health_mock.go . HealthService
type HealthService interface {
	Check(ctx context.Context) error
}

func NewHealthHandler(svc HealthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Check(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error("health check failed", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}
}
