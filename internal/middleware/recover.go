package middleware

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/timebank-backend/internal/api/httpx"
	"github.com/baharkarakas/timebank-backend/internal/logger"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromContext(r.Context()).Error("panic", slog.Any("err", rec))
				httpx.WriteInternal(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
