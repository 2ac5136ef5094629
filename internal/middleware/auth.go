package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/baharkarakas/timebank-backend/internal/api/httpx"
	"github.com/baharkarakas/timebank-backend/internal/auth"
	"github.com/baharkarakas/timebank-backend/internal/logger"
	"github.com/baharkarakas/timebank-backend/internal/models"
)

//go:generate mockgen -destination ./mocks/authenticator_mock.go . Authenticator
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// Auth rejects requests without a bearer token with 403 and requests with an
// invalid, expired or revoked token with 401.
func Auth(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				httpx.WriteDetail(w, http.StatusForbidden, httpx.MsgNotAuthenticated, "")
				return
			}

			claims, err := a.Authenticate(r.Context(), token)
			if err != nil {
				log := logger.FromContext(r.Context())
				if errors.Is(err, models.ErrTokenInvalid) || errors.Is(err, models.ErrTokenRevoked) {
					log.Warn("token rejected", slog.Any("error", err))
					httpx.WriteDetail(w, http.StatusUnauthorized, httpx.MsgTokenNotValid, httpx.CodeTokenNotValid)
					return
				}
				log.Error("authenticate", slog.Any("error", err))
				httpx.WriteInternal(w)
				return
			}

			ctx := WithUser(r.Context(), UserCtx{
				UserID:    claims.UserID,
				Username:  claims.Username,
				SessionID: claims.SessionID,
			})
			ctx = logger.WithContext(ctx, logger.FromContext(ctx).With(slog.String("caller", claims.Username)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
