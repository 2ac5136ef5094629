package middleware

import (
	"net/http"

	"github.com/baharkarakas/timebank-backend/internal/api/httpx"
	"github.com/go-chi/chi/v5"
)

// RequireOwner allows the request only when the authenticated caller is the
// user named by the given chi URL parameter. It must run after Auth.
func RequireOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := FromCtx(r.Context())
			if !ok {
				httpx.WriteDetail(w, http.StatusForbidden, httpx.MsgNotAuthenticated, "")
				return
			}
			if u.Username != chi.URLParam(r, param) {
				httpx.WriteDetail(w, http.StatusForbidden, httpx.MsgPermissionDenied, "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
