package middleware

import (
	"net/http"

	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

// RequireAuth gates routes that need a logged-in session. The gateway never
// inspects the token itself; it is opaque and the upstream decides validity.
func RequireAuth(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFrom(r.Context())
			if !ok || !sess.Auth.Logged {
				utils.ResponseUnauthorized(w, "Login required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates the back-office routes.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFrom(r.Context())
			if !ok || !sess.Auth.Logged {
				utils.ResponseUnauthorized(w, "Login required")
				return
			}

			if !sess.Auth.User.IsAdmin() {
				logger.Warn("Non-admin access attempt",
					zap.String("session_id", sess.ID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
