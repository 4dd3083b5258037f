package middleware

import (
	"context"
	"net/http"

	"cinemaspot-frontend/internal/store"
	"cinemaspot-frontend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionCtxKey struct{}

// WithSession stashes the resolved session record in the request context.
func WithSession(ctx context.Context, sess *store.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, sess)
}

// SessionFrom returns the session placed by the Session middleware.
func SessionFrom(ctx context.Context) (*store.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(*store.Session)
	return sess, ok
}

// Session resolves the visitor's session from the cookie, minting a new id
// for first-time visitors, and loads the persisted state behind it.
func Session(sessions *store.SessionStore, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			sess, err := sessions.Load(r.Context(), sessionID)
			if err != nil {
				logger.Error("Failed to load session",
					zap.String("session_id", sessionID),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := WithSession(r.Context(), sess)
			ctx = utils.SetSessionContext(ctx, sessionID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
