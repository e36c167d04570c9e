package middlewares

import (
	"context"
	"net/http"

	"github.com/luxystore/luxy-api/app/helpers"
	"github.com/luxystore/luxy-api/app/utils/sessions"
)

// SessionUserMiddleware resolves the session's user id into the request
// context. Public routes work without one; cart and checkout handlers read it
// to decide between acting and redirecting to login.
func SessionUserMiddleware(sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID != "" {
				ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext returns the signed-in user id, or "" for guests.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(helpers.ContextKeyUserID).(string)
	return userID
}
