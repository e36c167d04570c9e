package middlewares

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/luxystore/luxy-api/app/helpers"
	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/repositories"
	"github.com/luxystore/luxy-api/app/utils/sessions"
)

const adminLoginPath = "/admin/login"

// AdminAuthMiddleware gates every back-office route. Per request: read the
// session, look the user up in the admin allow-list through the privileged
// repository, and either pass through or redirect to the admin login page.
//
// The policy is fail-closed everywhere: a missing session, a lookup error and
// a missing allow-list row all end in a redirect, and any outcome other than
// "no session at all" also terminates the session before redirecting. Admin
// status is never trusted from the session itself; it is re-queried on every
// request, which also subsumes re-checking on sign-in/sign-out/token-refresh.
// Lookups run under r.Context(), so a client that navigates away cancels the
// in-flight check.
func AdminAuthMiddleware(sessionStore sessions.SessionStore, adminRepo repositories.AdminUserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID == "" {
				redirectToAdminLogin(w, r, "You must be signed in to access the admin panel.")
				return
			}

			admin, err := adminRepo.FindByUserID(r.Context(), userID)
			if err != nil || admin == nil {
				if err != nil {
					log.Printf("AdminAuthMiddleware: admin check failed for user %s: %v", userID, err)
				}
				// Sign out before redirecting: a session that cannot prove
				// admin membership must not linger on admin routes.
				if clearErr := sessionStore.ClearSession(w, r); clearErr != nil {
					log.Printf("AdminAuthMiddleware: failed to clear session for user %s: %v", userID, clearErr)
				}
				redirectToAdminLogin(w, r, "You do not have permission to access this page.")
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyAdminUser, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func redirectToAdminLogin(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, adminLoginPath+"?status=error&message="+url.QueryEscape(message), http.StatusFound)
}

// AdminFromContext returns the allow-list row placed by AdminAuthMiddleware.
func AdminFromContext(ctx context.Context) *models.AdminUser {
	admin, _ := ctx.Value(helpers.ContextKeyAdminUser).(*models.AdminUser)
	return admin
}
