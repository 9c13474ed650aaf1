package middleware

import (
	"net/http"
	"strings"

	"candyshop-be/internal/user"
	"candyshop-be/internal/utils"
)

// AuthMiddleware parses a Bearer token when present and loads its claims
// into the request context. Anonymous requests pass through untouched;
// authorization decisions belong to RequireRole.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole guards a handler behind an authenticated role claim.
func RequireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			utils.WriteJSONError(w, "authentication required", http.StatusUnauthorized)
			return
		}
		if utils.GetUserRoleFromContext(r.Context()) != role {
			utils.WriteJSONError(w, "insufficient permissions", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
