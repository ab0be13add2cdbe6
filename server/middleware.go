package server

import (
	"net/http"
	"strings"

	"dm-server/server/handlers"
	"dm-server/util"
)

// AuthMiddleware guards routes that need a logged-in user. It expects a
// "Bearer <token>" Authorization header and installs the token's phone
// number on the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Missing bearer token", http.StatusUnauthorized)
			return
		}

		claims, err := util.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := handlers.ContextWithPhone(r.Context(), claims.Phone)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
