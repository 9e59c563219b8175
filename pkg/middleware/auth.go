package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dotlerai-cell/dotler-web/internal/usecases/connecting"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// Rotas abertas: healthcheck, fluxo OAuth, ingestão do script de rastreamento,
// formulário de contato e os endpoints de onboarding que rodam antes de
// existir uma sessão
var publicPaths = []string{
	"/health",
	"/auth/google",
	"/oauth2/callback",
	"/config",
	"/api/tracking/track",
	"/api/contact",
	"/api/setup-chat",
	"/api/setup-status",
	"/api/reset-setup",
	"/api/store-setup",
	"/api/complete-setup",
	"/api/save-oauth-tokens",
	"/api/get-user-email",
}

func isPublicPath(path string) bool {
	for _, publicPath := range publicPaths {
		if path == publicPath {
			return true
		}
	}
	return false
}

func AuthMiddleware(connectionService connecting.ConnectionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := connectionService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
