package middleware

import (
	"net/http"

	"github.com/Akshadkurundwade07/shopflow/internal/auth"
	"go.uber.org/zap"
)

// Auth rejects requests without a valid, unrevoked bearer token and stores
// the token claims in the request context.
func Auth(issuer *auth.Issuer, sessions auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			claims, err := issuer.Parse(tokenStr)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			revoked, err := sessions.IsRevoked(r.Context(), claims.ID)
			if err != nil {
				zap.L().Error("session lookup failed", zap.Error(err))
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if revoked {
				http.Error(w, "token revoked", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithClaims(r.Context(), claims)))
		})
	}
}
