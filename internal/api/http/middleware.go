package http

import (
	"context"
	"net/http"
	"strings"

	"campushub-backend/internal/domain"
	"campushub-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// AuthMiddleware validates bearer tokens and stores the claims on the
// request context. It does not reject anonymous requests by itself;
// handlers that need an identity use requireClaims.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			respondError(w, http.StatusUnauthorized, "Jeton d'authentification invalide.")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil || claims.Type != security.TokenTypeAccess {
			respondError(w, http.StatusUnauthorized, "Jeton d'authentification invalide.")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFrom returns the authenticated claims, or nil for anonymous requests.
func claimsFrom(r *http.Request) *security.UserClaims {
	claims, _ := r.Context().Value(claimsContextKey).(*security.UserClaims)
	return claims
}

// requireClaims writes a 401 and returns nil when the request is anonymous.
func requireClaims(w http.ResponseWriter, r *http.Request) *security.UserClaims {
	claims := claimsFrom(r)
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Authentification requise.")
		return nil
	}
	return claims
}

// requirePlatformAdmin writes a 403 and returns nil unless the caller is a
// platform administrator (moderation dashboard).
func requirePlatformAdmin(w http.ResponseWriter, r *http.Request) *security.UserClaims {
	claims := requireClaims(w, r)
	if claims == nil {
		return nil
	}
	if claims.Role != domain.UserRoleAdmin {
		respondError(w, http.StatusForbidden, "Accès réservé aux administrateurs.")
		return nil
	}
	return claims
}
