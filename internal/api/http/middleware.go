package http

import (
	"context"
	"net/http"
	"strings"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "staffClaims"

// AuthMiddleware validates the bearer token and stores the staff claims on
// the request context. The webhook route is registered outside of it.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// claimsFrom returns the authenticated staff claims, or nil on the
// unauthenticated routes.
func claimsFrom(r *http.Request) *security.StaffClaims {
	claims, _ := r.Context().Value(claimsKey).(*security.StaffClaims)
	return claims
}

// roleFrom returns the acting staff role; employee when unset so an
// unauthenticated path can never act as a manager.
func roleFrom(r *http.Request) domain.Role {
	if claims := claimsFrom(r); claims != nil {
		return claims.Role
	}
	return domain.RoleEmployee
}
