package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tripnest/tripnest-api/internal/http/response"
	"github.com/tripnest/tripnest-api/pkg/auth"
	"github.com/tripnest/tripnest-api/pkg/logger"
)

type ctxKey string

const CtxIdentity ctxKey = "identity"

// RequireSession resolves the caller's identity from the bearer session
// token once per request. No identity, no handler: the whole operation
// fails with 401 before any store access.
func RequireSession(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				response.Unauthorized(w)
				return
			}

			raw := strings.TrimPrefix(authz, "Bearer ")
			claims, err := auth.Parse(raw, secret)
			if err != nil {
				response.Unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), CtxIdentity, claims.Email)
			ctx = context.WithValue(ctx, logger.UserEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity returns the authenticated email, or "" outside RequireSession.
func Identity(r *http.Request) string {
	v := r.Context().Value(CtxIdentity)
	if v == nil {
		return ""
	}
	return v.(string)
}
