package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/chris7683/fit-and-fix/internal/domain"
	"github.com/chris7683/fit-and-fix/internal/service"
)

type contextKey string

const identityContextKey contextKey = "identity"

const bearerPrefix = "Bearer "

// IdentityFromContext extracts the authenticated identity from the request
// context. The second return is false if no identity is present.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(domain.Identity)
	return identity, ok
}

// RequireAuth is middleware that protects routes requiring authentication.
// It reads the Authorization header, verifies the bearer token, and injects
// the asserted identity into the request context. A missing header, a wrong
// scheme, and a bad or expired token all produce the same 401 response.
func RequireAuth(tokens *service.TokenService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := authenticateRequest(r, tokens)
		if err != nil {
			writeError(w, http.StatusUnauthorized, codeUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authenticateRequest(r *http.Request, tokens *service.TokenService) (domain.Identity, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
}
