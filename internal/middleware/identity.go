package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kemetlearn/kemet_service/internal/service"
)

type contextKey string

const IdentityKey contextKey = "identity"

// Identity returns a middleware that resolves the session token from the
// Authorization header into an identity. Accounts are mocked, so requests
// without a valid session are not rejected; they proceed as the guest
// identity and keep guest-scoped progress.
func Identity(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := service.GuestIdentity

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && authService != nil {
					if email := authService.Resolve(r.Context(), parts[1]); email != "" {
						identity = email
					}
				}
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the resolved identity from the request context.
func GetIdentity(ctx context.Context) string {
	if id, ok := ctx.Value(IdentityKey).(string); ok && id != "" {
		return id
	}
	return service.GuestIdentity
}
