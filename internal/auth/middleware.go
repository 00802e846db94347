package auth

import (
	"net/http"

	"github.com/ferdiebergado/gastos/internal/pkg/message"
	"github.com/ferdiebergado/gastos/internal/pkg/security"
	"github.com/ferdiebergado/gastos/internal/pkg/web"
	"github.com/ferdiebergado/gastos/internal/platform/jwt"
)

// RequireToken is the authorization gate for protected routes. It resolves
// the bearer token to a user ID and stores it in the request context; any
// failure short-circuits with 401 and the protected handler never runs.
func RequireToken(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil || token == "" {
				web.RespondUnauthorized(w, err, message.Unauthorized, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.Unauthorized, nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
