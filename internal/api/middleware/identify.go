package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/service/auth"
)

// Identify resolves the caller identity from an "Authorization: Bearer"
// header and stores it in the request context.
//
// It never rejects a request. A missing, malformed, or invalid token leaves
// the request without an identity, and the service answers it with the
// uniform unauthenticated envelope.
func Identify(provider auth.IdentityProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := provider.Identify(r.Context(), token)
			if err != nil || userID == "" {
				log.Debug("request carries no valid identity",
					slog.String("error", redact.Error(err)),
					slog.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			ctx := shared.WithUserID(r.Context(), userID)
			ctx = logger.WithLogger(ctx, log.With(slog.String("user_id", userID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
