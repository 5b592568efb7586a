package middleware

import (
	"context"
	"net/http"
	"strings"

	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/session"
	"fleet-dashboard/pkg/utils"
)

type contextKey string

const UserContextKey contextKey = "user"

// bearerToken extracts the token of an "Authorization: Bearer <token>"
// header. ok is false when the header is absent or malformed.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Auth validates the bearer token and adds the identity to the context.
// Requests without a valid token are rejected with 401.
func Auth(tokens *session.Tokens, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				log.WithField("path", r.URL.Path).Debug("❌ No bearer token")
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			identity, err := tokens.Parse(tokenString)
			if err != nil {
				log.WithError(err).WithField("path", r.URL.Path).Warn("❌ Invalid token")
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), identity)))
		})
	}
}

// OptionalAuth attaches the identity when a valid token is present and
// otherwise lets the request through anonymously
func OptionalAuth(tokens *session.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenString, ok := bearerToken(r); ok {
				if identity, err := tokens.Parse(tokenString); err == nil {
					r = r.WithContext(WithUser(r.Context(), identity))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithUser returns a context carrying identity
func WithUser(ctx context.Context, identity models.Session) context.Context {
	return context.WithValue(ctx, UserContextKey, identity)
}

// GetUserFromContext extracts the identity from request context
func GetUserFromContext(r *http.Request) (models.Session, bool) {
	identity, ok := r.Context().Value(UserContextKey).(models.Session)
	return identity, ok
}
