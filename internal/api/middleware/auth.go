package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rohits-web03/folio/internal/auth"
	"github.com/rohits-web03/folio/internal/config"
	"github.com/rohits-web03/folio/internal/logging"
	"github.com/rohits-web03/folio/internal/utils"
)

type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware admits requests that carry a valid session token, either in the
// "token" cookie or as a bearer header, and stores the caller identity in the context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := auth.ParseToken(config.Envs.JWTSecret, tokenStr)
		if err != nil {
			utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := WithIdentity(r.Context(), id)
		ctx = logging.Into(ctx, logging.From(ctx).With(slog.String("user_id", id.UserID.String())))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(auth.CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the authenticated caller, if any.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}
