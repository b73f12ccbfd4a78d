package middleware

import (
	"context"
	"net/http"

	"github.com/futig/shortlist-web/internal/config"
	"github.com/futig/shortlist-web/internal/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionIDContextKey struct{}

// Session makes sure every request carries a browser session ID. The ID lives
// in a cookie and keys the per-browser page state.
func Session(cfg config.StateConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if id, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = id.String()
				}
			}

			if sessionID == "" {
				sessionID = uuid.New().String()
			}

			// Refresh on every request so the cookie outlives the cached state.
			http.SetCookie(w, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   cfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), sessionIDContextKey{}, sessionID)
			ctx = logger.AddFields(ctx, zap.String("session_id", sessionID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the browser session ID set by Session.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDContextKey{}).(string)
	return id
}
