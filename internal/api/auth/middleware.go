package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mkk-1817/crm-backend/internal/api/respond"
	"github.com/mkk-1817/crm-backend/internal/db"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Guard is the bearer-token middleware protecting the CRUD routes. Failures
// are logged with the caller's network origin and a reason that tells a
// missing header apart from a bad one or an invalid token.
type Guard struct {
	issuer *TokenIssuer
	logger *slog.Logger
}

func NewGuard(issuer *TokenIssuer, logger *slog.Logger) *Guard {
	return &Guard{issuer: issuer, logger: logger}
}

func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			g.reject(w, r, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			g.reject(w, r, "invalid authorization header format")
			return
		}

		claims, err := g.issuer.Decode(parts[1])
		if err != nil {
			g.reject(w, r, "invalid token: "+err.Error())
			return
		}

		g.logger.Info("request authenticated", "email", claims.Email, "remote_addr", r.RemoteAddr)

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Guard) reject(w http.ResponseWriter, r *http.Request, reason string) {
	g.logger.Warn("authentication failed", "remote_addr", r.RemoteAddr, "reason", reason)
	respond.Error(w, http.StatusUnauthorized, "unauthorized", "Invalid or missing authentication token")
}

// ClaimsFromContext returns the principal the guard attached to the request.
func ClaimsFromContext(ctx context.Context) (*db.Claims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*db.Claims)
	if !ok {
		return nil, errors.New("no claims found in context")
	}
	return claims, nil
}
