package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/smicho01/todos-rest-api/pkg/jwtx"
	"github.com/smicho01/todos-rest-api/pkg/slogx"
)

// AuditRecorder records significant request events. Implementations must be
// best-effort and never fail the request.
type AuditRecorder interface {
	Record(ctx context.Context, message string)
}

// AuthnMiddleware requires a valid `Authorization: Bearer <token>` header,
// verifies the token and attaches the claims to the request context. Every
// authentication failure is recorded via the audit sink.
func AuthnMiddleware(v *jwtx.Verifier, audit AuditRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				audit.Record(ctx, "access denied on "+r.URL.Path)
				WriteMessage(w, http.StatusUnauthorized, "Access denied")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				audit.Record(ctx, "invalid token on "+r.URL.Path)
				WriteMessage(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				audit.Record(ctx, "expired token on "+r.URL.Path)
				WriteMessage(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}
