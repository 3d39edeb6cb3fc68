package httpx

import "net/http"

// RequireRole rejects callers whose verified claims do not carry the given
// role tag. Must run after AuthnMiddleware in the chain.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				// No verified claims means the authn middleware did not run;
				// treat as unauthenticated rather than guessing.
				WriteMessage(w, http.StatusUnauthorized, "Access denied")
				return
			}

			if !claims.HasRole(role) {
				WriteMessage(w, http.StatusForbidden, "No permission to resource. Need role: "+role)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
