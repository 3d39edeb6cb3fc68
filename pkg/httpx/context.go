package httpx

import (
	"context"

	"github.com/smicho01/todos-rest-api/pkg/jwtx"
)

type ctxKey string

const ctxKeyClaims ctxKey = "claims"

// ContextWithClaims attaches verified token claims to the context. Only the
// authentication middleware should call this; everything downstream treats
// the presence of claims as proof that verification succeeded.
func ContextWithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// ClaimsFromContext returns the verified claims attached by the
// authentication middleware, if any.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return c, ok
}
