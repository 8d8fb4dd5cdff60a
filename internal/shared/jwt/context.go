package jwt

import "context"

type contextKey struct{}

// SetClaims attaches verified claims to ctx.
func SetClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// GetClaims returns the claims attached by SetClaims, if any.
func GetClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	return claims, ok && claims != nil
}
