package jwt

import (
	"context"
	"fmt"
	"time"
)

// Strategy defines which signing algorithm family to use.
type Strategy string

const (
	StrategyHMAC Strategy = "hmac"
)

// Options configures the token manager.
type Options struct {
	Strategy Strategy

	// Secret is the shared HMAC key, at least 32 bytes.
	Secret []byte

	// Algorithm is one of HS256 (default), HS384, HS512.
	Algorithm string

	Issuer string
	TTL    time.Duration
}

// Claims is what the admin API needs to know about a caller.
type Claims struct {
	Subject   string
	Role      string
	Issuer    string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// TokenManager signs and verifies admin access tokens.
// Implementations must be safe for concurrent use.
type TokenManager interface {
	Sign(ctx context.Context, claims Claims) (string, error)
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// New creates a TokenManager based on the provided options.
func New(opts Options) (TokenManager, error) {
	switch opts.Strategy {
	case StrategyHMAC, "":
		return NewHMAC(opts)
	default:
		return nil, fmt.Errorf("jwt: unknown strategy %q", opts.Strategy)
	}
}
