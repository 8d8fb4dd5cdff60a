package jwt

import (
	"context"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var _ TokenManager = (*hmacManager)(nil)

type hmacManager struct {
	secret []byte
	method jwtlib.SigningMethod
	issuer string
	ttl    time.Duration
}

type adminClaims struct {
	Role string `json:"role,omitempty"`
	jwtlib.RegisteredClaims
}

func NewHMAC(opts Options) (TokenManager, error) {
	if len(opts.Secret) < 32 {
		return nil, fmt.Errorf("jwt: HMAC secret must be at least 32 bytes, got %d", len(opts.Secret))
	}

	var method jwtlib.SigningMethod
	switch opts.Algorithm {
	case "", "HS256":
		method = jwtlib.SigningMethodHS256
	case "HS384":
		method = jwtlib.SigningMethodHS384
	case "HS512":
		method = jwtlib.SigningMethodHS512
	default:
		return nil, fmt.Errorf("jwt: unsupported HMAC algorithm %q", opts.Algorithm)
	}

	return &hmacManager{
		secret: opts.Secret,
		method: method,
		issuer: opts.Issuer,
		ttl:    opts.TTL,
	}, nil
}

func (m *hmacManager) Sign(_ context.Context, claims Claims) (string, error) {
	now := time.Now()

	issuedAt := claims.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = now
	}
	issuer := claims.Issuer
	if issuer == "" {
		issuer = m.issuer
	}

	registered := jwtlib.RegisteredClaims{
		Subject:  claims.Subject,
		Issuer:   issuer,
		IssuedAt: jwtlib.NewNumericDate(issuedAt),
	}
	switch {
	case !claims.ExpiresAt.IsZero():
		registered.ExpiresAt = jwtlib.NewNumericDate(claims.ExpiresAt)
	case m.ttl > 0:
		registered.ExpiresAt = jwtlib.NewNumericDate(issuedAt.Add(m.ttl))
	}

	token := jwtlib.NewWithClaims(m.method, adminClaims{Role: claims.Role, RegisteredClaims: registered})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *hmacManager) Verify(_ context.Context, tokenString string) (*Claims, error) {
	parsed := &adminClaims{}
	opts := []jwtlib.ParserOption{jwtlib.WithValidMethods([]string{m.method.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(m.issuer))
	}

	_, err := jwtlib.ParseWithClaims(tokenString, parsed, func(*jwtlib.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("jwt: token validation failed: %w", err)
	}

	claims := &Claims{
		Subject: parsed.Subject,
		Role:    parsed.Role,
		Issuer:  parsed.Issuer,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	return claims, nil
}
