// Package itok signs derivative URLs so only URLs this service handed out can
// trigger image generation.
package itok

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// QueryParam is the query string key carrying the token.
const QueryParam = "itok"

// TokenLength is the number of base64url characters kept from the HMAC.
const TokenLength = 8

// Signer computes and checks itok values. Safe for concurrent use.
type Signer struct {
	keys *KeyRing
}

func NewSigner(keys *KeyRing) *Signer {
	return &Signer{keys: keys}
}

// Token signs "<styleID>:<uri>". uri is the source URI with the style's
// derivative extension already appended.
func (s *Signer) Token(ctx context.Context, styleID, uri string) (string, error) {
	key, err := s.keys.Key(ctx)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(styleID + ":" + uri))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))[:TokenLength], nil
}

// Valid compares token with the expected value in constant time.
func (s *Signer) Valid(ctx context.Context, styleID, uri, token string) (bool, error) {
	expected, err := s.Token(ctx, styleID, uri)
	if err != nil {
		return false, fmt.Errorf("itok: compute token: %w", err)
	}
	return hmac.Equal([]byte(expected), []byte(token)), nil
}
