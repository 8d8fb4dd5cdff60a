package hash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptRoundTrip(t *testing.T) {
	h, err := New(Options{Strategy: StrategyBcrypt, Cost: bcrypt.MinCost})
	require.NoError(t, err)

	hashed, err := h.Hash(context.Background(), "s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.NoError(t, h.Compare(context.Background(), hashed, "s3cret-pass"))
	assert.Error(t, h.Compare(context.Background(), hashed, "wrong"))
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Strategy: "argon2"})
	assert.Error(t, err)

	_, err = NewBcrypt(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}
