package itok

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	calls int
	key   string
	err   error
}

func (c *countingStore) LoadOrCreate(context.Context, string) (string, error) {
	c.calls++
	return c.key, c.err
}

func TestTokenShapeAndDeterminism(t *testing.T) {
	signer := NewSigner(NewKeyRing(StaticKeyStore("private"), "salt"))
	ctx := context.Background()

	a, err := signer.Token(ctx, "thumbnail", "public://a.png")
	require.NoError(t, err)
	assert.Len(t, a, TokenLength)
	assert.Regexp(t, `^[A-Za-z0-9_-]{8}$`, a)

	again, err := signer.Token(ctx, "thumbnail", "public://a.png")
	require.NoError(t, err)
	assert.Equal(t, a, again)

	otherStyle, err := signer.Token(ctx, "large", "public://a.png")
	require.NoError(t, err)
	assert.NotEqual(t, a, otherStyle)

	otherSalt, err := NewSigner(NewKeyRing(StaticKeyStore("private"), "pepper")).Token(ctx, "thumbnail", "public://a.png")
	require.NoError(t, err)
	assert.NotEqual(t, a, otherSalt)
}

func TestValidRejectsTamperedTokens(t *testing.T) {
	signer := NewSigner(NewKeyRing(StaticKeyStore("private"), "salt"))
	ctx := context.Background()

	token, err := signer.Token(ctx, "thumbnail", "public://a.png")
	require.NoError(t, err)

	ok, err := signer.Valid(ctx, "thumbnail", "public://a.png", token)
	require.NoError(t, err)
	assert.True(t, ok)

	flipped := []byte(token)
	flipped[3] ^= 0x01
	for _, bad := range []string{string(flipped), "", token[:7], token + "x"} {
		ok, err := signer.Valid(ctx, "thumbnail", "public://a.png", bad)
		require.NoError(t, err)
		assert.False(t, ok, bad)
	}
}

func TestKeyRingCachesKey(t *testing.T) {
	store := &countingStore{key: "k"}
	ring := NewKeyRing(store, "s")

	for i := 0; i < 3; i++ {
		key, err := ring.Key(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("ks"), key)
	}
	assert.Equal(t, 1, store.calls)

	ring.Forget()
	_, err := ring.Key(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, store.calls)
}

func TestKeyRingPropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("redis down")
	_, err := NewKeyRing(&countingStore{err: storeErr}, "").Key(context.Background())
	assert.ErrorIs(t, err, storeErr)

	_, err = NewKeyRing(StaticKeyStore(""), "").Key(context.Background())
	assert.Error(t, err)
}

func TestRedisKeyStoreFirstWriterWins(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisKeyStore(client, "")
	ctx := context.Background()

	first, err := store.LoadOrCreate(ctx, "alpha")
	require.NoError(t, err)
	second, err := store.LoadOrCreate(ctx, "beta")
	require.NoError(t, err)

	assert.Equal(t, "alpha", first)
	assert.Equal(t, "alpha", second)

	a, err := NewSigner(NewKeyRing(store, "salt")).Token(ctx, "s", "public://a.png")
	require.NoError(t, err)
	b, err := NewSigner(NewKeyRing(NewRedisKeyStore(client, ""), "salt")).Token(ctx, "s", "public://a.png")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
