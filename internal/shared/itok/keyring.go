package itok

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// KeyStore persists the private key shared by every process.
type KeyStore interface {
	// LoadOrCreate returns the stored key, storing candidate first if there is none.
	LoadOrCreate(ctx context.Context, candidate string) (string, error)
}

// KeyRing caches the signing key (private key + hash salt) for the lifetime of
// the process. Create one per process and hand it to every Signer.
type KeyRing struct {
	store KeyStore
	salt  string

	mu  sync.Mutex
	key []byte
}

func NewKeyRing(store KeyStore, hashSalt string) *KeyRing {
	return &KeyRing{store: store, salt: hashSalt}
}

func (k *KeyRing) Key(ctx context.Context) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key != nil {
		return k.key, nil
	}

	candidate, err := randomKey()
	if err != nil {
		return nil, err
	}
	private, err := k.store.LoadOrCreate(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("itok: load private key: %w", err)
	}

	k.key = []byte(private + k.salt)
	return k.key, nil
}

// Forget drops the cached key; the next Key call reloads it from the store.
func (k *KeyRing) Forget() {
	k.mu.Lock()
	k.key = nil
	k.mu.Unlock()
}

func randomKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("itok: generate private key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// StaticKeyStore serves a key fixed in configuration.
type StaticKeyStore string

func (s StaticKeyStore) LoadOrCreate(context.Context, string) (string, error) {
	if s == "" {
		return "", errors.New("itok: static private key is empty")
	}
	return string(s), nil
}

// RedisKeyStore keeps the key in one redis string; the first writer wins.
type RedisKeyStore struct {
	client *redis.Client
	key    string
}

func NewRedisKeyStore(client *redis.Client, key string) *RedisKeyStore {
	if key == "" {
		key = "image:private_key"
	}
	return &RedisKeyStore{client: client, key: key}
}

func (s *RedisKeyStore) LoadOrCreate(ctx context.Context, candidate string) (string, error) {
	if err := s.client.SetNX(ctx, s.key, candidate, 0).Err(); err != nil {
		return "", fmt.Errorf("itok: redis setnx: %w", err)
	}
	stored, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		return "", fmt.Errorf("itok: redis get: %w", err)
	}
	return stored, nil
}
