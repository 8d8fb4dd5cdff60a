package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/image-derivative-api/internal/shared/uid"
)

var _ Locker = (*RedisLocker)(nil)

var (
	releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

	refreshScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return 0
`)
)

// RedisLocker holds locks as SET NX PX keys owned by a random token.
type RedisLocker struct {
	client *redis.Client
	ids    uid.UIDGenerator
	prefix string
}

// RedisLockerOption configures the Redis locker.
type RedisLockerOption func(*RedisLocker)

func WithRedisPrefix(prefix string) RedisLockerOption {
	return func(l *RedisLocker) {
		l.prefix = prefix
	}
}

func NewRedisLocker(client *redis.Client, ids uid.UIDGenerator, opts ...RedisLockerOption) *RedisLocker {
	l := &RedisLocker{
		client: client,
		ids:    ids,
		prefix: "lock:",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *RedisLocker) Acquire(ctx context.Context, name string, ttl time.Duration) (Lease, bool, error) {
	if l == nil || l.client == nil {
		return Lease{}, false, errors.New("lock: redis locker is not initialized")
	}
	if err := validateName(name); err != nil {
		return Lease{}, false, err
	}

	token, err := l.ids.Generate(ctx)
	if err != nil {
		return Lease{}, false, fmt.Errorf("lock: failed to generate owner token: %w", err)
	}

	ok, err := l.client.SetNX(ctx, l.prefix+name, token, normalizeTTL(ttl)).Result()
	if err != nil {
		return Lease{}, false, fmt.Errorf("lock: redis setnx failed: %w", err)
	}
	if !ok {
		return Lease{}, false, nil
	}
	return Lease{Name: name, Token: token}, true, nil
}

func (l *RedisLocker) Refresh(ctx context.Context, lease Lease, ttl time.Duration) (bool, error) {
	if l == nil || l.client == nil {
		return false, errors.New("lock: redis locker is not initialized")
	}
	if err := validateLease(lease); err != nil {
		return false, err
	}

	n, err := refreshScript.Run(ctx, l.client, []string{l.prefix + lease.Name}, lease.Token, normalizeTTL(ttl).Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("lock: redis refresh failed: %w", err)
	}
	return n == 1, nil
}

func (l *RedisLocker) Release(ctx context.Context, lease Lease) error {
	if l == nil || l.client == nil {
		return errors.New("lock: redis locker is not initialized")
	}
	if err := validateLease(lease); err != nil {
		return err
	}

	n, err := releaseScript.Run(ctx, l.client, []string{l.prefix + lease.Name}, lease.Token).Int64()
	if err != nil {
		return fmt.Errorf("lock: redis release failed: %w", err)
	}
	if n == 0 {
		return ErrNotHeld
	}
	return nil
}
