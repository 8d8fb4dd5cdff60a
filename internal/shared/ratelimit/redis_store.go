package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

// tokens, last refill (ms) kept in a hash; returns {allowed, remaining, retry_after_ms}
var tokenBucketScript = redis.NewScript(`
local limit = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local window = tonumber(ARGV[3])
local now = tonumber(ARGV[4])

local state = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(state[1]) or burst
local ts = tonumber(state[2]) or now

local rate = limit / window
tokens = math.min(burst, tokens + math.max(0, now - ts) * rate)

local allowed = 0
local wait = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
else
	wait = (1 - tokens) / rate
end

redis.call('HSET', KEYS[1], 'tokens', tokens, 'ts', now)
redis.call('PEXPIRE', KEYS[1], math.ceil(window * 2))
return {allowed, math.floor(tokens), math.ceil(wait)}
`)

// returns {allowed, remaining, pttl}
var fixedWindowScript = redis.NewScript(`
local limit = tonumber(ARGV[1])
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
local ttl = redis.call('PTTL', KEYS[1])
if current <= limit then
	return {1, limit - current, ttl}
end
return {0, 0, ttl}
`)

// RedisStore is a rate limit store shared by every API process.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisStoreOption configures the Redis store.
type RedisStoreOption func(*RedisStore)

func WithRedisPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{client: client, prefix: "ratelimit"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Allow(ctx context.Context, key string, config Config) (Result, error) {
	if s == nil || s.client == nil {
		return Result{}, errors.New("ratelimit: redis store is not initialized")
	}

	fullKey := s.prefix + ":" + key
	now := time.Now()

	if config.Algorithm == AlgorithmFixedWindow {
		values, err := fixedWindowScript.Run(ctx, s.client, []string{fullKey}, config.Limit, config.Window.Milliseconds()).Int64Slice()
		if err != nil {
			return Result{}, fmt.Errorf("ratelimit: fixed window script failed: %w", err)
		}
		ttl := time.Duration(values[2]) * time.Millisecond
		result := Result{
			Allowed:   values[0] == 1,
			Limit:     config.Limit,
			Remaining: values[1],
			ResetAt:   now.Add(ttl),
		}
		if !result.Allowed {
			result.RetryAfter = ttl
		}
		return result, nil
	}

	values, err := tokenBucketScript.Run(ctx, s.client, []string{fullKey},
		config.Limit,
		config.Burst,
		config.Window.Milliseconds(),
		now.UnixMilli(),
	).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: token bucket script failed: %w", err)
	}

	return Result{
		Allowed:    values[0] == 1,
		Limit:      config.Limit,
		Remaining:  values[1],
		ResetAt:    now.Add(config.Window),
		RetryAfter: time.Duration(values[2]) * time.Millisecond,
	}, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return errors.New("ratelimit: redis store is not initialized")
	}
	return s.client.Del(ctx, s.prefix+":"+key).Err()
}
