package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/lifearchitect/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps each state key as a redis string under a namespace.
type RedisStore struct {
	rdb       redis.UniversalClient
	namespace string
}

func NewRedisStore(rdb redis.UniversalClient, namespace string) *RedisStore {
	return &RedisStore{
		rdb:       rdb,
		namespace: namespace,
	}
}

func (r *RedisStore) fullKey(key string) string {
	if r.namespace == "" {
		return key
	}
	return r.namespace + ":" + key
}

func (r *RedisStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, err := r.rdb.Get(ctx, r.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.rdb.Set(ctx, r.fullKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisStore) Keys(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.redis.keys")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pattern := r.fullKey("*")
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := r.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan: %w", err)
		}
		for _, k := range batch {
			if r.namespace != "" {
				k = strings.TrimPrefix(k, r.namespace+":")
			}
			keys = append(keys, k)
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	sort.Strings(keys)
	return keys, nil
}
