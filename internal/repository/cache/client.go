// Package cache keeps read-mostly catalog data in Redis in front of the PostgreSQL repositories.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	defaultPoolSize     = 20
	defaultMinIdleConns = 5
	defaultDialTimeout  = 5 * time.Second
	defaultIOTimeout    = 3 * time.Second
)

var ErrCacheMiss = errors.New("cache miss")

type RedisClient struct {
	client *redis.Client
	prefix string
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisClient connects to Redis and checks the connection with PING.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     defaultPoolSize,
		MinIdleConns: defaultMinIdleConns,
		DialTimeout:  defaultDialTimeout,
		ReadTimeout:  defaultIOTimeout,
		WriteTimeout: defaultIOTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}

	return &RedisClient{client: rdb, prefix: opts.Prefix}, nil
}

// Key joins parts with ':' under the client prefix.
func (r *RedisClient) Key(parts ...string) string {
	return strings.Join(append([]string{r.prefix}, parts...), ":")
}

func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if setErr := r.client.Set(ctx, key, data, ttl).Err(); setErr != nil {
		return fmt.Errorf("setting %s: %w", key, setErr)
	}
	return nil
}

// Get decodes the value stored at key into dest. Returns ErrCacheMiss if there is none.
func (r *RedisClient) Get(ctx context.Context, key string, dest any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("getting %s: %w", key, err)
	}
	if decodeErr := json.Unmarshal(data, dest); decodeErr != nil {
		return fmt.Errorf("decoding %s: %w", key, decodeErr)
	}
	return nil
}

func (r *RedisClient) Del(ctx context.Context, keys ...string) error {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("deleting %v: %w", keys, err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	return r.client.Close() //nolint:wrapcheck
}
