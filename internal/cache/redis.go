package cache

import (
	"context"
	"crypto/sha1"
	"fmt"
	"time"

	"cinema-catalog/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Entry is one cached HTTP response.
type Entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	TotalCount  string `json:"total_count,omitempty"`
	Body        []byte `json:"body"`
}

// Store is the response cache consumed by the HTTP layer and, for
// invalidation, by the CRUD engine. Every entry is registered under a
// resource tag; EvictByTag drops all entries for that tag at once.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool)
	Set(ctx context.Context, key, tag string, entry Entry) error
	EvictByTag(ctx context.Context, tag string) error
}

type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	codec  entryCodec
	logger *logrus.Logger
}

func NewRedisStore(cfg config.RedisConfig, cacheCfg config.CacheConfig, logger *logrus.Logger) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.WithField("addr", cfg.Addr).Info("Redis connection established successfully")

	return &RedisStore{
		rdb:    rdb,
		prefix: cacheCfg.Prefix,
		ttl:    cacheCfg.TTL,
		logger: logger,
	}, nil
}

// Key builds a stable cache key for a request, hashed so that long query
// strings stay within redis key size conventions.
func (s *RedisStore) Key(method, path, query string) string {
	sum := sha1.Sum([]byte(method + ":" + path + "?" + query))
	return fmt.Sprintf("%s:%x", s.prefix, sum)
}

func (s *RedisStore) tagKey(tag string) string {
	return s.prefix + ":tag:" + tag
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return Entry{}, false
	}
	entry, ok := s.codec.decode(raw)
	return entry, ok
}

func (s *RedisStore) Set(ctx context.Context, key, tag string, entry Entry) error {
	payload, err := s.codec.encode(entry)
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.SetEx(ctx, key, payload, s.ttl)
	pipe.SAdd(ctx, s.tagKey(tag), key)
	pipe.Expire(ctx, s.tagKey(tag), s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) EvictByTag(ctx context.Context, tag string) error {
	keys, err := s.rdb.SMembers(ctx, s.tagKey(tag)).Result()
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	if len(keys) > 0 {
		pipe.Del(ctx, keys...)
	}
	pipe.Del(ctx, s.tagKey(tag))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
