package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brandsmith/moodgrid/pkg/observability"
)

// RedisConfig holds connection settings for the Redis session store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore keeps sessions in Redis so multiple server instances can
// share them. Expiry is delegated to Redis key TTLs.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func sessionKey(sessionID string) string {
	return "moodgrid:session:" + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		observability.Session().OnLoad(ctx, sessionID, false)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if sess.IsExpired() {
		s.client.Del(ctx, sessionKey(sessionID))
		observability.Session().OnLoad(ctx, sessionID, false)
		return nil, nil
	}

	observability.Session().OnLoad(ctx, sessionID, true)
	return &sess, nil
}

func (s *RedisStore) Set(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	observability.Session().OnSave(ctx, sess.ID)
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Cleanup is a no-op: Redis expires session keys itself.
func (s *RedisStore) Cleanup(ctx context.Context) error { return nil }

// Close releases the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
