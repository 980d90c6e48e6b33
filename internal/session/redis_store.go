package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "learnflow:session:"

// RedisStore keeps tokens in Redis with a TTL matching the cookie lifetime.
// Used when REDIS_URL is configured, so multiple gateway instances agree on
// who is logged in.
type RedisStore struct {
	rdb   *redis.Client
	ttl   time.Duration
	watch chan struct{}
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl, watch: make(chan struct{}, 1)}
}

// Put stores the token for a user with the configured TTL.
func (s *RedisStore) Put(ctx context.Context, userID int, token string) error {
	if err := s.rdb.Set(ctx, redisKey(userID), token, s.ttl).Err(); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Get returns the stored token or ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, userID int) (string, error) {
	token, err := s.rdb.Get(ctx, redisKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Delete removes the token for a user.
func (s *RedisStore) Delete(ctx context.Context, userID int) error {
	if err := s.rdb.Del(ctx, redisKey(userID)).Err(); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Watch returns a channel signalled after each mutation made through this
// instance. Writes from other gateway instances carry no signal; the sync
// worker's ticker covers those.
func (s *RedisStore) Watch() <-chan struct{} {
	return s.watch
}

func (s *RedisStore) notify() {
	select {
	case s.watch <- struct{}{}:
	default:
	}
}

// List scans all session keys and returns the tokens keyed by user id.
func (s *RedisStore) List(ctx context.Context) (map[int]string, error) {
	out := make(map[int]string)

	iter := s.rdb.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id, err := strconv.Atoi(strings.TrimPrefix(key, redisKeyPrefix))
		if err != nil {
			continue
		}
		token, err := s.rdb.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			continue // Expired between SCAN and GET.
		}
		if err != nil {
			return nil, err
		}
		out[id] = token
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func redisKey(userID int) string {
	return fmt.Sprintf("%s%d", redisKeyPrefix, userID)
}
