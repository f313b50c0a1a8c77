package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	domainrepo "negobot/internal/domain/repository"
	"negobot/pkg/errors"
)

// operationTimeout bounds every session store call, matching the
// timeout treatment of the other external suspension points.
const operationTimeout = 5 * time.Second

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) domainrepo.SessionStore {
	return &redisSessionStore{
		client: client,
	}
}

func (s *redisSessionStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, operationTimeout)
}

func (s *redisSessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	value, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, errors.NotFound("Session record", err)
	}
	if err != nil {
		return nil, errors.Unavailable("Session store read failed", err)
	}
	return value, nil
}

func (s *redisSessionStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	// No expiry: records live until the backend evicts them.
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Unavailable("Session store write failed", err)
	}
	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Unavailable("Session store delete failed", err)
	}
	return nil
}

func (s *redisSessionStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Unavailable("Session store scan failed", err)
	}
	return keys, nil
}
