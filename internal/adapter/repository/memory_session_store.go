package repository

import (
	"context"
	"strings"
	"sync"

	domainrepo "negobot/internal/domain/repository"
	"negobot/pkg/errors"
)

// memorySessionStore is an in-process SessionStore for tests and local
// development.
type memorySessionStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemorySessionStore() domainrepo.SessionStore {
	return &memorySessionStore{
		values: make(map[string][]byte),
	}
}

func (s *memorySessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, errors.NotFound("Session record", nil)
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (s *memorySessionStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.values[key] = copied
	return nil
}

func (s *memorySessionStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *memorySessionStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for key := range s.values {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
