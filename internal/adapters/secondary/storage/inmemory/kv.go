package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/admin/lucky-shop/divination-api/internal/ports/storage"
)

// KV хранилище в памяти процесса. Используется в тестах и при запуске
// без Redis: история и профили тогда живут до рестарта.
type KV struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	value     string
	expiresAt time.Time // нулевое значение: без TTL
}

func NewKV() storage.KV {
	return &KV{
		entries: make(map[string]entry),
	}
}

func (s *KV) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrKeyNotFound, key)
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return "", fmt.Errorf("%w: %s", domain.ErrKeyNotFound, key)
	}
	return e.value, nil
}

func (s *KV) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return nil
}

func (s *KV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (s *KV) Close() error {
	return nil
}
