package storage

import (
	"context"
	"time"
)

// KV интерфейс key-value хранилища, скоупленного на устройство пользователя.
// Отсутствие ключа сигнализируется domain.ErrKeyNotFound; повреждённые
// данные обрабатывает вызывающая сторона (история трактует их как пустую).
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
