package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/admin/lucky-shop/divination-api/internal/ports/storage"
	"github.com/redis/go-redis/v9"
)

// Client обёртка над redis.Client, реализует storage.KV
type Client struct {
	client *redis.Client
}

// NewClient создаёт новый Redis-клиент
func NewClient(client *redis.Client) storage.KV {
	return &Client{
		client: client,
	}
}

// Get получает значение по ключу
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("%w: %s", domain.ErrKeyNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

// Set устанавливает значение с TTL
func (c *Client) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete удаляет значение по ключу
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// Close закрывает подключение
func (c *Client) Close() error {
	return c.client.Close()
}
