package historyRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	ports "github.com/admin/lucky-shop/divination-api/internal/ports/repository"
	"github.com/admin/lucky-shop/divination-api/internal/ports/storage"
)

const (
	keyPrefix = "tarot_readings:"

	// defaultLimit максимум хранимых раскладов на устройство
	defaultLimit = 10

	// defaultTTL история неактивного устройства со временем истекает сама
	defaultTTL = 90 * 24 * time.Hour
)

type Repository struct {
	kv    storage.KV
	Log   *slog.Logger
	limit int
	ttl   time.Duration
}

// New создаёт репозиторий истории раскладов поверх key-value хранилища.
// limit <= 0 означает лимит по умолчанию (10).
func New(kv storage.KV, limit int, log *slog.Logger) ports.IReadingHistoryRepo {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Repository{
		kv:    kv,
		Log:   log,
		limit: limit,
		ttl:   defaultTTL,
	}
}

func (r *Repository) key(deviceID string) string {
	return keyPrefix + deviceID
}

// Save добавляет расклад в начало истории и обрезает её до лимита
func (r *Repository) Save(ctx context.Context, deviceID string, reading domain.TarotReading) error {
	existing, err := r.load(ctx, deviceID)
	if err != nil {
		// Повреждённая или недоступная история не причина терять свежий расклад
		r.Log.Warn("failed to load history, starting fresh", "error", err, "device_id", deviceID)
		existing = nil
	}

	// Ограниченный deque: новый расклад встаёт первым, хвост за лимитом отпадает
	updated := make([]domain.TarotReading, 0, r.limit)
	updated = append(updated, reading)
	for _, old := range existing {
		if len(updated) == r.limit {
			break
		}
		updated = append(updated, old)
	}

	raw, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := r.kv.Set(ctx, r.key(deviceID), string(raw), r.ttl); err != nil {
		return fmt.Errorf("failed to persist history: %w", err)
	}

	return nil
}

// List возвращает историю устройства, самые свежие первыми.
// Отсутствующие или повреждённые данные трактуются как пустая история.
func (r *Repository) List(ctx context.Context, deviceID string) ([]domain.TarotReading, error) {
	readings, err := r.load(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			r.Log.Warn("failed to load history, treating as empty", "error", err, "device_id", deviceID)
		}
		return []domain.TarotReading{}, nil
	}
	return readings, nil
}

// Clear удаляет историю устройства, идемпотентна
func (r *Repository) Clear(ctx context.Context, deviceID string) error {
	if err := r.kv.Delete(ctx, r.key(deviceID)); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (r *Repository) load(ctx context.Context, deviceID string) ([]domain.TarotReading, error) {
	raw, err := r.kv.Get(ctx, r.key(deviceID))
	if err != nil {
		return nil, err
	}

	var readings []domain.TarotReading
	if err := json.Unmarshal([]byte(raw), &readings); err != nil {
		return nil, fmt.Errorf("corrupt history data: %w", err)
	}

	if len(readings) > r.limit {
		readings = readings[:r.limit]
	}
	return readings, nil
}
