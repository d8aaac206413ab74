package profileRepo

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
	keyPrefix = "user_profile:"

	// defaultTTL профиль неактивного устройства истекает сам
	defaultTTL = 365 * 24 * time.Hour
)

type Repository struct {
	kv  storage.KV
	Log *slog.Logger
	ttl time.Duration
}

// New создаёт репозиторий профилей поверх key-value хранилища
func New(kv storage.KV, log *slog.Logger) ports.IProfileRepo {
	return &Repository{
		kv:  kv,
		Log: log,
		ttl: defaultTTL,
	}
}

func (r *Repository) key(deviceID string) string {
	return keyPrefix + deviceID
}

// Save сохраняет профиль устройства, перезаписывая предыдущий
func (r *Repository) Save(ctx context.Context, deviceID string, profile domain.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := r.kv.Set(ctx, r.key(deviceID), string(raw), r.ttl); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	return nil
}

// Get возвращает профиль устройства.
// Отсутствие и порча данных дают domain.ErrProfileNotFound.
func (r *Repository) Get(ctx context.Context, deviceID string) (domain.UserProfile, error) {
	raw, err := r.kv.Get(ctx, r.key(deviceID))
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return domain.UserProfile{}, domain.ErrProfileNotFound
		}
		return domain.UserProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		r.Log.Warn("corrupt profile data, treating as missing", "error", err, "device_id", deviceID)
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	return profile, nil
}

// Delete удаляет профиль устройства, идемпотентна
func (r *Repository) Delete(ctx context.Context, deviceID string) error {
	if err := r.kv.Delete(ctx, r.key(deviceID)); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
