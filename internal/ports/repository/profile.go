package repository

import (
	"context"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// IProfileRepo профиль пользователя, один на устройство
type IProfileRepo interface {
	Save(ctx context.Context, deviceID string, profile domain.UserProfile) error
	Get(ctx context.Context, deviceID string) (domain.UserProfile, error)
	Delete(ctx context.Context, deviceID string) error
}
