package repository

import (
	"context"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// IReadingHistoryRepo ограниченная история раскладов устройства.
// Save добавляет расклад в начало и обрезает историю до лимита,
// List возвращает пустой список при отсутствии или порче данных.
type IReadingHistoryRepo interface {
	Save(ctx context.Context, deviceID string, reading domain.TarotReading) error
	List(ctx context.Context, deviceID string) ([]domain.TarotReading, error)
	Clear(ctx context.Context, deviceID string) error
}
