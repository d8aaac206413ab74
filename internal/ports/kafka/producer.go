package kafka

import (
	"context"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// IEventProducer интерфейс для отправки событий движка в Kafka
type IEventProducer interface {
	// SendReadingCreated отправляет событие о завершённом раскладе
	SendReadingCreated(ctx context.Context, event domain.ReadingCreatedEvent) error
	// Close закрывает producer
	Close() error
}
