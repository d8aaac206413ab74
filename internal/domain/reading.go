package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReadingCard карта в завершённом раскладе вместе с подписью позиции
type ReadingCard struct {
	Card       TarotCard `json:"card"`
	Position   string    `json:"position"`
	IsReversed bool      `json:"is_reversed"`
}

// TarotReading завершённый расклад. После создания не мутируется,
// хранится в истории устройства (только append, самые свежие первыми).
type TarotReading struct {
	ID                  uuid.UUID     `json:"id"`
	MethodID            string        `json:"method_id"`
	Cards               []ReadingCard `json:"cards"`
	Interpretation      string        `json:"interpretation"`
	RecommendedProducts []string      `json:"recommended_products"`
	Timestamp           time.Time     `json:"timestamp"`
}

// ReadingCreatedEvent событие о завершённом раскладе для аналитики
type ReadingCreatedEvent struct {
	ReadingID           uuid.UUID `json:"reading_id"`
	DeviceID            string    `json:"device_id"`
	MethodID            string    `json:"method_id"`
	CardIDs             []int     `json:"card_ids"`
	RecommendedProducts []string  `json:"recommended_products"`
	Timestamp           time.Time `json:"timestamp"`
}
