package divination

import (
	"time"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// PerformReadingRequest запрос на новый расклад
type PerformReadingRequest struct {
	MethodID string `json:"method_id" binding:"required"`
}

// ReadingResponse расклад вместе с развёрнутыми карточками товаров
type ReadingResponse struct {
	Reading  domain.TarotReading `json:"reading"`
	Products []domain.Product    `json:"products,omitempty"`
}

// HistoryResponse история раскладов устройства
type HistoryResponse struct {
	Readings []domain.TarotReading `json:"readings"`
}

// MethodsResponse доступные методы раскладов
type MethodsResponse struct {
	Methods []domain.DivinationMethod `json:"methods"`
}

// SubmitProfileRequest запрос на сохранение профиля.
// Дата рождения передаётся строкой в формате YYYY-MM-DD.
type SubmitProfileRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date" binding:"required"`
}

const birthDateLayout = "2006-01-02"

func (r *SubmitProfileRequest) ParseBirthDate() (time.Time, error) {
	return time.Parse(birthDateLayout, r.BirthDate)
}

// ProfileResponse сохранённый профиль со знаком и гороскопом на сегодня
type ProfileResponse struct {
	Profile domain.UserProfile `json:"profile"`
	Sign    domain.ZodiacSign  `json:"sign"`
	Fortune domain.Fortune     `json:"fortune"`
}

// FortuneResponse гороскоп на сегодня
type FortuneResponse struct {
	Sign    domain.ZodiacSign `json:"sign"`
	Fortune domain.Fortune    `json:"fortune"`
}
