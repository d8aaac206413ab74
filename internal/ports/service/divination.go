package service

import (
	"context"
	"time"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// IDivinationService бизнес-логика движка гаданий, которую дергают HTTP-контроллеры
type IDivinationService interface {
	// Methods возвращает каталог методов раскладов
	Methods() []domain.DivinationMethod
	// PerformReading тянет карты по методу, генерирует расклад и сохраняет его в историю
	PerformReading(ctx context.Context, deviceID, methodID string) (domain.TarotReading, error)
	// History возвращает историю раскладов устройства (самые свежие первыми)
	History(ctx context.Context, deviceID string) ([]domain.TarotReading, error)
	// ClearHistory очищает историю устройства, идемпотентна
	ClearHistory(ctx context.Context, deviceID string) error

	// SubmitProfile сохраняет профиль, разрешает знак по дате рождения и считает гороскоп
	SubmitProfile(ctx context.Context, deviceID, name string, birthDate time.Time) (domain.UserProfile, domain.ZodiacSign, domain.Fortune, error)
	// TodayFortune гороскоп на сегодня для сохранённого профиля
	TodayFortune(ctx context.Context, deviceID string) (domain.ZodiacSign, domain.Fortune, error)
	// ResetProfile удаляет профиль устройства
	ResetProfile(ctx context.Context, deviceID string) error
}
