package divination

import (
	"log/slog"
	"time"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/admin/lucky-shop/divination-api/internal/ports/catalog"
	"github.com/admin/lucky-shop/divination-api/internal/ports/kafka"
	"github.com/admin/lucky-shop/divination-api/internal/ports/repository"
)

// Service бизнес-логика движка гаданий: разрешение знака зодиака,
// дневной гороскоп, тасование колоды, генерация раскладов и история.
type Service struct {
	Catalog     catalog.ICatalog
	HistoryRepo repository.IReadingHistoryRepo
	ProfileRepo repository.IProfileRepo
	Producer    kafka.IEventProducer // может быть nil
	Rng         domain.RNG
	Log         *slog.Logger

	now func() time.Time
}

// New создаёт новый сервис движка гаданий
func New(
	cat catalog.ICatalog,
	historyRepo repository.IReadingHistoryRepo,
	profileRepo repository.IProfileRepo,
	producer kafka.IEventProducer, // может быть nil
	rng domain.RNG,
	log *slog.Logger,
) *Service {
	return &Service{
		Catalog:     cat,
		HistoryRepo: historyRepo,
		ProfileRepo: profileRepo,
		Producer:    producer,
		Rng:         rng,
		Log:         log,
		now:         time.Now,
	}
}

// Methods возвращает каталог методов раскладов
func (s *Service) Methods() []domain.DivinationMethod {
	return s.Catalog.Methods()
}
