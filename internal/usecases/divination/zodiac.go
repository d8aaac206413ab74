package divination

import (
	"time"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// ResolveSign определяет знак зодиака по дате рождения.
// Время суток игнорируется. Диапазоны 12 знаков покрывают весь год без
// дыр и пересечений, границы включительны; последний знак (рыбы)
// замыкает год и срабатывает как fallback только для своего диапазона.
func (s *Service) ResolveSign(birthDate time.Time) domain.ZodiacSign {
	month := int(birthDate.Month())
	day := birthDate.Day()

	signs := s.Catalog.Signs()
	for _, sign := range signs[:len(signs)-1] {
		if (month == sign.StartMonth && day >= sign.StartDay) ||
			(month == sign.EndMonth && day <= sign.EndDay) {
			return sign
		}
	}
	return signs[len(signs)-1]
}
