package divination

import (
	"hash/fnv"
	"time"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// Диапазоны оценок по категориям (включительно)
type scoreRange struct {
	min, max int
}

var scoreRanges = map[string]scoreRange{
	"overall": {60, 95},
	"love":    {50, 90},
	"career":  {55, 92},
	"health":  {65, 88},
	"wealth":  {45, 85},
}

// luckyColors палитра счастливых цветов
var luckyColors = []string{"金色", "紅色", "藍色", "綠色", "紫色", "橙色", "粉色", "銀色"}

// genericAdvice совет по умолчанию, если у знака нет пула
const genericAdvice = "保持積極態度會帶來好運"

// DailyFortune считает гороскоп знака на указанный день.
// Все поля детерминированы парой (знак, календарный день): повторный
// запрос в тот же день возвращает тот же гороскоп. Оценки берутся из
// стабильного хэша FNV-1a, а не из генератора случайных чисел.
func (s *Service) DailyFortune(sign domain.ZodiacSign, today time.Time) domain.Fortune {
	day := today.Format("2006-01-02")

	score := func(category string) int {
		r := scoreRanges[category]
		return r.min + int(dailyHash(day, sign.Sign, category)%uint64(r.max-r.min+1))
	}

	advice := genericAdvice
	if len(sign.AdvicePool) > 0 {
		advice = sign.AdvicePool[dailyHash(day, sign.Sign, "advice")%uint64(len(sign.AdvicePool))]
	}

	return domain.Fortune{
		Overall:     score("overall"),
		Love:        score("love"),
		Career:      score("career"),
		Health:      score("health"),
		Wealth:      score("wealth"),
		LuckyColor:  luckyColors[dailyHash(day, sign.Sign, "color")%uint64(len(luckyColors))],
		LuckyNumber: 1 + int(dailyHash(day, sign.Sign, "number")%99),
		Advice:      advice,
	}
}

// dailyHash стабильный хэш (день, знак, категория) для одного поля гороскопа
func dailyHash(day, sign, category string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(day))
	h.Write([]byte{0})
	h.Write([]byte(sign))
	h.Write([]byte{0})
	h.Write([]byte(category))
	return h.Sum64()
}
