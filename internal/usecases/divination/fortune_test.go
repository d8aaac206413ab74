package divination

import (
	"testing"
	"time"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyFortuneDeterministic(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	sign, ok := svc.Catalog.SignBySlug("taurus")
	require.True(t, ok)

	today := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	first := svc.DailyFortune(sign, today)
	// Другое время того же дня не меняет гороскоп
	second := svc.DailyFortune(sign, today.Add(8*time.Hour))

	assert.Equal(t, first, second)
}

func TestDailyFortuneScoreRanges(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, sign := range svc.Catalog.Signs() {
		for i := 0; i < 60; i++ {
			fortune := svc.DailyFortune(sign, day.AddDate(0, 0, i))

			assert.GreaterOrEqual(t, fortune.Overall, 60)
			assert.LessOrEqual(t, fortune.Overall, 95)
			assert.GreaterOrEqual(t, fortune.Love, 50)
			assert.LessOrEqual(t, fortune.Love, 90)
			assert.GreaterOrEqual(t, fortune.Career, 55)
			assert.LessOrEqual(t, fortune.Career, 92)
			assert.GreaterOrEqual(t, fortune.Health, 65)
			assert.LessOrEqual(t, fortune.Health, 88)
			assert.GreaterOrEqual(t, fortune.Wealth, 45)
			assert.LessOrEqual(t, fortune.Wealth, 85)

			assert.GreaterOrEqual(t, fortune.LuckyNumber, 1)
			assert.LessOrEqual(t, fortune.LuckyNumber, 99)
			assert.Contains(t, luckyColors, fortune.LuckyColor)
		}
	}
}

func TestDailyFortuneAdviceFromSignPool(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	sign, ok := svc.Catalog.SignBySlug("aries")
	require.True(t, ok)
	require.NotEmpty(t, sign.AdvicePool)

	fortune := svc.DailyFortune(sign, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, sign.AdvicePool, fortune.Advice)
}

func TestDailyFortuneGenericAdviceWithoutPool(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	sign := domain.ZodiacSign{Sign: "custom"}
	fortune := svc.DailyFortune(sign, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, genericAdvice, fortune.Advice)
}

func TestDailyFortuneVariesAcrossSigns(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	distinct := make(map[domain.Fortune]struct{})
	for _, sign := range svc.Catalog.Signs() {
		sign.AdvicePool = nil
		distinct[svc.DailyFortune(sign, day)] = struct{}{}
	}

	// Хэш не обязан различать все 12 знаков, но совпадение всех подряд
	// означало бы, что знак не участвует в хэше
	assert.Greater(t, len(distinct), 1)
}
