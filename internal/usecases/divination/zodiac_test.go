package divination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSignBoundaries(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	cases := []struct {
		date string
		sign string
	}{
		{"1990-03-21", "aries"},
		{"1990-04-19", "aries"},
		{"1990-04-20", "taurus"},
		{"1990-05-15", "taurus"},
		{"1990-05-20", "taurus"},
		{"1990-05-21", "gemini"},
		{"1990-12-21", "sagittarius"},
		{"1990-12-22", "capricorn"},
		{"1991-01-19", "capricorn"},
		{"1991-01-20", "aquarius"},
		{"1991-02-18", "aquarius"},
		{"1991-02-19", "pisces"},
		{"1991-03-20", "pisces"},
	}

	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			birthDate, err := time.Parse("2006-01-02", tc.date)
			require.NoError(t, err)

			sign := svc.ResolveSign(birthDate)
			assert.Equal(t, tc.sign, sign.Sign)
		})
	}
}

func TestResolveSignLeapDay(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	sign := svc.ResolveSign(time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "pisces", sign.Sign)
}

func TestResolveSignIgnoresTimeOfDay(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	morning := svc.ResolveSign(time.Date(1990, 5, 15, 0, 0, 1, 0, time.UTC))
	night := svc.ResolveSign(time.Date(1990, 5, 15, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, morning.Sign, night.Sign)
}

// Каждый день високосного года попадает ровно в один знак,
// и все 12 знаков встречаются.
func TestResolveSignCoversWholeYear(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	counts := make(map[string]int)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == 2024 {
		sign := svc.ResolveSign(day)
		require.NotEmpty(t, sign.Sign, "no sign resolved for %s", day.Format("2006-01-02"))
		counts[sign.Sign]++
		day = day.AddDate(0, 0, 1)
	}

	assert.Len(t, counts, 12)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 366, total)
}
