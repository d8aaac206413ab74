package divination

import (
	"context"
	"fmt"
	"time"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// SubmitProfile сохраняет профиль устройства и возвращает его вместе со
// знаком и гороскопом на сегодня. Знак всегда пересчитывается из даты
// рождения, присланное клиентом значение не принимается на веру.
func (s *Service) SubmitProfile(ctx context.Context, deviceID, name string, birthDate time.Time) (domain.UserProfile, domain.ZodiacSign, domain.Fortune, error) {
	sign := s.ResolveSign(birthDate)

	profile := domain.UserProfile{
		Name:         name,
		BirthDate:    birthDate,
		SelectedSign: sign.Sign,
		LastUpdate:   s.now(),
	}

	if err := s.ProfileRepo.Save(ctx, deviceID, profile); err != nil {
		s.Log.Error("failed to save profile", "error", err, "device_id", deviceID)
		return domain.UserProfile{}, domain.ZodiacSign{}, domain.Fortune{}, fmt.Errorf("failed to save profile: %w", err)
	}

	fortune := s.DailyFortune(sign, s.now())
	return profile, sign, fortune, nil
}

// TodayFortune гороскоп на сегодня для сохранённого профиля устройства
func (s *Service) TodayFortune(ctx context.Context, deviceID string) (domain.ZodiacSign, domain.Fortune, error) {
	profile, err := s.ProfileRepo.Get(ctx, deviceID)
	if err != nil {
		return domain.ZodiacSign{}, domain.Fortune{}, err
	}

	sign, ok := s.Catalog.SignBySlug(profile.SelectedSign)
	if !ok {
		// Слаг из старых данных мог устареть: знак восстановим из даты рождения
		sign = s.ResolveSign(profile.BirthDate)
	}

	return sign, s.DailyFortune(sign, s.now()), nil
}

// ResetProfile удаляет профиль устройства
func (s *Service) ResetProfile(ctx context.Context, deviceID string) error {
	if err := s.ProfileRepo.Delete(ctx, deviceID); err != nil {
		s.Log.Error("failed to reset profile", "error", err, "device_id", deviceID)
		return fmt.Errorf("failed to reset profile: %w", err)
	}
	return nil
}
