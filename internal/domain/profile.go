package domain

import "time"

// UserProfile профиль пользователя, один на устройство.
// SelectedSign всегда пересчитывается из BirthDate при сохранении,
// поэтому рассинхрон со знаком невозможен.
type UserProfile struct {
	Name         string    `json:"name,omitempty"`
	BirthDate    time.Time `json:"birth_date"`
	SelectedSign string    `json:"selected_sign"`
	LastUpdate   time.Time `json:"last_update"`
}
