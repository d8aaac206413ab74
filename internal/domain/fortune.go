package domain

// Fortune дневной гороскоп для знака: пять оценок по категориям,
// счастливый цвет/число и совет. Не персистится, пересчитывается на лету.
type Fortune struct {
	Overall     int    `json:"overall"`
	Love        int    `json:"love"`
	Career      int    `json:"career"`
	Health      int    `json:"health"`
	Wealth      int    `json:"wealth"`
	LuckyColor  string `json:"lucky_color"`
	LuckyNumber int    `json:"lucky_number"`
	Advice      string `json:"advice"`
}
