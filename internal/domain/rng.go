package domain

// RNG источник случайности для тасования колоды и ориентации карт.
// Интерфейс нужен, чтобы тесты могли зафиксировать исходы детерминированно.
type RNG interface {
	// Intn возвращает неотрицательное случайное число в [0, n)
	Intn(n int) int
}
