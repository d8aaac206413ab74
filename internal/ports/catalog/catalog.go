package catalog

import "github.com/admin/lucky-shop/divination-api/internal/domain"

// ICatalog доступ к статичным каталогам движка: колода таро, методы
// раскладов и знаки зодиака. Данные загружаются один раз при старте
// и не мутируются; интерфейс позволяет подменить колоду в тестах.
type ICatalog interface {
	Deck() domain.TarotDeck
	Methods() []domain.DivinationMethod
	MethodByID(id string) (domain.DivinationMethod, bool)
	Signs() []domain.ZodiacSign
	SignBySlug(slug string) (domain.ZodiacSign, bool)
}
