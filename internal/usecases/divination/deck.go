package divination

import (
	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// reversedOutOf10 карта выпадает перевёрнутой с вероятностью 3 из 10
const reversedOutOf10 = 3

// Shuffle возвращает случайную перестановку всей колоды (Fisher-Yates)
func (s *Service) Shuffle() []domain.TarotCard {
	deck := s.Catalog.Deck()
	shuffled := make([]domain.TarotCard, len(deck.Cards))
	copy(shuffled, deck.Cards)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.Rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Draw тасует колоду и тянет count карт без возврата.
// Каждая карта независимо помечается перевёрнутой с вероятностью 30%.
// count вне [1, размер колоды] отклоняется с ошибкой, не клампится.
func (s *Service) Draw(count int) ([]domain.CardDraw, error) {
	deckSize := len(s.Catalog.Deck().Cards)
	if count < 1 || count > deckSize {
		return nil, domain.ErrInvalidDrawCount
	}

	shuffled := s.Shuffle()

	draws := make([]domain.CardDraw, count)
	for i := 0; i < count; i++ {
		draws[i] = domain.CardDraw{
			Card:       shuffled[i],
			IsReversed: s.Rng.Intn(10) < reversedOutOf10,
		}
	}
	return draws, nil
}
