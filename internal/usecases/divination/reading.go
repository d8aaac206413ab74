package divination

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/google/uuid"
)

// Правила подбора товаров по тегам карт: группы проверяются по
// порядку, побеждает первая совпавшая. Это статичная таблица,
// а не ранжирующий рекомендатель.
var recommendationRules = []struct {
	tags     []string
	products []string
}{
	{
		tags:     []string{"愛情", "和諧", "美麗", "治癒"},
		products: []string{"PROD_UF001", "PROD_UF002"},
	},
	{
		tags:     []string{"力量", "成功", "勝利", "領導"},
		products: []string{"PROD_UF001"},
	},
	{
		tags:     []string{"創造", "靈感", "智慧", "指導"},
		products: []string{"PROD_UF002"},
	},
}

// defaultRecommendation товары по умолчанию, если ни одна группа не совпала
var defaultRecommendation = []string{"PROD_UF001", "PROD_UF002"}

// NewReading собирает завершённый расклад из вытянутых карт.
// Количество карт обязано совпадать с методом, иначе ошибка.
func (s *Service) NewReading(method domain.DivinationMethod, draws []domain.CardDraw) (domain.TarotReading, error) {
	if len(draws) != method.CardCount {
		return domain.TarotReading{}, fmt.Errorf("%w: method %s expects %d cards, got %d",
			domain.ErrCardCountMismatch, method.ID, method.CardCount, len(draws))
	}

	cards := make([]domain.ReadingCard, len(draws))
	for i, draw := range draws {
		position := fmt.Sprintf("位置%d", i+1)
		if i < len(method.Positions) {
			position = method.Positions[i]
		}
		cards[i] = domain.ReadingCard{
			Card:       draw.Card,
			Position:   position,
			IsReversed: draw.IsReversed,
		}
	}

	return domain.TarotReading{
		ID:                  uuid.New(),
		MethodID:            method.ID,
		Cards:               cards,
		Interpretation:      buildInterpretation(method, draws),
		RecommendedProducts: recommendProducts(draws),
		Timestamp:           s.now(),
	}, nil
}

// PerformReading полный цикл расклада: тянет карты по методу, собирает
// расклад, сохраняет его в историю устройства и шлёт событие в Kafka.
// Недоступность истории и Kafka не мешают отдать расклад.
func (s *Service) PerformReading(ctx context.Context, deviceID, methodID string) (domain.TarotReading, error) {
	method, ok := s.Catalog.MethodByID(methodID)
	if !ok {
		s.Log.Warn("unknown divination method requested", "method_id", methodID, "device_id", deviceID)
		return domain.TarotReading{}, domain.WrapBusinessError(domain.ErrMethodNotFound)
	}

	draws, err := s.Draw(method.CardCount)
	if err != nil {
		return domain.TarotReading{}, fmt.Errorf("failed to draw cards: %w", err)
	}

	reading, err := s.NewReading(method, draws)
	if err != nil {
		return domain.TarotReading{}, fmt.Errorf("failed to generate reading: %w", err)
	}

	if err := s.HistoryRepo.Save(ctx, deviceID, reading); err != nil {
		s.Log.Warn("failed to save reading to history", "error", err, "device_id", deviceID)
	}

	s.publishReadingCreated(ctx, deviceID, reading)

	return reading, nil
}

// History возвращает историю раскладов устройства
func (s *Service) History(ctx context.Context, deviceID string) ([]domain.TarotReading, error) {
	return s.HistoryRepo.List(ctx, deviceID)
}

// ClearHistory очищает историю раскладов устройства
func (s *Service) ClearHistory(ctx context.Context, deviceID string) error {
	return s.HistoryRepo.Clear(ctx, deviceID)
}

// publishReadingCreated шлёт событие о раскладе, если producer настроен
func (s *Service) publishReadingCreated(ctx context.Context, deviceID string, reading domain.TarotReading) {
	if s.Producer == nil {
		return
	}

	cardIDs := make([]int, len(reading.Cards))
	for i, c := range reading.Cards {
		cardIDs[i] = c.Card.ID
	}

	event := domain.ReadingCreatedEvent{
		ReadingID:           reading.ID,
		DeviceID:            deviceID,
		MethodID:            reading.MethodID,
		CardIDs:             cardIDs,
		RecommendedProducts: reading.RecommendedProducts,
		Timestamp:           reading.Timestamp,
	}

	if err := s.Producer.SendReadingCreated(ctx, event); err != nil {
		s.Log.Warn("failed to publish reading event", "error", err, "reading_id", reading.ID)
	}
}

// buildInterpretation собирает текст трактовки по виду метода
func buildInterpretation(method domain.DivinationMethod, draws []domain.CardDraw) string {
	switch method.ID {
	case "single":
		return singleCardInterpretation(draws[0])
	case "three":
		return threeCardInterpretation(method, draws)
	default:
		// Заглушка: новому виду расклада нужен свой шаблон до релиза
		return "占卜完成，請仔細思考每張牌帶來的訊息。"
	}
}

func singleCardInterpretation(draw domain.CardDraw) string {
	card := draw.Card

	meaning := card.Meaning.Upright
	marker := ""
	closing := "可以信任自己的直覺前進"
	if draw.IsReversed {
		meaning = card.Meaning.Reversed
		marker = "（逆位）"
		closing = "需要重新審視當前的方向"
	}

	return fmt.Sprintf("%s%s出現在您的占卜中。%s。%s這張牌建議您%s。",
		card.Name, marker, meaning, card.Advice, closing)
}

func threeCardInterpretation(method domain.DivinationMethod, draws []domain.CardDraw) string {
	lines := make([]string, len(draws))
	for i, draw := range draws {
		meaning := draw.Card.Meaning.Upright
		marker := ""
		if draw.IsReversed {
			meaning = draw.Card.Meaning.Reversed
			marker = "（逆位）"
		}
		lines[i] = fmt.Sprintf("%s：%s%s - %s", method.Positions[i], draw.Card.Name, marker, meaning)
	}

	return fmt.Sprintf("您的三張牌陣顯示：\n\n%s\n\n整體而言，這個牌陣建議您要平衡過去的經驗、現在的行動和對未來的期望。每張牌都為您的人生旅程提供了重要的指引。",
		strings.Join(lines, "\n\n"))
}

// recommendProducts подбирает товары по объединению тегов вытянутых карт
func recommendProducts(draws []domain.CardDraw) []string {
	tags := make(map[string]struct{})
	for _, draw := range draws {
		for _, tag := range draw.Card.ProductTags {
			tags[tag] = struct{}{}
		}
	}

	for _, rule := range recommendationRules {
		for _, tag := range rule.tags {
			if _, ok := tags[tag]; ok {
				return append([]string(nil), rule.products...)
			}
		}
	}
	return append([]string(nil), defaultRecommendation...)
}
