package divination

import (
	"context"
	"strings"
	"testing"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardByID(t *testing.T, svc *Service, id int) domain.TarotCard {
	t.Helper()
	for _, card := range svc.Catalog.Deck().Cards {
		if card.ID == id {
			return card
		}
	}
	t.Fatalf("card %d not in deck", id)
	return domain.TarotCard{}
}

func TestNewReadingRejectsCardCountMismatch(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	method, ok := svc.Catalog.MethodByID("three")
	require.True(t, ok)

	draws := []domain.CardDraw{{Card: cardByID(t, svc, 0)}}
	_, err := svc.NewReading(method, draws)
	assert.ErrorIs(t, err, domain.ErrCardCountMismatch)
}

func TestNewReadingSingleUpright(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	method, ok := svc.Catalog.MethodByID("single")
	require.True(t, ok)

	card := cardByID(t, svc, 3) // 皇后
	reading, err := svc.NewReading(method, []domain.CardDraw{{Card: card, IsReversed: false}})
	require.NoError(t, err)

	assert.Equal(t, "single", reading.MethodID)
	require.Len(t, reading.Cards, 1)
	assert.Equal(t, method.Positions[0], reading.Cards[0].Position)
	assert.False(t, reading.Cards[0].IsReversed)

	assert.Contains(t, reading.Interpretation, card.Name)
	assert.Contains(t, reading.Interpretation, card.Meaning.Upright)
	assert.NotContains(t, reading.Interpretation, "逆位")
}

func TestNewReadingSingleReversed(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	method, ok := svc.Catalog.MethodByID("single")
	require.True(t, ok)

	card := cardByID(t, svc, 3)
	reading, err := svc.NewReading(method, []domain.CardDraw{{Card: card, IsReversed: true}})
	require.NoError(t, err)

	assert.True(t, reading.Cards[0].IsReversed)
	assert.Contains(t, reading.Interpretation, "（逆位）")
	assert.Contains(t, reading.Interpretation, card.Meaning.Reversed)
}

func TestNewReadingThreePositionsInOrder(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	method, ok := svc.Catalog.MethodByID("three")
	require.True(t, ok)
	require.Len(t, method.Positions, 3)

	draws := []domain.CardDraw{
		{Card: cardByID(t, svc, 0)},
		{Card: cardByID(t, svc, 1), IsReversed: true},
		{Card: cardByID(t, svc, 2)},
	}
	reading, err := svc.NewReading(method, draws)
	require.NoError(t, err)

	require.Len(t, reading.Cards, 3)
	for i, rc := range reading.Cards {
		assert.Equal(t, method.Positions[i], rc.Position)
		assert.Equal(t, draws[i].Card.ID, rc.Card.ID)
	}

	// Позиции упоминаются в трактовке в порядке метода
	last := -1
	for _, position := range method.Positions {
		idx := strings.Index(reading.Interpretation, position)
		require.GreaterOrEqual(t, idx, 0, "position %s missing", position)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestRecommendProductsByTagGroup(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	cases := []struct {
		name     string
		cardID   int
		products []string
	}{
		// 戀人: 愛情 входит в первую группу
		{"love group", 6, []string{"PROD_UF001", "PROD_UF002"}},
		// 戰車: 勝利 входит во вторую группу
		{"power group", 7, []string{"PROD_UF001"}},
		// 教皇: 智慧 входит в третью группу
		{"creativity group", 5, []string{"PROD_UF002"}},
		// 愚者: ни один тег не совпадает, рекомендация по умолчанию
		{"default", 0, []string{"PROD_UF001", "PROD_UF002"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draws := []domain.CardDraw{{Card: cardByID(t, svc, tc.cardID)}}
			assert.Equal(t, tc.products, recommendProducts(draws))
		})
	}
}

// 皇后 несёт теги и первой (美麗), и третьей (創造) группы;
// побеждает группа с меньшим номером.
func TestRecommendProductsFirstGroupWins(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	draws := []domain.CardDraw{{Card: cardByID(t, svc, 3)}}
	assert.Equal(t, []string{"PROD_UF001", "PROD_UF002"}, recommendProducts(draws))
}

func TestPerformReadingUnknownMethod(t *testing.T) {
	svc, _, _ := newTestService(t, &scriptedRNG{})

	_, err := svc.PerformReading(context.Background(), "device-1", "celtic-cross")
	assert.ErrorIs(t, err, domain.ErrMethodNotFound)
	assert.True(t, domain.IsBusinessError(err))
}

func TestPerformReadingSavesHistory(t *testing.T) {
	svc, history, _ := newTestService(t, newSeededRNG(7))

	reading, err := svc.PerformReading(context.Background(), "device-1", "three")
	require.NoError(t, err)
	require.Len(t, reading.Cards, 3)

	saved, err := history.List(context.Background(), "device-1")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, reading.ID, saved[0].ID)
}

func TestPerformReadingSurvivesHistoryFailure(t *testing.T) {
	svc, history, _ := newTestService(t, newSeededRNG(8))
	history.saveErr = assert.AnError

	reading, err := svc.PerformReading(context.Background(), "device-1", "single")
	require.NoError(t, err)
	assert.NotEmpty(t, reading.Interpretation)
}

func TestPerformReadingPublishesEvent(t *testing.T) {
	svc, _, _ := newTestService(t, newSeededRNG(9))
	producer := &capturingProducer{}
	svc.Producer = producer

	reading, err := svc.PerformReading(context.Background(), "device-9", "three")
	require.NoError(t, err)

	require.Len(t, producer.events, 1)
	event := producer.events[0]
	assert.Equal(t, reading.ID, event.ReadingID)
	assert.Equal(t, "device-9", event.DeviceID)
	assert.Equal(t, "three", event.MethodID)
	require.Len(t, event.CardIDs, 3)
	for i, rc := range reading.Cards {
		assert.Equal(t, rc.Card.ID, event.CardIDs[i])
	}
}

// Полный сценарий: тасование подстроено так, что первой выходит
// 皇后 (id 3) в прямом положении.
func TestPerformReadingEmpressScenario(t *testing.T) {
	script := []int{11, 10, 9, 8, 7, 6, 5, 4, 0, 2, 1, 7}
	svc, history, _ := newTestService(t, &scriptedRNG{values: script})

	reading, err := svc.PerformReading(context.Background(), "device-e2e", "single")
	require.NoError(t, err)

	require.Len(t, reading.Cards, 1)
	drawn := reading.Cards[0]
	assert.Equal(t, 3, drawn.Card.ID)
	assert.Equal(t, "皇后", drawn.Card.Name)
	assert.False(t, drawn.IsReversed)

	assert.Contains(t, reading.Interpretation, "皇后")
	assert.NotContains(t, reading.Interpretation, "逆位")
	assert.Equal(t, []string{"PROD_UF001", "PROD_UF002"}, reading.RecommendedProducts)

	saved, err := history.List(context.Background(), "device-e2e")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, reading.ID, saved[0].ID)
}
