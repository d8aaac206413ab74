package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	cat, err := NewEmbeddedCatalog()
	require.NoError(t, err)

	deck := cat.Deck()
	assert.Equal(t, "major_arcana", deck.ID)
	assert.Len(t, deck.Cards, 12)

	// Идентификаторы карт уникальны и у каждой есть оба значения
	seen := make(map[int]struct{})
	for _, card := range deck.Cards {
		_, dup := seen[card.ID]
		assert.False(t, dup, "duplicate card id %d", card.ID)
		seen[card.ID] = struct{}{}

		assert.NotEmpty(t, card.Name)
		assert.NotEmpty(t, card.Meaning.Upright, "card %s", card.Name)
		assert.NotEmpty(t, card.Meaning.Reversed, "card %s", card.Name)
		assert.NotEmpty(t, card.ProductTags, "card %s", card.Name)
	}
}

func TestEmbeddedCatalogMethods(t *testing.T) {
	cat, err := NewEmbeddedCatalog()
	require.NoError(t, err)

	methods := cat.Methods()
	require.Len(t, methods, 2)

	single, ok := cat.MethodByID("single")
	require.True(t, ok)
	assert.Equal(t, 1, single.CardCount)
	assert.Len(t, single.Positions, 1)

	three, ok := cat.MethodByID("three")
	require.True(t, ok)
	assert.Equal(t, 3, three.CardCount)
	assert.Equal(t, []string{"過去", "現在", "未來"}, three.Positions)

	_, ok = cat.MethodByID("celtic-cross")
	assert.False(t, ok)
}

func TestEmbeddedCatalogSigns(t *testing.T) {
	cat, err := NewEmbeddedCatalog()
	require.NoError(t, err)

	signs := cat.Signs()
	require.Len(t, signs, 12)

	// Знаки идут в порядке года, каждый со своим диапазоном дат
	for _, sign := range signs {
		assert.NotEmpty(t, sign.Name, "sign %s", sign.Sign)
		assert.NotZero(t, sign.StartMonth, "sign %s", sign.Sign)
		assert.NotZero(t, sign.EndMonth, "sign %s", sign.Sign)
	}

	taurus, ok := cat.SignBySlug("taurus")
	require.True(t, ok)
	assert.Equal(t, "金牛座", taurus.Name)

	_, ok = cat.SignBySlug("ophiuchus")
	assert.False(t, ok)
}
