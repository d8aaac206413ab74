package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

//go:embed data/*.json
var catalogFS embed.FS

const (
	deckID   = "major_arcana"
	deckName = "大阿爾卡那"
)

// EmbeddedCatalog каталоги движка из вшитых JSON файлов.
// Загружается лениво один раз; ошибка парсинга всплывает при первом обращении.
type EmbeddedCatalog struct {
	once sync.Once
	err  error

	deck    domain.TarotDeck
	methods []domain.DivinationMethod
	signs   []domain.ZodiacSign

	methodByID map[string]domain.DivinationMethod
	signBySlug map[string]domain.ZodiacSign
}

func NewEmbeddedCatalog() (*EmbeddedCatalog, error) {
	c := &EmbeddedCatalog{}
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	return c, nil
}

func (c *EmbeddedCatalog) load() {
	var cards []domain.TarotCard
	if err := c.readJSON("data/tarot_cards.json", &cards); err != nil {
		c.err = err
		return
	}
	c.deck = domain.TarotDeck{
		ID:    deckID,
		Name:  deckName,
		Cards: cards,
	}

	if err := c.readJSON("data/divination_methods.json", &c.methods); err != nil {
		c.err = err
		return
	}
	c.methodByID = make(map[string]domain.DivinationMethod, len(c.methods))
	for _, m := range c.methods {
		if m.CardCount != len(m.Positions) {
			c.err = fmt.Errorf("method %s: card_count %d does not match %d positions",
				m.ID, m.CardCount, len(m.Positions))
			return
		}
		c.methodByID[m.ID] = m
	}

	if err := c.readJSON("data/zodiac_signs.json", &c.signs); err != nil {
		c.err = err
		return
	}
	c.signBySlug = make(map[string]domain.ZodiacSign, len(c.signs))
	for _, s := range c.signs {
		c.signBySlug[s.Sign] = s
	}
}

func (c *EmbeddedCatalog) readJSON(path string, dest interface{}) error {
	raw, err := catalogFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read embedded catalog %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("parse embedded catalog %s: %w", path, err)
	}
	return nil
}

func (c *EmbeddedCatalog) Deck() domain.TarotDeck {
	return c.deck
}

func (c *EmbeddedCatalog) Methods() []domain.DivinationMethod {
	return c.methods
}

func (c *EmbeddedCatalog) MethodByID(id string) (domain.DivinationMethod, bool) {
	m, ok := c.methodByID[id]
	return m, ok
}

func (c *EmbeddedCatalog) Signs() []domain.ZodiacSign {
	return c.signs
}

func (c *EmbeddedCatalog) SignBySlug(slug string) (domain.ZodiacSign, bool) {
	s, ok := c.signBySlug[slug]
	return s, ok
}
