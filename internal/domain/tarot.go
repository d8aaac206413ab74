package domain

// CardMeaning значения карты в прямом и перевёрнутом положении
type CardMeaning struct {
	Upright  string `json:"upright"`
	Reversed string `json:"reversed"`
}

// CardKeywords ключевые слова карты по положениям
type CardKeywords struct {
	Upright  []string `json:"upright"`
	Reversed []string `json:"reversed"`
}

// TarotCard статичная запись карты таро из каталога
type TarotCard struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	NameEn      string       `json:"name_en"`
	Meaning     CardMeaning  `json:"meaning"`
	Description string       `json:"description"`
	Keywords    CardKeywords `json:"keywords"`
	Element     Element      `json:"element"`
	Advice      string       `json:"advice"`

	// ProductTags теги для подбора рекомендованных товаров
	ProductTags []string `json:"product_tags"`
}

// TarotDeck колода карт
type TarotDeck struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Cards []TarotCard `json:"cards"`
}

// DivinationMethod шаблон расклада: сколько карт тянуть и что означает каждая позиция
type DivinationMethod struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CardCount   int      `json:"card_count"`
	Positions   []string `json:"positions"`
}

// CardDraw вытянутая карта с ориентацией. Живёт только между
// тасованием и генерацией расклада, отдельно не сохраняется.
type CardDraw struct {
	Card       TarotCard `json:"card"`
	IsReversed bool      `json:"is_reversed"`
}
