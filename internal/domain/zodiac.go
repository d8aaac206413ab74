package domain

// Element стихия знака или карты
type Element string

const (
	ElementFire  Element = "火"
	ElementEarth Element = "土"
	ElementAir   Element = "風"
	ElementWater Element = "水"
)

// ZodiacSign статичная запись знака зодиака из каталога (12 штук, не мутируется)
type ZodiacSign struct {
	Sign    string   `json:"sign"`
	Name    string   `json:"name"`
	Element Element  `json:"element"`
	Planet  string   `json:"planet"`
	Dates   string   `json:"dates"`
	Traits  []string `json:"traits"`

	// Границы диапазона дат (включительно), задаются в каталоге
	StartMonth int `json:"start_month"`
	StartDay   int `json:"start_day"`
	EndMonth   int `json:"end_month"`
	EndDay     int `json:"end_day"`

	// AdvicePool пул советов для генератора гороскопа
	AdvicePool []string `json:"advice_pool,omitempty"`
}
