package domain

// Merchant продавец товара
type Merchant struct {
	ID             string `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	BaseProductURL string `json:"base_product_url" db:"base_product_url"`
}

// Product товар витрины. Каталог товаров живёт в Postgres,
// движок гаданий оперирует только идентификаторами.
type Product struct {
	ID           string    `json:"id" db:"id"`
	MerchantID   string    `json:"merchant_id" db:"merchant_id"`
	Name         string    `json:"name" db:"name"`
	PriceInCents int64     `json:"price_in_cents" db:"price_in_cents"`
	ImageURL     *string   `json:"image_url,omitempty" db:"image_url"`
	ProductURL   *string   `json:"product_url,omitempty" db:"product_url"`
	Merchant     *Merchant `json:"merchant,omitempty" db:"-"`
}
