package productRepo

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/admin/lucky-shop/divination-api/internal/ports/persistence"
	ports "github.com/admin/lucky-shop/divination-api/internal/ports/repository"
)

type productColumns struct {
	TableName         string
	MerchantTableName string
	ID                string
	MerchantID        string
	Name              string
	PriceInCents      string
	ImageURL          string
	ProductURL        string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns productColumns
}

// New создаёт новый репозиторий для работы с товарами
func New(db persistence.Persistence, log *slog.Logger) ports.IProductRepo {
	cols := productColumns{
		TableName:         "products",
		MerchantTableName: "merchants",
		ID:                "id",
		MerchantID:        "merchant_id",
		Name:              "name",
		PriceInCents:      "price_in_cents",
		ImageURL:          "image_url",
		ProductURL:        "product_url",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// productRow плоская строка выборки с приджойненным продавцом
type productRow struct {
	ID              string  `db:"id"`
	MerchantID      string  `db:"merchant_id"`
	Name            string  `db:"name"`
	PriceInCents    int64   `db:"price_in_cents"`
	ImageURL        *string `db:"image_url"`
	ProductURL      *string `db:"product_url"`
	MerchantName    string  `db:"merchant_name"`
	MerchantBaseURL string  `db:"merchant_base_product_url"`
}

func (r *Repository) selectQuery() string {
	return fmt.Sprintf(`SELECT
		p.%s, p.%s, p.%s, p.%s, p.%s, p.%s,
		m.%s AS merchant_name,
		m.base_product_url AS merchant_base_product_url
	FROM %s p
	JOIN %s m ON m.%s = p.%s`,
		r.columns.ID,
		r.columns.MerchantID,
		r.columns.Name,
		r.columns.PriceInCents,
		r.columns.ImageURL,
		r.columns.ProductURL,
		r.columns.Name,
		r.columns.TableName,
		r.columns.MerchantTableName,
		r.columns.ID,
		r.columns.MerchantID,
	)
}

// List возвращает все товары витрины вместе с продавцами
func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	query := r.selectQuery() + " ORDER BY p.id"

	var rows []productRow
	if err := r.db.Select(ctx, &rows, query); err != nil {
		r.Log.Error("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return toDomain(rows), nil
}

// ListByIDs возвращает товары по списку идентификаторов.
// Несуществующие идентификаторы молча пропускаются.
func (r *Repository) ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf("%s WHERE p.%s IN (%s) ORDER BY p.id",
		r.selectQuery(),
		r.columns.ID,
		strings.Join(placeholders, ", "),
	)

	var rows []productRow
	if err := r.db.Select(ctx, &rows, query, args...); err != nil {
		r.Log.Error("failed to list products by ids", "error", err, "ids_count", len(ids))
		return nil, fmt.Errorf("failed to list products by ids: %w", err)
	}

	return toDomain(rows), nil
}

func toDomain(rows []productRow) []domain.Product {
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, domain.Product{
			ID:           row.ID,
			MerchantID:   row.MerchantID,
			Name:         row.Name,
			PriceInCents: row.PriceInCents,
			ImageURL:     row.ImageURL,
			ProductURL:   row.ProductURL,
			Merchant: &domain.Merchant{
				ID:             row.MerchantID,
				Name:           row.MerchantName,
				BaseProductURL: row.MerchantBaseURL,
			},
		})
	}
	return products
}
