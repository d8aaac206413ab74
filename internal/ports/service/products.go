package service

import (
	"context"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// IProductService выдача товаров витрины. Недоступность каталога
// не фатальна: расклад отдаётся и без карточек товаров.
type IProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}
