package repository

import (
	"context"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// IProductRepo интерфейс для работы с каталогом товаров
type IProductRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}
