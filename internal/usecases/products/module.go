package products

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/admin/lucky-shop/divination-api/internal/ports/repository"
)

// Service выдача товаров витрины. Репозиторий может отсутствовать
// (каталог не сконфигурирован) - тогда сервис отдаёт пустые списки.
type Service struct {
	ProductRepo repository.IProductRepo // может быть nil
	Log         *slog.Logger
}

// New создаёт новый сервис товаров
func New(productRepo repository.IProductRepo, log *slog.Logger) *Service {
	return &Service{
		ProductRepo: productRepo,
		Log:         log,
	}
}

// List возвращает все товары витрины
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	if s.ProductRepo == nil {
		s.Log.Warn("product catalog is not configured, returning empty list")
		return []domain.Product{}, nil
	}

	products, err := s.ProductRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListByIDs возвращает товары по идентификаторам
func (s *Service) ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if s.ProductRepo == nil {
		s.Log.Warn("product catalog is not configured, returning empty list")
		return []domain.Product{}, nil
	}

	products, err := s.ProductRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by ids: %w", err)
	}
	return products, nil
}
