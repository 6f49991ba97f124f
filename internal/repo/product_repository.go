package repo

import (
	"context"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

// ProductRepository stores each owner's catalog. GetAll returns products in insertion order.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetAll(ctx context.Context, ownerID string) ([]models.Product, error)
	GetByID(ctx context.Context, ownerID, id string) (models.Product, error)
	GetBySKU(ctx context.Context, ownerID, sku string) (models.Product, error)
	Update(ctx context.Context, ownerID, id string, patch models.ProductPatch) (models.Product, error)
	Delete(ctx context.Context, ownerID, id string) error
	Filter(ctx context.Context, ownerID string, pf ProductFilter) ([]models.Product, int, error)
	AdjustStock(ctx context.Context, ownerID, id string, delta int) (models.Product, error)
}
