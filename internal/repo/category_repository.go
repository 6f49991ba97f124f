package repo

import (
	"context"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

// CategoryRepository stores each owner's categories. Names are unique per owner,
// compared case-insensitively. Renaming or deleting a category leaves products that
// reference the old name untouched.
type CategoryRepository interface {
	Create(ctx context.Context, category models.Category) (models.Category, error)
	GetAll(ctx context.Context, ownerID string) ([]models.Category, error)
	GetByID(ctx context.Context, ownerID, id string) (models.Category, error)
	Update(ctx context.Context, ownerID, id string, patch models.CategoryPatch) (models.Category, error)
	Delete(ctx context.Context, ownerID, id string) error
}
