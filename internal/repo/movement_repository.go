package repo

import (
	"context"

	"github.com/Akshadkurundwade07/shopflow/internal/models"
)

// MovementRepository records stock adjustments. Entries outlive the product they refer to.
type MovementRepository interface {
	Log(ctx context.Context, ownerID, productID string, delta int) (models.Movement, error)
	GetByProductID(ctx context.Context, ownerID, productID string, mf MovementFilter) ([]models.Movement, int, error)
	Summary(ctx context.Context, ownerID string) (MovementSummary, error)
}

type MostMovedProduct struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	MovementCount int    `json:"movement_count"`
}

// MovementSummary counts an owner's movements. MostMovedProduct is zero when there are none;
// ties go to the product that moved first. Name is filled in by the caller.
type MovementSummary struct {
	TotalMovements   int              `json:"total_movements"`
	MostMovedProduct MostMovedProduct `json:"most_moved_product"`
}
